package subjects

// consentSuffixLen es el largo del sufijo del niño ("-10", "-25", ...) que se agrega
// al identificador de la cuidadora.
const consentSuffixLen = 3

// ConsentSubjectIdentifier deriva el identificador de la cuidadora a partir del
// identificador del niño: "B142-040990462-10" -> "B142-040990462".
// Identificadores de 3 caracteres o menos devuelven "".
func ConsentSubjectIdentifier(childIdentifier string) string {
	if len(childIdentifier) <= consentSuffixLen {
		return ""
	}
	return childIdentifier[:len(childIdentifier)-consentSuffixLen]
}

// Latest elige el consentimiento más reciente por ConsentDatetime.
// En empate gana el primero de la lista.
func Latest(consents []SubjectConsent) (SubjectConsent, bool) {
	if len(consents) == 0 {
		return SubjectConsent{}, false
	}
	winner := consents[0]
	for _, c := range consents[1:] {
		if c.ConsentDatetime.After(winner.ConsentDatetime) {
			winner = c
		}
	}
	return winner, true
}
