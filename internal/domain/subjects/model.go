package subjects

import "time"

// Visit es la visita del participante a la que se asocia un formulario (child_visit).
type Visit struct {
	ID                string
	SubjectIdentifier string
	ReportDatetime    time.Time
}

// InfantBirth es el registro de nacimiento (enrollment) del infante.
type InfantBirth struct {
	ID                string
	SubjectIdentifier string
	ReportDatetime    time.Time
}

// SubjectConsent es el consentimiento firmado por la cuidadora.
// El subject_identifier es el de la madre/cuidadora, no el del niño.
type SubjectConsent struct {
	ID                  string
	SubjectIdentifier   string
	ScreeningIdentifier string
	ConsentDatetime     time.Time
}

type ConsentVersion struct {
	ID                  string
	ScreeningIdentifier string
	Version             string
}

// Offstudy indica que el participante fue retirado del estudio.
type Offstudy struct {
	ID                string
	SubjectIdentifier string
	OffstudyDate      time.Time
}
