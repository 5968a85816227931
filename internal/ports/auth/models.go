package auth

// Claims identifica al usuario de captura (research assistant) que envía el formulario.
type Claims struct {
	UserID string
	Email  string
	SiteID string // sitio clínico del estudio
}
