package formvalidation

import (
	"errors"
	"fmt"
)

// NonFieldErrors es la key bajo la cual se reportan errores que no pertenecen a un campo.
const NonFieldErrors = "__all__"

// Kind clasifica los errores que ve el usuario final.
type Kind string

const (
	KindMissingPrerequisiteForm Kind = "missing_prerequisite_form"
	KindDateOrderingViolation   Kind = "date_ordering_violation"
	KindOffstudyConflict        Kind = "offstudy_conflict"
	KindMissingConsentVersion   Kind = "missing_consent_version"
)

var (
	ErrMissingPrerequisiteForm = errors.New("missing prerequisite form")
	ErrDateOrderingViolation   = errors.New("date ordering violation")
	ErrOffstudyConflict        = errors.New("offstudy conflict")
	ErrMissingConsentVersion   = errors.New("missing consent version")

	// ErrNotConfigured no es un error de validación: falta un repo en la configuración.
	ErrNotConfigured = errors.New("form validator not configured")
)

func (k Kind) sentinel() error {
	switch k {
	case KindMissingPrerequisiteForm:
		return ErrMissingPrerequisiteForm
	case KindDateOrderingViolation:
		return ErrDateOrderingViolation
	case KindOffstudyConflict:
		return ErrOffstudyConflict
	case KindMissingConsentVersion:
		return ErrMissingConsentVersion
	default:
		return nil
	}
}

// ValidationError es el rechazo de un formulario. Field vacío = error de formulario (no de campo).
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func newError(kind Kind, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Message: msg}
}

func newFieldError(kind Kind, field, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: msg}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrOffstudyConflict) etc.
func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// Errors devuelve el mapa campo -> mensajes que se muestra en el formulario.
func (e *ValidationError) Errors() map[string][]string {
	field := e.Field
	if field == "" {
		field = NonFieldErrors
	}
	return map[string][]string{field: {e.Message}}
}

// AsValidationError extrae el *ValidationError de una cadena de errores.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
