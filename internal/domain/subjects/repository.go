package subjects

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven (envuelto o no) todos los adapters cuando el registro no existe.
// Cualquier otro error es de infraestructura.
var ErrNotFound = errors.New("record not found")

type VisitRepository interface {
	GetByID(ctx context.Context, id string) (Visit, error)
}

type BirthRepository interface {
	GetBySubject(ctx context.Context, subjectIdentifier string) (InfantBirth, error)
}

type ConsentRepository interface {
	ListBySubject(ctx context.Context, subjectIdentifier string) ([]SubjectConsent, error)
	// LatestBySubject devuelve el consentimiento con mayor ConsentDatetime.
	LatestBySubject(ctx context.Context, subjectIdentifier string) (SubjectConsent, error)
}

type ConsentVersionRepository interface {
	GetByScreening(ctx context.Context, screeningIdentifier string) (ConsentVersion, error)
}

type OffstudyRepository interface {
	GetBySubject(ctx context.Context, subjectIdentifier string) (Offstudy, error)
}

// Store agrupa todos los repos de registros de referencia (lo implementan memory y postgres).
type Store interface {
	Visits() VisitRepository
	Births() BirthRepository
	Consents() ConsentRepository
	ConsentVersions() ConsentVersionRepository
	Offstudies() OffstudyRepository
}
