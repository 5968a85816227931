package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"child-validations/internal/domain/subjects"

	"github.com/google/uuid"
)

// SubjectsStore guarda los registros de referencia en memoria (modo dev y tests).
// Los Save* existen solo para sembrar datos; el validador nunca escribe.
type SubjectsStore struct {
	mu sync.RWMutex

	visits          map[string]subjects.Visit          // por ID
	births          map[string]subjects.InfantBirth    // por subject_identifier
	consents        []subjects.SubjectConsent          // filtrado lineal
	consentVersions map[string]subjects.ConsentVersion // por screening_identifier
	offstudies      map[string]subjects.Offstudy       // por subject_identifier
}

func NewSubjectsStore() *SubjectsStore {
	return &SubjectsStore{
		visits:          make(map[string]subjects.Visit),
		births:          make(map[string]subjects.InfantBirth),
		consentVersions: make(map[string]subjects.ConsentVersion),
		offstudies:      make(map[string]subjects.Offstudy),
	}
}

var _ subjects.Store = (*SubjectsStore)(nil)

func (s *SubjectsStore) Visits() subjects.VisitRepository                   { return visitRepo{s} }
func (s *SubjectsStore) Births() subjects.BirthRepository                   { return birthRepo{s} }
func (s *SubjectsStore) Consents() subjects.ConsentRepository               { return consentRepo{s} }
func (s *SubjectsStore) ConsentVersions() subjects.ConsentVersionRepository { return consentVersionRepo{s} }
func (s *SubjectsStore) Offstudies() subjects.OffstudyRepository            { return offstudyRepo{s} }

// -------------------------
// Seed
// -------------------------

func (s *SubjectsStore) SaveVisit(v subjects.Visit) (subjects.Visit, error) {
	if strings.TrimSpace(v.SubjectIdentifier) == "" {
		return subjects.Visit{}, errors.New("visit subject_identifier required")
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits[v.ID] = v
	return v, nil
}

func (s *SubjectsStore) SaveBirth(b subjects.InfantBirth) (subjects.InfantBirth, error) {
	if strings.TrimSpace(b.SubjectIdentifier) == "" {
		return subjects.InfantBirth{}, errors.New("birth subject_identifier required")
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.births[b.SubjectIdentifier] = b
	return b, nil
}

func (s *SubjectsStore) SaveConsent(c subjects.SubjectConsent) (subjects.SubjectConsent, error) {
	if strings.TrimSpace(c.SubjectIdentifier) == "" {
		return subjects.SubjectConsent{}, errors.New("consent subject_identifier required")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.consents = append(s.consents, c)
	return c, nil
}

func (s *SubjectsStore) SaveConsentVersion(cv subjects.ConsentVersion) (subjects.ConsentVersion, error) {
	if strings.TrimSpace(cv.ScreeningIdentifier) == "" {
		return subjects.ConsentVersion{}, errors.New("consent version screening_identifier required")
	}
	if cv.ID == "" {
		cv.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.consentVersions[cv.ScreeningIdentifier] = cv
	return cv, nil
}

func (s *SubjectsStore) SaveOffstudy(o subjects.Offstudy) (subjects.Offstudy, error) {
	if strings.TrimSpace(o.SubjectIdentifier) == "" {
		return subjects.Offstudy{}, errors.New("offstudy subject_identifier required")
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.offstudies[o.SubjectIdentifier] = o
	return o, nil
}

// -------------------------
// Repos
// -------------------------

type visitRepo struct{ s *SubjectsStore }

func (r visitRepo) GetByID(ctx context.Context, id string) (subjects.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.visits[strings.TrimSpace(id)]
	if !ok {
		return subjects.Visit{}, ErrNotFound
	}
	return v, nil
}

type birthRepo struct{ s *SubjectsStore }

func (r birthRepo) GetBySubject(ctx context.Context, subjectIdentifier string) (subjects.InfantBirth, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.births[subjectIdentifier]
	if !ok {
		return subjects.InfantBirth{}, ErrNotFound
	}
	return b, nil
}

type consentRepo struct{ s *SubjectsStore }

func (r consentRepo) ListBySubject(ctx context.Context, subjectIdentifier string) ([]subjects.SubjectConsent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]subjects.SubjectConsent, 0)
	if subjectIdentifier == "" {
		return out, nil
	}
	for _, c := range r.s.consents {
		if c.SubjectIdentifier == subjectIdentifier {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r consentRepo) LatestBySubject(ctx context.Context, subjectIdentifier string) (subjects.SubjectConsent, error) {
	items, err := r.ListBySubject(ctx, subjectIdentifier)
	if err != nil {
		return subjects.SubjectConsent{}, err
	}
	latest, ok := subjects.Latest(items)
	if !ok {
		return subjects.SubjectConsent{}, ErrNotFound
	}
	return latest, nil
}

type consentVersionRepo struct{ s *SubjectsStore }

func (r consentVersionRepo) GetByScreening(ctx context.Context, screeningIdentifier string) (subjects.ConsentVersion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cv, ok := r.s.consentVersions[screeningIdentifier]
	if !ok {
		return subjects.ConsentVersion{}, ErrNotFound
	}
	return cv, nil
}

type offstudyRepo struct{ s *SubjectsStore }

func (r offstudyRepo) GetBySubject(ctx context.Context, subjectIdentifier string) (subjects.Offstudy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.offstudies[subjectIdentifier]
	if !ok {
		return subjects.Offstudy{}, ErrNotFound
	}
	return o, nil
}
