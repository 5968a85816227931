package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"child-validations/internal/domain/formvalidation"
	"child-validations/internal/domain/subjects"
	"child-validations/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnknownForm   = errors.New("unknown form")
	ErrVisitNotFound = errors.New("visit not found")
	ErrNotFound      = errors.New("not found")
)

type Service struct {
	registry  *Registry
	validator *formvalidation.Validator
	visits    subjects.VisitRepository
	log       logger.Logger
	newID     func() string
}

func NewService(registry *Registry, validator *formvalidation.Validator, visits subjects.VisitRepository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		registry:  registry,
		validator: validator,
		visits:    visits,
		log:       log,
		newID:     uuid.NewString,
	}
}

// Submission es el envío crudo: la visita llega por ID y se resuelve acá.
type Submission struct {
	SubjectIdentifier string
	ChildVisitID      string
	ReportDatetime    *time.Time
	OffstudyDate      *time.Time
	InfantIdentifier  string

	CapturedBy string
}

type Result struct {
	ID    string
	Form  string
	Valid bool
	Err   *formvalidation.ValidationError // nil si Valid
}

// Validate corre la cadena del formulario. Un rechazo de negocio no es error:
// vuelve en Result.Err. Los errores devueltos son de input o de infraestructura.
func (s *Service) Validate(ctx context.Context, formName string, in Submission) (Result, error) {
	def, ok := s.registry.Get(strings.TrimSpace(formName))
	if !ok {
		return Result{}, ErrUnknownForm
	}

	f := &formvalidation.Form{
		SubjectIdentifier: strings.TrimSpace(in.SubjectIdentifier),
		ReportDatetime:    in.ReportDatetime,
		OffstudyDate:      in.OffstudyDate,
		InfantIdentifier:  strings.TrimSpace(in.InfantIdentifier),
	}

	if visitID := strings.TrimSpace(in.ChildVisitID); visitID != "" {
		v, err := s.visits.GetByID(ctx, visitID)
		if err != nil {
			if errors.Is(err, subjects.ErrNotFound) {
				return Result{}, ErrVisitNotFound
			}
			return Result{}, fmt.Errorf("lookup visit: %w", err)
		}
		f.ChildVisit = &v
	}

	if f.Subject() == "" {
		return Result{}, ErrInvalidInput
	}

	res := Result{ID: s.newID(), Form: def.Name, Valid: true}
	log := s.log.With(map[string]any{
		"validation_id":      res.ID,
		"form":               def.Name,
		"subject_identifier": f.Subject(),
		"captured_by":        in.CapturedBy,
	})

	if err := def.Cleaner.Clean(ctx, f); err != nil {
		ve, ok := formvalidation.AsValidationError(err)
		if !ok {
			log.Error("form validation failed", map[string]any{"err": err})
			return Result{}, err
		}
		res.Valid = false
		res.Err = ve
		log.Info("form rejected", map[string]any{"kind": string(ve.Kind), "field": ve.Field})
		return res, nil
	}

	log.Debug("form accepted", nil)
	return res, nil
}

func (s *Service) LatestConsent(ctx context.Context, childSubjectIdentifier string) (subjects.SubjectConsent, error) {
	childSubjectIdentifier = strings.TrimSpace(childSubjectIdentifier)
	if childSubjectIdentifier == "" {
		return subjects.SubjectConsent{}, ErrInvalidInput
	}
	c, err := s.validator.LatestConsentObj(ctx, childSubjectIdentifier)
	if err != nil {
		return subjects.SubjectConsent{}, err
	}
	if c == nil {
		return subjects.SubjectConsent{}, ErrNotFound
	}
	return *c, nil
}

func (s *Service) ConsentHistory(ctx context.Context, childSubjectIdentifier string) ([]subjects.SubjectConsent, error) {
	childSubjectIdentifier = strings.TrimSpace(childSubjectIdentifier)
	if childSubjectIdentifier == "" {
		return nil, ErrInvalidInput
	}
	return s.validator.ConsentHistory(ctx, childSubjectIdentifier)
}

func (s *Service) Forms() []Definition {
	return s.registry.List()
}
