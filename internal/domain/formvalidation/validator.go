package formvalidation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"child-validations/internal/domain/actionitems"
	"child-validations/internal/domain/subjects"
	"child-validations/internal/platform/logger"
)

const (
	msgBirthMissing      = "Please complete Infant Birth form before proceeding."
	msgBeforeEnrollment  = "Report datetime cannot be before enrollment datetime."
	msgVisitMissing      = "Please complete the visit form before proceeding."
	msgBeforeVisit       = "Report datetime cannot be before visit datetime."
	msgOffstudyBefore    = "offstudy date cannot be before visit date."
	msgOffstudyScheduled = "Participant is scheduled to be taken offstudy without any new data collection. Cannot capture any new data."
	msgOffstudyTaken     = "Participant has been taken offstudy. Cannot capture any new data."
	msgConsentVersion    = "Consent version form has not been completed, kindly complete it before continuing."

	FieldOffstudyDate = "offstudy_date"
)

// Config son las referencias a modelos externos que define cada formulario concreto.
// InfantBirths es opcional: solo lo necesitan los formularios que validan contra el nacimiento.
type Config struct {
	InfantBirths    subjects.BirthRepository
	Consents        subjects.ConsentRepository
	ConsentVersions subjects.ConsentVersionRepository
	Offstudies      subjects.OffstudyRepository

	Actions *actionitems.Registry
	// OffstudyActionName es el action_name del modelo de offstudy (default ChildOffStudyAction).
	OffstudyActionName string

	Logger logger.Logger
}

// Validator implementa las reglas comunes de los formularios del niño:
// orden de fechas contra visita/nacimiento y estado offstudy del participante.
// No guarda estado entre llamadas.
type Validator struct {
	cfg Config
	log logger.Logger
}

func New(cfg Config) *Validator {
	if cfg.OffstudyActionName == "" {
		cfg.OffstudyActionName = actionitems.ChildOffStudyAction
	}
	l := cfg.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Validator{cfg: cfg, log: l.With(map[string]any{"component": "formvalidation"})}
}

// Clean valida la visita vinculada y el estado offstudy.
func (v *Validator) Clean(ctx context.Context, f *Form) error {
	if f.ChildVisit != nil {
		if err := v.ValidateAgainstVisitDatetime(f, f.ReportDatetime); err != nil {
			return err
		}
	}
	return v.ValidateOffstudyModel(ctx, f.Subject())
}

// With encadena validaciones propias de un formulario concreto después de Clean.
func (v *Validator) With(next ...Cleaner) Cleaner {
	return Chain(append([]Cleaner{v}, next...)...)
}

// ValidateAgainstBirthDate exige que exista el nacimiento del infante y que el
// report datetime no sea anterior a él. Devuelve el registro de nacimiento.
func (v *Validator) ValidateAgainstBirthDate(ctx context.Context, infantIdentifier string, reportDatetime *time.Time) (subjects.InfantBirth, error) {
	if v.cfg.InfantBirths == nil {
		return subjects.InfantBirth{}, fmt.Errorf("%w: infant birth repository", ErrNotConfigured)
	}

	birth, err := v.cfg.InfantBirths.GetBySubject(ctx, infantIdentifier)
	if err != nil {
		if errors.Is(err, subjects.ErrNotFound) {
			return subjects.InfantBirth{}, newError(KindMissingPrerequisiteForm, msgBirthMissing)
		}
		return subjects.InfantBirth{}, fmt.Errorf("lookup infant birth: %w", err)
	}

	if reportDatetime != nil && reportDatetime.Before(birth.ReportDatetime) {
		return subjects.InfantBirth{}, newError(KindDateOrderingViolation, msgBeforeEnrollment)
	}
	return birth, nil
}

func (v *Validator) ValidateAgainstVisitDatetime(f *Form, reportDatetime *time.Time) error {
	if reportDatetime == nil {
		return nil
	}
	if f.ChildVisit == nil {
		return newError(KindMissingPrerequisiteForm, msgVisitMissing)
	}
	if reportDatetime.Before(f.ChildVisit.ReportDatetime) {
		return newError(KindDateOrderingViolation, msgBeforeVisit)
	}
	return nil
}

// ValidateAgainstVisitDate compara solo fechas y reporta el error en offstudy_date.
// offstudyDate es una fecha pura: se toma su día en su propia zona. La visita se lleva a UTC.
func (v *Validator) ValidateAgainstVisitDate(f *Form, offstudyDate *time.Time) error {
	if offstudyDate == nil {
		return nil
	}
	if f.ChildVisit == nil {
		return newError(KindMissingPrerequisiteForm, msgVisitMissing)
	}
	if calendarDay(*offstudyDate).Before(calendarDay(f.ChildVisit.ReportDatetime.UTC())) {
		return newFieldError(KindDateOrderingViolation, FieldOffstudyDate, msgOffstudyBefore)
	}
	return nil
}

// ValidateOffstudyModel rechaza si hay un offstudy agendado (action item New)
// o si el participante ya tiene offstudy. El agendado tiene prioridad.
func (v *Validator) ValidateOffstudyModel(ctx context.Context, subjectIdentifier string) error {
	if v.cfg.Actions == nil || v.cfg.Offstudies == nil {
		return fmt.Errorf("%w: action registry and offstudy repository", ErrNotConfigured)
	}

	action, err := v.cfg.Actions.Get(v.cfg.OffstudyActionName)
	if err != nil {
		return fmt.Errorf("offstudy action: %w", err)
	}

	_, err = action.ItemRepository().Find(ctx, actionitems.Query{
		SubjectIdentifier: subjectIdentifier,
		ActionType:        actionitems.ChildOffStudyAction,
		Status:            actionitems.StatusNew,
	})
	switch {
	case err == nil:
		v.log.Debug("offstudy scheduled", map[string]any{"subject_identifier": subjectIdentifier})
		return newError(KindOffstudyConflict, msgOffstudyScheduled)
	case !errors.Is(err, actionitems.ErrNotFound):
		return fmt.Errorf("lookup offstudy action item: %w", err)
	}

	_, err = v.cfg.Offstudies.GetBySubject(ctx, subjectIdentifier)
	switch {
	case err == nil:
		v.log.Debug("participant offstudy", map[string]any{"subject_identifier": subjectIdentifier})
		return newError(KindOffstudyConflict, msgOffstudyTaken)
	case errors.Is(err, subjects.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("lookup offstudy: %w", err)
	}
}

// ValidateConsentVersionObj exige el consent version del último consentimiento, si existe alguno.
func (v *Validator) ValidateConsentVersionObj(ctx context.Context, subjectIdentifier string) error {
	if v.cfg.ConsentVersions == nil {
		return fmt.Errorf("%w: consent version repository", ErrNotConfigured)
	}

	latest, err := v.LatestConsentObj(ctx, subjectIdentifier)
	if err != nil {
		return err
	}
	if latest == nil {
		return nil
	}

	_, err = v.cfg.ConsentVersions.GetByScreening(ctx, latest.ScreeningIdentifier)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, subjects.ErrNotFound):
		return newError(KindMissingConsentVersion, msgConsentVersion)
	default:
		return fmt.Errorf("lookup consent version: %w", err)
	}
}

// LatestConsentObj devuelve el consentimiento más reciente de la cuidadora
// (identificador del niño sin su sufijo) o nil si no hay ninguno.
func (v *Validator) LatestConsentObj(ctx context.Context, subjectIdentifier string) (*subjects.SubjectConsent, error) {
	if v.cfg.Consents == nil {
		return nil, fmt.Errorf("%w: subject consent repository", ErrNotConfigured)
	}

	id := subjects.ConsentSubjectIdentifier(subjectIdentifier)
	if id == "" {
		return nil, nil
	}

	c, err := v.cfg.Consents.LatestBySubject(ctx, id)
	if err != nil {
		if errors.Is(err, subjects.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup subject consent: %w", err)
	}
	return &c, nil
}

// ConsentHistory lista los consentimientos de la cuidadora, el más reciente primero.
// Sin consentimientos devuelve una lista vacía.
func (v *Validator) ConsentHistory(ctx context.Context, subjectIdentifier string) ([]subjects.SubjectConsent, error) {
	if v.cfg.Consents == nil {
		return nil, fmt.Errorf("%w: subject consent repository", ErrNotConfigured)
	}

	id := subjects.ConsentSubjectIdentifier(subjectIdentifier)
	if id == "" {
		return []subjects.SubjectConsent{}, nil
	}

	items, err := v.cfg.Consents.ListBySubject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list subject consents: %w", err)
	}
	out := append(make([]subjects.SubjectConsent, 0, len(items)), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ConsentDatetime.Equal(out[j].ConsentDatetime) {
			return out[i].ConsentDatetime.After(out[j].ConsentDatetime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
