package forms

import (
	"context"
	"sort"

	"child-validations/internal/domain/formvalidation"
)

const (
	FormChildVisitCRF        = "child_visit_crf"
	FormChildOffstudy        = "child_offstudy"
	FormInfantBirthDependent = "infant_birth_dependent"
	FormConsentDependent     = "consent_dependent"
)

// Definition es un formulario concreto: las reglas comunes más las propias.
type Definition struct {
	Name        string
	Description string
	Cleaner     formvalidation.Cleaner
}

type Registry struct {
	byName map[string]Definition
}

// NewRegistry arma los formularios conocidos sobre un mismo validador.
func NewRegistry(v *formvalidation.Validator) *Registry {
	r := &Registry{byName: map[string]Definition{}}

	r.add(Definition{
		Name:        FormChildVisitCRF,
		Description: "CRF ligado a una visita: orden contra la visita y estado offstudy.",
		Cleaner:     v,
	})

	// El propio formulario de offstudy no puede rechazarse por estar offstudy.
	r.add(Definition{
		Name:        FormChildOffstudy,
		Description: "Offstudy del niño: offstudy_date no anterior a la fecha de la visita.",
		Cleaner: formvalidation.CleanerFunc(func(ctx context.Context, f *formvalidation.Form) error {
			if f.ChildVisit != nil {
				if err := v.ValidateAgainstVisitDatetime(f, f.ReportDatetime); err != nil {
					return err
				}
			}
			return v.ValidateAgainstVisitDate(f, f.OffstudyDate)
		}),
	})

	r.add(Definition{
		Name:        FormInfantBirthDependent,
		Description: "Formulario que exige Infant Birth previo y report_datetime posterior al nacimiento.",
		Cleaner: v.With(formvalidation.CleanerFunc(func(ctx context.Context, f *formvalidation.Form) error {
			infant := f.InfantIdentifier
			if infant == "" {
				infant = f.Subject()
			}
			_, err := v.ValidateAgainstBirthDate(ctx, infant, f.ReportDatetime)
			return err
		})),
	})

	r.add(Definition{
		Name:        FormConsentDependent,
		Description: "Formulario que exige el consent version del último consentimiento de la cuidadora.",
		Cleaner: v.With(formvalidation.CleanerFunc(func(ctx context.Context, f *formvalidation.Form) error {
			return v.ValidateConsentVersionObj(ctx, f.Subject())
		})),
	})

	return r
}

func (r *Registry) add(d Definition) {
	r.byName[d.Name] = d
}

func (r *Registry) Get(name string) (Definition, bool) {
	d, ok := r.byName[name]
	return d, ok
}

func (r *Registry) List() []Definition {
	out := make([]Definition, 0, len(r.byName))
	for _, d := range r.byName {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
