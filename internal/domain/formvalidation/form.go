package formvalidation

import (
	"context"
	"time"

	"child-validations/internal/domain/subjects"
)

// Form son los datos ya limpiados (cleaned_data) de un envío.
// Los punteros nil equivalen a "campo no enviado".
type Form struct {
	SubjectIdentifier string
	ChildVisit        *subjects.Visit

	ReportDatetime *time.Time
	OffstudyDate   *time.Time // solo se usa la parte de fecha

	InfantIdentifier string
}

// Subject es el identificador efectivo: el de la visita si hay una vinculada,
// si no el enviado en el formulario.
func (f *Form) Subject() string {
	if f.ChildVisit != nil {
		return f.ChildVisit.SubjectIdentifier
	}
	return f.SubjectIdentifier
}

// Cleaner es un eslabón de la cadena de validación de un formulario.
type Cleaner interface {
	Clean(ctx context.Context, f *Form) error
}

type CleanerFunc func(ctx context.Context, f *Form) error

func (fn CleanerFunc) Clean(ctx context.Context, f *Form) error {
	return fn(ctx, f)
}

// Chain corre los cleaners en orden y corta en el primer error.
func Chain(cleaners ...Cleaner) Cleaner {
	return CleanerFunc(func(ctx context.Context, f *Form) error {
		for _, c := range cleaners {
			if c == nil {
				continue
			}
			if err := c.Clean(ctx, f); err != nil {
				return err
			}
		}
		return nil
	})
}
