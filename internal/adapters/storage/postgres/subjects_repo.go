package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"child-validations/internal/domain/subjects"
)

// SubjectsStore lee los registros de referencia desde las tablas configuradas.
type SubjectsStore struct {
	db *sql.DB
	t  resolved
}

func NewSubjectsStore(db *sql.DB, tables Tables) (*SubjectsStore, error) {
	t, err := tables.resolve()
	if err != nil {
		return nil, err
	}
	return &SubjectsStore{db: db, t: t}, nil
}

var _ subjects.Store = (*SubjectsStore)(nil)

func (s *SubjectsStore) Visits() subjects.VisitRepository                   { return visitRepo{s} }
func (s *SubjectsStore) Births() subjects.BirthRepository                   { return birthRepo{s} }
func (s *SubjectsStore) Consents() subjects.ConsentRepository               { return consentRepo{s} }
func (s *SubjectsStore) ConsentVersions() subjects.ConsentVersionRepository { return consentVersionRepo{s} }
func (s *SubjectsStore) Offstudies() subjects.OffstudyRepository            { return offstudyRepo{s} }

type visitRepo struct{ s *SubjectsStore }

func (r visitRepo) GetByID(ctx context.Context, id string) (subjects.Visit, error) {
	if id == "" {
		return subjects.Visit{}, ErrNotFound
	}

	row := r.s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id::text, subject_identifier, report_datetime
		FROM %s
		WHERE id::text = $1
	`, r.s.t.visit), id)

	var v subjects.Visit
	if err := row.Scan(&v.ID, &v.SubjectIdentifier, &v.ReportDatetime); err != nil {
		return subjects.Visit{}, notFound(err)
	}
	return v, nil
}

type birthRepo struct{ s *SubjectsStore }

func (r birthRepo) GetBySubject(ctx context.Context, subjectIdentifier string) (subjects.InfantBirth, error) {
	if subjectIdentifier == "" {
		return subjects.InfantBirth{}, ErrNotFound
	}

	row := r.s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id::text, subject_identifier, report_datetime
		FROM %s
		WHERE subject_identifier = $1
		LIMIT 1
	`, r.s.t.infantBirth), subjectIdentifier)

	var b subjects.InfantBirth
	if err := row.Scan(&b.ID, &b.SubjectIdentifier, &b.ReportDatetime); err != nil {
		return subjects.InfantBirth{}, notFound(err)
	}
	return b, nil
}

type consentRepo struct{ s *SubjectsStore }

func (r consentRepo) ListBySubject(ctx context.Context, subjectIdentifier string) ([]subjects.SubjectConsent, error) {
	if subjectIdentifier == "" {
		return nil, nil
	}

	rows, err := r.s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id::text, subject_identifier, screening_identifier, consent_datetime
		FROM %s
		WHERE subject_identifier = $1
		ORDER BY consent_datetime DESC
	`, r.s.t.subjectConsent), subjectIdentifier)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]subjects.SubjectConsent, 0)
	for rows.Next() {
		var c subjects.SubjectConsent
		if err := rows.Scan(&c.ID, &c.SubjectIdentifier, &c.ScreeningIdentifier, &c.ConsentDatetime); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r consentRepo) LatestBySubject(ctx context.Context, subjectIdentifier string) (subjects.SubjectConsent, error) {
	if subjectIdentifier == "" {
		return subjects.SubjectConsent{}, ErrNotFound
	}

	row := r.s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id::text, subject_identifier, screening_identifier, consent_datetime
		FROM %s
		WHERE subject_identifier = $1
		ORDER BY consent_datetime DESC
		LIMIT 1
	`, r.s.t.subjectConsent), subjectIdentifier)

	var c subjects.SubjectConsent
	if err := row.Scan(&c.ID, &c.SubjectIdentifier, &c.ScreeningIdentifier, &c.ConsentDatetime); err != nil {
		return subjects.SubjectConsent{}, notFound(err)
	}
	return c, nil
}

type consentVersionRepo struct{ s *SubjectsStore }

func (r consentVersionRepo) GetByScreening(ctx context.Context, screeningIdentifier string) (subjects.ConsentVersion, error) {
	if screeningIdentifier == "" {
		return subjects.ConsentVersion{}, ErrNotFound
	}

	row := r.s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id::text, screening_identifier, version
		FROM %s
		WHERE screening_identifier = $1
		LIMIT 1
	`, r.s.t.consentVersion), screeningIdentifier)

	var cv subjects.ConsentVersion
	if err := row.Scan(&cv.ID, &cv.ScreeningIdentifier, &cv.Version); err != nil {
		return subjects.ConsentVersion{}, notFound(err)
	}
	return cv, nil
}

type offstudyRepo struct{ s *SubjectsStore }

func (r offstudyRepo) GetBySubject(ctx context.Context, subjectIdentifier string) (subjects.Offstudy, error) {
	if subjectIdentifier == "" {
		return subjects.Offstudy{}, ErrNotFound
	}

	row := r.s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id::text, subject_identifier, offstudy_date
		FROM %s
		WHERE subject_identifier = $1
		LIMIT 1
	`, r.s.t.childOffstudy), subjectIdentifier)

	var o subjects.Offstudy
	if err := row.Scan(&o.ID, &o.SubjectIdentifier, &o.OffstudyDate); err != nil {
		return subjects.Offstudy{}, notFound(err)
	}
	return o, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
