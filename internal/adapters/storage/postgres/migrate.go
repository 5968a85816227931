package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate crea las tablas de referencia si no existen. En despliegues contra la base
// de la aplicación principal las tablas ya existen y esto no cambia nada.
func Migrate(ctx context.Context, db *sql.DB, tables Tables) error {
	t, err := tables.resolve()
	if err != nil {
		return err
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			subject_identifier varchar(50) NOT NULL,
			report_datetime timestamptz NOT NULL
		)`, t.visit),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			subject_identifier varchar(50) NOT NULL UNIQUE,
			report_datetime timestamptz NOT NULL
		)`, t.infantBirth),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			subject_identifier varchar(50) NOT NULL,
			screening_identifier varchar(50) NOT NULL,
			consent_datetime timestamptz NOT NULL
		)`, t.subjectConsent),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			screening_identifier varchar(50) NOT NULL UNIQUE,
			version varchar(10) NOT NULL DEFAULT ''
		)`, t.consentVersion),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			subject_identifier varchar(50) NOT NULL UNIQUE,
			offstudy_date date NOT NULL
		)`, t.childOffstudy),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			name varchar(100) NOT NULL UNIQUE
		)`, t.actionType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			subject_identifier varchar(50) NOT NULL,
			action_type_id uuid NOT NULL REFERENCES %s (id),
			status varchar(25) NOT NULL
		)`, t.actionItem, t.actionType),
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
