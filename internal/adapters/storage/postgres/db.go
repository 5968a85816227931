package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"child-validations/internal/domain/actionitems"
	"child-validations/internal/domain/subjects"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound           = fmt.Errorf("postgres: %w", subjects.ErrNotFound)
	ErrActionItemNotFound = fmt.Errorf("postgres: %w", actionitems.ErrNotFound)
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// solo lecturas cortas por request
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
