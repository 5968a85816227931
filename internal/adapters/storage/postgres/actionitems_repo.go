package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"child-validations/internal/domain/actionitems"
)

type ActionItemsRepo struct {
	db *sql.DB
	t  resolved
}

func NewActionItemsRepo(db *sql.DB, tables Tables) (*ActionItemsRepo, error) {
	t, err := tables.resolve()
	if err != nil {
		return nil, err
	}
	return &ActionItemsRepo{db: db, t: t}, nil
}

// Find arma el WHERE solo con los campos no vacíos de la query.
func (r *ActionItemsRepo) Find(ctx context.Context, q actionitems.Query) (actionitems.ActionItem, error) {
	where, args := findFilter(q)

	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT ai.id::text, ai.subject_identifier, at.name, ai.status
		FROM %s ai
		JOIN %s at ON at.id = ai.action_type_id
		%s
		ORDER BY ai.id
		LIMIT 1
	`, r.t.actionItem, r.t.actionType, where), args...)

	var a actionitems.ActionItem
	var status string
	if err := row.Scan(&a.ID, &a.SubjectIdentifier, &a.ActionType, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return actionitems.ActionItem{}, ErrActionItemNotFound
		}
		return actionitems.ActionItem{}, err
	}
	a.Status = actionitems.Status(status)
	return a, nil
}

func findFilter(q actionitems.Query) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)

	add := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("ai.subject_identifier", q.SubjectIdentifier)
	add("at.name", q.ActionType)
	add("ai.status", string(q.Status))

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
