package actionitems

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("action item not found")

// Query filtra por igualdad; campos vacíos no filtran.
type Query struct {
	SubjectIdentifier string
	ActionType        string
	Status            Status
}

func (q Query) Matches(a ActionItem) bool {
	if q.SubjectIdentifier != "" && a.SubjectIdentifier != q.SubjectIdentifier {
		return false
	}
	if q.ActionType != "" && a.ActionType != q.ActionType {
		return false
	}
	if q.Status != "" && a.Status != q.Status {
		return false
	}
	return true
}

type Repository interface {
	// Find devuelve el primer action item que cumple la query o ErrNotFound.
	Find(ctx context.Context, q Query) (ActionItem, error)
}
