package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"child-validations/internal/domain/actionitems"

	"github.com/google/uuid"
)

type ActionItemsRepo struct {
	mu    sync.RWMutex
	items []actionitems.ActionItem // orden de inserción
}

func NewActionItemsRepo() *ActionItemsRepo {
	return &ActionItemsRepo{}
}

func (r *ActionItemsRepo) Save(a actionitems.ActionItem) (actionitems.ActionItem, error) {
	if strings.TrimSpace(a.SubjectIdentifier) == "" || strings.TrimSpace(a.ActionType) == "" {
		return actionitems.ActionItem{}, errors.New("action item subject_identifier and action_type required")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = actionitems.StatusNew
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, a)
	return a, nil
}

func (r *ActionItemsRepo) Find(ctx context.Context, q actionitems.Query) (actionitems.ActionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if q.Matches(a) {
			return a, nil
		}
	}
	return actionitems.ActionItem{}, ErrActionItemNotFound
}
