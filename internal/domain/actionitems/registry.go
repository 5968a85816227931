package actionitems

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrNotRegistered = errors.New("action not registered")

// Action es una acción registrada en el sitio; expone dónde viven sus action items.
type Action struct {
	Name  string
	items Repository
}

func NewAction(name string, items Repository) Action {
	return Action{Name: strings.TrimSpace(name), items: items}
}

func (a Action) ItemRepository() Repository {
	return a.items
}

// Registry es el registro de acciones del sitio (nombre -> acción).
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

func NewRegistry() *Registry {
	return &Registry{actions: map[string]Action{}}
}

func (r *Registry) Register(a Action) error {
	if a.Name == "" || a.items == nil {
		return fmt.Errorf("register action %q: name and item repository required", a.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[a.Name]; exists {
		return fmt.Errorf("register action %q: already registered", a.Name)
	}
	r.actions[a.Name] = a
	return nil
}

func (r *Registry) Get(name string) (Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[strings.TrimSpace(name)]
	if !ok {
		return Action{}, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return a, nil
}
