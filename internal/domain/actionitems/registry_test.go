package actionitems

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct{}

func (stubRepo) Find(ctx context.Context, q Query) (ActionItem, error) {
	return ActionItem{}, ErrNotFound
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(NewAction(ChildOffStudyAction, stubRepo{})))

	a, err := reg.Get(ChildOffStudyAction)
	require.NoError(t, err)
	assert.Equal(t, ChildOffStudyAction, a.Name)
	assert.NotNil(t, a.ItemRepository())
}

func TestRegistry_RejectsDuplicatesAndIncomplete(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(NewAction(ChildOffStudyAction, stubRepo{})))

	assert.Error(t, reg.Register(NewAction(ChildOffStudyAction, stubRepo{})))
	assert.Error(t, reg.Register(NewAction("", stubRepo{})))
	assert.Error(t, reg.Register(NewAction("other", nil)))
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewRegistry().Get("missing")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestQuery_Matches(t *testing.T) {
	item := ActionItem{SubjectIdentifier: "S-10", ActionType: ChildOffStudyAction, Status: StatusNew}

	assert.True(t, Query{SubjectIdentifier: "S-10", ActionType: ChildOffStudyAction, Status: StatusNew}.Matches(item))
	assert.True(t, Query{SubjectIdentifier: "S-10"}.Matches(item))
	assert.False(t, Query{SubjectIdentifier: "S-10", Status: StatusOpen}.Matches(item))
	assert.False(t, Query{ActionType: "other"}.Matches(item))
}
