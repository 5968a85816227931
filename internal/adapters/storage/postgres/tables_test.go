package postgres

import (
	"testing"

	"child-validations/internal/domain/actionitems"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableName(t *testing.T) {
	name, err := TableName("flourish_caregiver.subjectconsent")
	require.NoError(t, err)
	assert.Equal(t, `"flourish_caregiver_subjectconsent"`, name)

	name, err = TableName(`evil".table`)
	require.NoError(t, err)
	assert.Equal(t, `"evil""_table"`, name)

	for _, bad := range []string{"", "noapp", "a.b.c", ".model", "app."} {
		_, err := TableName(bad)
		assert.Error(t, err, bad)
	}
}

func TestDefaultTables_Resolve(t *testing.T) {
	r, err := DefaultTables().resolve()
	require.NoError(t, err)
	assert.Equal(t, `"flourish_prn_childoffstudy"`, r.childOffstudy)
	assert.Equal(t, `"edc_action_item_actionitem"`, r.actionItem)

	bad := DefaultTables()
	bad.InfantBirth = ""
	_, err = bad.resolve()
	assert.Error(t, err)
}

func TestFindFilter(t *testing.T) {
	where, args := findFilter(actionitems.Query{
		SubjectIdentifier: "B1-10",
		ActionType:        actionitems.ChildOffStudyAction,
		Status:            actionitems.StatusNew,
	})
	assert.Equal(t, "WHERE ai.subject_identifier = $1 AND at.name = $2 AND ai.status = $3", where)
	assert.Equal(t, []any{"B1-10", actionitems.ChildOffStudyAction, "New"}, args)

	where, args = findFilter(actionitems.Query{Status: actionitems.StatusOpen})
	assert.Equal(t, "WHERE ai.status = $1", where)
	assert.Equal(t, []any{"Open"}, args)

	where, args = findFilter(actionitems.Query{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}
