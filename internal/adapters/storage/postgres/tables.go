package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Tables son las referencias a modelos (app_label.model) que usa cada repo.
type Tables struct {
	Visit          string
	InfantBirth    string
	SubjectConsent string
	ConsentVersion string
	ChildOffstudy  string
	ActionItem     string
	ActionType     string
}

func DefaultTables() Tables {
	return Tables{
		Visit:          "flourish_child.childvisit",
		InfantBirth:    "flourish_child.childbirth",
		SubjectConsent: "flourish_caregiver.subjectconsent",
		ConsentVersion: "flourish_caregiver.flourishconsentversion",
		ChildOffstudy:  "flourish_prn.childoffstudy",
		ActionItem:     "edc_action_item.actionitem",
		ActionType:     "edc_action_item.actiontype",
	}
}

// TableName convierte "app_label.model" al nombre de tabla por convención
// ("app_label_model") ya quoteado para SQL.
func TableName(label string) (string, error) {
	parts := strings.Split(strings.TrimSpace(label), ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("invalid model reference %q", label)
	}
	name := strings.ToLower(parts[0] + "_" + parts[1])
	return pgx.Identifier{name}.Sanitize(), nil
}

// resolved son los nombres ya quoteados.
type resolved struct {
	visit, infantBirth, subjectConsent, consentVersion, childOffstudy, actionItem, actionType string
}

func (t Tables) resolve() (resolved, error) {
	var r resolved
	targets := []struct {
		label string
		dst   *string
	}{
		{t.Visit, &r.visit},
		{t.InfantBirth, &r.infantBirth},
		{t.SubjectConsent, &r.subjectConsent},
		{t.ConsentVersion, &r.consentVersion},
		{t.ChildOffstudy, &r.childOffstudy},
		{t.ActionItem, &r.actionItem},
		{t.ActionType, &r.actionType},
	}
	for _, tg := range targets {
		name, err := TableName(tg.label)
		if err != nil {
			return resolved{}, err
		}
		*tg.dst = name
	}
	return r, nil
}
