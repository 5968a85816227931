package subjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsentSubjectIdentifier(t *testing.T) {
	cases := map[string]string{
		"123-10":            "123",
		"B142-040990462-10": "B142-040990462",
		"abc":               "",
		"":                  "",
		"ab":                "",
		"abcd":              "a",
	}
	for in, want := range cases {
		assert.Equal(t, want, ConsentSubjectIdentifier(in), "input %q", in)
	}
}

func TestLatest_PicksMaxConsentDatetime(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	consents := []SubjectConsent{
		{ID: "c1", ConsentDatetime: base},
		{ID: "c3", ConsentDatetime: base.Add(48 * time.Hour)},
		{ID: "c2", ConsentDatetime: base.Add(24 * time.Hour)},
	}

	got, ok := Latest(consents)
	assert.True(t, ok)
	assert.Equal(t, "c3", got.ID)

	_, ok = Latest(nil)
	assert.False(t, ok)
}
