package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestVerify_ValidToken(t *testing.T) {
	v := NewVerifier("s3cret", "flourish")
	token := sign(t, "s3cret", tokenClaims{
		Email:  "ra@example.org",
		SiteID: "40",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ra-1",
			Issuer:    "flourish",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	c, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ra-1", c.UserID)
	assert.Equal(t, "ra@example.org", c.Email)
	assert.Equal(t, "40", c.SiteID)
}

func TestVerify_Rejects(t *testing.T) {
	v := NewVerifier("s3cret", "")
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := map[string]string{
		"wrong secret": sign(t, "other", tokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", ExpiresAt: exp}}),
		"expired": sign(t, "s3cret", tokenClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject: "u", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}}),
		"no exp":     sign(t, "s3cret", tokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}),
		"no subject": sign(t, "s3cret", tokenClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}}),
		"garbage":    "not-a-jwt",
	}
	for name, token := range cases {
		_, err := v.Verify(context.Background(), token)
		assert.Error(t, err, name)
	}

	_, err := v.Verify(context.Background(), " ")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	_, err = NewVerifier("", "").Verify(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
