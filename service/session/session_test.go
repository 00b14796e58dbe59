package session

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func token(t *testing.T, exp time.Time) string {
	t.Helper()
	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("provider-secret"))
	require.NoError(t, err)
	return raw
}

func TestClient_ActiveWhileUnexpired(t *testing.T) {
	c := NewClient()
	_, ok := c.ActiveToken()
	require.False(t, ok, "no token installed yet")

	raw := token(t, time.Now().Add(time.Hour))
	require.NoError(t, c.SetToken(raw))

	got, ok := c.ActiveToken()
	require.True(t, ok)
	require.Equal(t, raw, got.Bearer)

	c.Clear()
	_, ok = c.ActiveToken()
	require.False(t, ok)
}

func TestClient_ExpiredTokenIsInactive(t *testing.T) {
	c := NewClient()
	require.NoError(t, c.SetToken(token(t, time.Now().Add(-time.Minute))))
	_, ok := c.ActiveToken()
	require.False(t, ok)
}

func TestClient_RejectsTokenWithoutExpiry(t *testing.T) {
	c := NewClient()
	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"sub": "x"}).
		SignedString([]byte("k"))
	require.NoError(t, err)
	require.Error(t, c.SetToken(raw))
}
