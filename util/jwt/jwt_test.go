package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("whatever"))
	require.NoError(t, err)
	return tok
}

func TestExpiryOf(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	raw := signed(t, gojwt.MapClaims{"sub": "u1", "exp": exp.Unix()})

	got, err := ExpiryOf(raw)
	require.NoError(t, err)
	require.True(t, exp.Equal(got))

	// a Bearer prefix from a copied header is tolerated
	got, err = ExpiryOf("Bearer " + raw)
	require.NoError(t, err)
	require.True(t, exp.Equal(got))
}

func TestExpiryOf_Rejects(t *testing.T) {
	_, err := ExpiryOf("")
	require.Error(t, err)

	_, err = ExpiryOf("not-a-jwt")
	require.Error(t, err)

	_, err = ExpiryOf(signed(t, gojwt.MapClaims{"sub": "u1"}))
	require.Error(t, err, "token without exp is unusable for session gating")
}
