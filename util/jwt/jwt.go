package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryOf reads the exp claim from a bearer token without verifying the
// signature. The token is issued by the external auth provider; this client
// never holds the signing key, it only needs to know when the session lapses.
func ExpiryOf(tokenStr string) (time.Time, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
		tokenStr = strings.TrimSpace(tokenStr[7:])
	}
	if tokenStr == "" {
		return time.Time{}, errors.New("missing token")
	}

	tok, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := tok.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("exp claim missing")
	}
	return exp.Time, nil
}
