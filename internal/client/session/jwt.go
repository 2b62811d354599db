package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired peeks at the exp claim without verifying the signature.
// Opaque tokens and tokens without exp are never considered expired here;
// the server stays the authority on validity.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
