package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry derives the expiry of an access token when the token happens to
// be a JWT carrying an exp claim. The signature is not verified; the value is
// informational only and never decides whether a cached session is reusable
// (the authenticated probe does). Opaque tokens return the zero time.
func TokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
