package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the front end can read from a backend-issued token.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim is before now. Tokens
// without exp never expire on this side.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// InspectToken decodes the claims of raw without verifying the signature.
// The backend alone holds the signing key and re-validates every call; the
// claims are only used to end obviously expired sessions early.
func InspectToken(raw string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parse token: %w", err)
	}

	var info TokenInfo
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
