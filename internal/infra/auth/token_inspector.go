// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"beacon/internal/domain/service"
)

// tokenInspector reads claims out of backend-issued ID tokens without
// verifying them. Signature verification belongs to the backend; the client
// only needs the claims for expiry bookkeeping.
type tokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for tokenInspector.
func NewTokenInspector() service.TokenInspector {
	return &tokenInspector{
		parser: jwt.NewParser(),
	}
}

// Inspect parses the token and extracts the claims the client cares about.
// It fails when the token is not a structurally valid JWT; opaque tokens from
// test doubles are expected to fail here and callers fall back to defaults.
func (i *tokenInspector) Inspect(token string) (*service.TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse ID token")
	}

	info := &service.TokenInfo{}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Unix()
	}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}

	return info, nil
}
