package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the access tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for the given subject. Extra claims
	// are merged into the token payload alongside the registered ones.
	Issue(subject string, extraClaims map[string]any) (string, error)

	// Verify checks the signature and the time-based claims of a token string
	// and returns its claims when, and only when, the token is fully valid.
	Verify(tokenString string) (*Claims, error)

	// ExtractSubject returns the subject of a token whose signature checks
	// out, without validating time-based claims. An expired but authentic
	// token still yields its subject; Verify is the authority on validity.
	ExtractSubject(tokenString string) (string, error)
}
