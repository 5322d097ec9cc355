// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chatop/config"
	"chatop/internal/domain/service"
	"chatop/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	expiresIn time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	expiresIn := cfg.JWT.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}

	return &jwtService{
		secret:    cfg.JWT.Secret,
		expiresIn: expiresIn,
	}, nil
}

// Issue creates a signed HS256 access token for the given subject.
func (s *jwtService) Issue(subject string, extraClaims map[string]any) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,                     // Subject (who the token is for)
		"iat": now.Unix(),                  // Issued At
		"exp": now.Add(s.expiresIn).Unix(), // Expiration Time
	}
	for key, value := range extraClaims {
		claims[key] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Verify checks the signature and the time-based claims of a token string.
// Expired tokens fail here even though ExtractSubject still reads them.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "token validation failed")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// ExtractSubject returns the subject of a token whose signature checks out,
// skipping time-based claim validation. This mirrors Verify's parsing in every
// other respect, so a tampered token is rejected in both paths.
func (s *jwtService) ExtractSubject(tokenString string) (string, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", errors.Wrap(err, "token parsing failed")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(err, "token has no subject")
	}

	return subject, nil
}

// keyFunc resolves the signing key and rejects unexpected signing methods.
func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}
	return []byte(s.secret), nil
}
