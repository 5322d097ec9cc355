package auth

import (
	"testing"
	"time"

	"chatop/config"

	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:    "test_secret_key_very_long_for_testing",
			ExpiresIn: time.Hour,
		},
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	// Create JWT service
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	// Issue a token
	token, err := jwtService.Issue("user@example.com", nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Verify the token
	claims, err := jwtService.Verify(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)

	subject, err := claims.GetSubject()
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestJWTService_ExtraClaims(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	// Extra claims must not displace the registered ones
	token, err := jwtService.Issue("user@example.com", map[string]any{"name": "Tester"})
	assert.NoError(t, err)

	subject, err := jwtService.ExtractSubject(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.Verify(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	// A malformed token has no extractable subject either
	_, err = jwtService.ExtractSubject(invalidToken)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.JWT.Secret = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := otherService.Issue("user@example.com", nil)
	assert.NoError(t, err)

	// A token signed with another secret fails both paths
	_, err = jwtService.Verify(token)
	assert.Error(t, err)

	_, err = jwtService.ExtractSubject(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	// Build a service that issues already-expired tokens with the same secret.
	expiredIssuer := &jwtService{secret: testJWTConfig().JWT.Secret, expiresIn: -time.Hour}

	token, err := expiredIssuer.Issue("user@example.com", nil)
	assert.NoError(t, err)

	// Verify rejects the expired token
	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	// ExtractSubject still reads the subject of an authentic expired token
	subject, err := svc.ExtractSubject(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.Secret = ""

	// Should fail to create service
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
