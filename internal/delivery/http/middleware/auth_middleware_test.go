package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatop/internal/domain/entity"
	"chatop/internal/domain/service"
	mocksservice "chatop/internal/mocks/service"
	mocksusecase "chatop/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	tokenSvc *mocksservice.MockTokenService
	userUC   *mocksusecase.MockUserUsecase
}

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *authFixtures) {
	t.Helper()

	fixtures := &authFixtures{
		tokenSvc: mocksservice.NewMockTokenService(t),
		userUC:   mocksusecase.NewMockUserUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(fixtures.tokenSvc, fixtures.userUC, logger), fixtures
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func claimsWithSubject(subject string) *service.Claims {
	return &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}
}

// runAuthenticate drives the middleware and reports whether the chain reached
// the next handler.
func runAuthenticate(t *testing.T, m *AuthMiddleware, c echo.Context) bool {
	t.Helper()

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)
	require.NoError(t, err)

	return nextCalled
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m, fixtures := createTestAuthMiddleware(t)
	user := &entity.User{ID: 7, Email: "owner@test.com", Name: "Owner"}

	fixtures.tokenSvc.EXPECT().ExtractSubject("good-token").Return("owner@test.com", nil)
	fixtures.userUC.EXPECT().Me(mock.Anything, "owner@test.com").Return(user, nil)
	fixtures.tokenSvc.EXPECT().Verify("good-token").Return(claimsWithSubject("owner@test.com"), nil)

	c, _ := newAuthContext("Bearer good-token")
	assert.True(t, runAuthenticate(t, m, c))

	assert.Equal(t, user, AuthenticatedUser(c))
	assert.Equal(t, uint64(7), c.Get(KeyUserID))
}

func TestAuthenticate_NoHeader(t *testing.T) {
	m, fixtures := createTestAuthMiddleware(t)

	c, _ := newAuthContext("")
	assert.True(t, runAuthenticate(t, m, c))

	assert.Nil(t, AuthenticatedUser(c))
	fixtures.tokenSvc.AssertNotCalled(t, "ExtractSubject", mock.Anything)
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	m, fixtures := createTestAuthMiddleware(t)

	c, _ := newAuthContext("Basic dXNlcjpwYXNz")
	assert.True(t, runAuthenticate(t, m, c))

	assert.Nil(t, AuthenticatedUser(c))
	fixtures.tokenSvc.AssertNotCalled(t, "ExtractSubject", mock.Anything)
}

func TestAuthenticate_UnreadableToken(t *testing.T) {
	m, fixtures := createTestAuthMiddleware(t)

	fixtures.tokenSvc.EXPECT().ExtractSubject("garbage").Return("", errors.New("token is malformed"))

	c, _ := newAuthContext("Bearer garbage")
	assert.True(t, runAuthenticate(t, m, c))

	assert.Nil(t, AuthenticatedUser(c))
	fixtures.userUC.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
}

func TestAuthenticate_UnknownAccount(t *testing.T) {
	m, fixtures := createTestAuthMiddleware(t)

	fixtures.tokenSvc.EXPECT().ExtractSubject("orphan-token").Return("ghost@test.com", nil)
	fixtures.userUC.EXPECT().Me(mock.Anything, "ghost@test.com").Return(nil, errors.New("user not found"))

	c, _ := newAuthContext("Bearer orphan-token")
	assert.True(t, runAuthenticate(t, m, c))

	assert.Nil(t, AuthenticatedUser(c))
	fixtures.tokenSvc.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m, fixtures := createTestAuthMiddleware(t)
	user := &entity.User{ID: 7, Email: "owner@test.com"}

	// An expired token still names its subject, but full validation fails and
	// the request continues without an identity.
	fixtures.tokenSvc.EXPECT().ExtractSubject("expired-token").Return("owner@test.com", nil)
	fixtures.userUC.EXPECT().Me(mock.Anything, "owner@test.com").Return(user, nil)
	fixtures.tokenSvc.EXPECT().Verify("expired-token").Return(nil, errors.New("token is expired"))

	c, _ := newAuthContext("Bearer expired-token")
	assert.True(t, runAuthenticate(t, m, c))

	assert.Nil(t, AuthenticatedUser(c))
}

func TestAuthenticate_SubjectMismatch(t *testing.T) {
	m, fixtures := createTestAuthMiddleware(t)
	user := &entity.User{ID: 7, Email: "owner@test.com"}

	fixtures.tokenSvc.EXPECT().ExtractSubject("odd-token").Return("owner@test.com", nil)
	fixtures.userUC.EXPECT().Me(mock.Anything, "owner@test.com").Return(user, nil)
	fixtures.tokenSvc.EXPECT().Verify("odd-token").Return(claimsWithSubject("someone@else.com"), nil)

	c, _ := newAuthContext("Bearer odd-token")
	assert.True(t, runAuthenticate(t, m, c))

	assert.Nil(t, AuthenticatedUser(c))
}

func TestAuthenticate_ExistingIdentityWins(t *testing.T) {
	m, fixtures := createTestAuthMiddleware(t)
	user := &entity.User{ID: 3, Email: "early@test.com"}

	c, _ := newAuthContext("Bearer any-token")
	c.Set(KeyAuthUser, user)
	assert.True(t, runAuthenticate(t, m, c))

	assert.Equal(t, user, AuthenticatedUser(c))
	fixtures.tokenSvc.AssertNotCalled(t, "ExtractSubject", mock.Anything)
}

func TestRequireAuthenticated_Anonymous(t *testing.T) {
	m, _ := createTestAuthMiddleware(t)

	c, rec := newAuthContext("")
	err := m.RequireAuthenticated(func(c echo.Context) error {
		t.Fatal("next handler must not run for anonymous requests")

		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestRequireAuthenticated_WithIdentity(t *testing.T) {
	m, _ := createTestAuthMiddleware(t)

	c, _ := newAuthContext("")
	c.Set(KeyAuthUser, &entity.User{ID: 1})

	nextCalled := false
	err := m.RequireAuthenticated(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)
	require.NoError(t, err)

	assert.True(t, nextCalled)
}
