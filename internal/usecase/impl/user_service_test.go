package impl

import (
	"context"
	"testing"

	"chatop/internal/domain/entity"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/domain/repository"
	mockRepo "chatop/internal/mocks/repository"
	mockSvc "chatop/internal/mocks/service"
	"chatop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Run(func(_ context.Context, user *entity.User, _ string) {
			user.ID = 1
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTransaction(fixtures.txManager, factory)

	fixtures.tokenService.EXPECT().Issue(input.Email, mock.Anything).Return("signed-token", nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Register_EmailAlreadyUsed(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Name:     "Test User",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTransaction(fixtures.txManager, factory)

	output, err := fixtures.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyUsed)
	assert.Nil(t, output)
	// No token is ever issued for a failed registration
	fixtures.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	cred := &entity.Credential{
		UserID:       7,
		Subject:      "user@example.com",
		PasswordHash: "stored_hash",
	}

	fixtures.userRepo.EXPECT().FindCredentialByEmail(ctx, "user@example.com").Return(cred, nil)
	fixtures.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fixtures.tokenService.EXPECT().Issue("user@example.com", mock.Anything).Return("signed-token", nil)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindCredentialByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	cred := &entity.Credential{
		UserID:       7,
		Subject:      "user@example.com",
		PasswordHash: "stored_hash",
	}

	fixtures.userRepo.EXPECT().FindCredentialByEmail(ctx, "user@example.com").Return(cred, nil)
	fixtures.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	// A wrong password is indistinguishable from an unknown email
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Me(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "user@example.com", Name: "User"}
	fixtures.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)

	found, err := fixtures.service.Me(ctx, "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestUserService_Me_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.Me(ctx, "gone@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetUser(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 3, Email: "owner@example.com", Name: "Owner"}
	fixtures.userRepo.EXPECT().FindByID(ctx, uint64(3)).Return(user, nil)

	found, err := fixtures.service.GetUser(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindByID(ctx, uint64(404)).
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.GetUser(ctx, 404)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
