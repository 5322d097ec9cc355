package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chatop/internal/domain/entity"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/domain/repository"
	"chatop/internal/infra/persistence/model"
)

// setupTestDB opens an in-memory SQLite database and migrates the schema.
// The pool is pinned to a single connection because each SQLite in-memory
// connection gets its own database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.UserModel{}, &model.RentalModel{}, &model.MessageModel{})
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Test User"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user, "hashed-password"))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "owner@example.com", Name: "Owner"}
	require.NoError(t, repo.Create(ctx, user, "hashed-password"))

	// The generated ID and timestamps are written back
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", byID.Email)
	assert.Equal(t, "Owner", byID.Name)

	byEmail, err := repo.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 12345)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindCredentialByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindCredentialByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "cred@example.com")

	cred, err := repo.FindCredentialByEmail(ctx, "cred@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, cred.UserID)
	assert.Equal(t, "cred@example.com", cred.Subject)
	assert.Equal(t, "hashed-password", cred.PasswordHash)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "exists@example.com")

	exists, err := repo.ExistsByEmail(ctx, "exists@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "dup@example.com")

	err := repo.Create(ctx, &entity.User{Email: "dup@example.com", Name: "Other"}, "other-hash")
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyUsed)
}

func TestRentalRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	rental := &entity.Rental{
		Name:        "Seaside flat",
		Surface:     42.5,
		Price:       1200,
		Description: "Two rooms with a view",
		OwnerID:     owner.ID,
	}
	require.NoError(t, repo.Create(ctx, rental))
	assert.NotZero(t, rental.ID)

	found, err := repo.FindByID(ctx, rental.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seaside flat", found.Name)
	assert.Equal(t, 42.5, found.Surface)
	assert.Equal(t, owner.ID, found.OwnerID)
	assert.Empty(t, found.Picture)
}

func TestRentalRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	first := &entity.Rental{Name: "First", Surface: 10, Price: 100, OwnerID: owner.ID}
	second := &entity.Rental{Name: "Second", Surface: 20, Price: 200, OwnerID: owner.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Oldest first
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
}

func TestRentalRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	rental := &entity.Rental{Name: "Before", Surface: 10, Price: 100, OwnerID: owner.ID}
	require.NoError(t, repo.Create(ctx, rental))

	rental.Name = "After"
	rental.Picture = "http://localhost/uploads/rental_1_123.jpg"
	require.NoError(t, repo.Update(ctx, rental))

	found, err := repo.FindByID(ctx, rental.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", found.Name)
	assert.Equal(t, "http://localhost/uploads/rental_1_123.jpg", found.Picture)
}

func TestRentalRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRentalRepository(db)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrRentalNotFound)
}

func TestMessageRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	rental := &entity.Rental{Name: "Flat", Surface: 10, Price: 100, OwnerID: owner.ID}
	require.NoError(t, NewRentalRepository(db).Create(ctx, rental))

	message := &entity.Message{UserID: owner.ID, RentalID: rental.ID, Message: "Is it still available?"}
	require.NoError(t, NewMessageRepository(db).Create(ctx, message))
	assert.NotZero(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero())
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := setupTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	// A failing callback rolls back everything done inside the transaction
	rollbackErr := assert.AnError
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		rental := &entity.Rental{Name: "Ghost", Surface: 1, Price: 1, OwnerID: owner.ID}
		if err := f.RentalRepo().Create(ctx, rental); err != nil {
			return err
		}
		return rollbackErr
	})
	assert.ErrorIs(t, err, rollbackErr)

	all, err := NewRentalRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// A successful callback commits
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		rental := &entity.Rental{Name: "Kept", Surface: 1, Price: 1, OwnerID: owner.ID}
		return f.RentalRepo().Create(ctx, rental)
	})
	require.NoError(t, err)

	all, err = NewRentalRepository(db).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Kept", all[0].Name)
}
