package adapters

import (
	"context"
	"testing"
	"time"

	"movies_backend/internal/feature/auth/domain/entity"
	"movies_backend/internal/feature/auth/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError matches the production gorm config so duplicate-key
// violations surface the same way as with PostgreSQL.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// Create User table
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewUserGorm(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserGorm(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := &entity.User{
			Email:    "test@example.com",
			Password: "hashed_password",
			Name:     "Test User",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.Nil(t, user.AvatarPath, "new user should not have an avatar")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user1 := &entity.User{
			Email:    "duplicate@example.com",
			Password: "password1",
			Name:     "First",
		}
		err := repo.Create(context.Background(), user1)
		require.NoError(t, err, "failed to create first user")

		// Create second user with the same email
		user2 := &entity.User{
			Email:    "duplicate@example.com",
			Password: "password2",
			Name:     "Second",
		}
		err = repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should return ErrEmailAlreadyExists")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		// Create test data
		expected := &entity.User{
			Email:    "find@example.com",
			Password: "hashed_password",
			Name:     "Find Me",
		}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		// Execute search
		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.Name, found.Name, "name does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("find correct user when multiple users exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		// Create multiple users
		users := []*entity.User{
			{Email: "user1@example.com", Password: "pass1", Name: "One"},
			{Email: "user2@example.com", Password: "pass2", Name: "Two"},
			{Email: "user3@example.com", Password: "pass3", Name: "Three"},
		}
		for _, u := range users {
			err := repo.Create(context.Background(), u)
			require.NoError(t, err, "failed to create test data")
		}

		// Find user2
		found, err := repo.FindByEmail(context.Background(), "user2@example.com")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, users[1].ID, found.ID, "ID does not match")
		assert.Equal(t, "user2@example.com", found.Email, "email does not match")
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		// Create test data
		expected := &entity.User{
			Email:    "findbyid@example.com",
			Password: "hashed_password",
			Name:     "By ID",
		}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		// Execute search
		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserGorm_UpdateAvatarPath(t *testing.T) {
	t.Run("avatar path is stored and visible on lookup", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := &entity.User{
			Email:    "avatar@example.com",
			Password: "hashed_password",
			Name:     "Avatar",
		}
		require.NoError(t, repo.Create(context.Background(), user))

		err := repo.UpdateAvatarPath(context.Background(), user.ID, "abc123.png")
		assert.NoError(t, err, "failed to update avatar path")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.AvatarPath, "avatar path should be set")
		assert.Equal(t, "abc123.png", *found.AvatarPath)
	})

	t.Run("missing user error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.UpdateAvatarPath(context.Background(), 999, "abc123.png")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserGorm_Timestamps(t *testing.T) {
	t.Run("CreatedAt and UpdatedAt are automatically set", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		beforeCreate := time.Now()
		user := &entity.User{
			Email:    "timestamp@example.com",
			Password: "password",
			Name:     "Timestamps",
		}

		err := repo.Create(context.Background(), user)
		require.NoError(t, err, "failed to create user")

		afterCreate := time.Now()

		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
		assert.True(t, user.CreatedAt.After(beforeCreate) || user.CreatedAt.Equal(beforeCreate),
			"CreatedAt is before creation time")
		assert.True(t, user.CreatedAt.Before(afterCreate) || user.CreatedAt.Equal(afterCreate),
			"CreatedAt is after creation time")

		// Timestamps are preserved after retrieval
		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err, "failed to find user")

		assert.Equal(t, user.CreatedAt.Unix(), found.CreatedAt.Unix(), "CreatedAt does not match")
		assert.Equal(t, user.UpdatedAt.Unix(), found.UpdatedAt.Unix(), "UpdatedAt does not match")
	})
}
