package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/logger"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db, logger.NewNoopLogger())

	created := createUser(t, repo, "Amina")
	require.NotZero(t, created.ID)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, "Amina", got.FullName)
		assert.Equal(t, "amina@example.com", got.Email)
		assert.Equal(t, "hash-Amina", got.PasswordHash())
		assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("GetByEmail is case-insensitive", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "AMINA@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("Missing user", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("EmailExists", func(t *testing.T) {
		exists, err := repo.EmailExists(ctx, "amina@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.EmailExists(ctx, "other@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		dup := entity.RestoreUser(0, "Someone Else", "amina@example.com", "h", time.Now())
		assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateRegistration)
	})

	t.Run("Duplicate full name", func(t *testing.T) {
		dup := entity.RestoreUser(0, "Amina", "amina2@example.com", "h", time.Now())
		assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateRegistration)
	})

	t.Run("Distinct users", func(t *testing.T) {
		other := createUser(t, repo, "Bakri")
		assert.NotEqual(t, created.ID, other.ID)
	})

	t.Run("Delete", func(t *testing.T) {
		victim := createUser(t, repo, "Temp")

		require.NoError(t, repo.Delete(ctx, victim.ID))

		_, err := repo.GetByID(ctx, victim.ID)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, victim.ID), errs.ErrUserNotFound)
	})
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	noop := logger.NewNoopLogger()
	users := NewUserRepository(db, noop)
	predictions := NewPredictionRepository(db, noop)
	logs := NewSystemLogRepository(db, noop)

	victim := createUser(t, users, "Victim")
	bystander := createUser(t, users, "Bystander")
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, u := range []*entity.User{victim, bystander} {
		for i := 0; i < 3; i++ {
			require.NoError(t, predictions.Create(ctx, newPrediction(u.ID, now.Add(time.Duration(i)*time.Minute))))
		}
		id := u.ID
		require.NoError(t, logs.Append(ctx, &entity.SystemLog{UserID: &id, Action: entity.ActionLogin, Message: "login", Timestamp: now}))
	}

	require.NoError(t, users.Delete(ctx, victim.ID))

	victimPredictions, err := predictions.ListByUser(ctx, victim.ID)
	require.NoError(t, err)
	assert.Empty(t, victimPredictions)

	victimLogs, err := logs.ListByUser(ctx, victim.ID)
	require.NoError(t, err)
	assert.Empty(t, victimLogs)

	otherPredictions, err := predictions.ListByUser(ctx, bystander.ID)
	require.NoError(t, err)
	assert.Len(t, otherPredictions, 3)

	otherLogs, err := logs.ListByUser(ctx, bystander.ID)
	require.NoError(t, err)
	assert.Len(t, otherLogs, 1)
}
