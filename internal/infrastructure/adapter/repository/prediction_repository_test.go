package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/logger"
)

func TestPredictionRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	noop := logger.NewNoopLogger()
	users := NewUserRepository(db, noop)
	repo := NewPredictionRepository(db, noop)

	owner := createUser(t, users, "Owner")
	stranger := createUser(t, users, "Stranger")
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	late := newPrediction(owner.ID, base.Add(time.Hour))
	early := newPrediction(owner.ID, base)
	sameTime := newPrediction(owner.ID, base.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))
	require.NoError(t, repo.Create(ctx, sameTime))
	require.NoError(t, repo.Create(ctx, newPrediction(stranger.ID, base)))

	t.Run("History is ordered by timestamp then id", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, owner.ID)

		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, early.ID, list[0].ID)
		assert.Equal(t, late.ID, list[1].ID)
		assert.Equal(t, sameTime.ID, list[2].ID)
		for _, p := range list {
			assert.Equal(t, owner.ID, p.UserID)
		}
	})

	t.Run("Fields round-trip", func(t *testing.T) {
		got, err := repo.GetForUser(ctx, owner.ID, early.ID)

		require.NoError(t, err)
		assert.Equal(t, early.Classification(), got.Classification())
		assert.Equal(t, early.ImagePath, got.ImagePath)
		assert.True(t, early.Timestamp.Equal(got.Timestamp))
	})

	t.Run("Null denomination", func(t *testing.T) {
		p := newPrediction(owner.ID, base.Add(2*time.Hour))
		p.DenominationValue = nil
		require.NoError(t, repo.Create(ctx, p))

		got, err := repo.GetForUser(ctx, owner.ID, p.ID)

		require.NoError(t, err)
		assert.Nil(t, got.DenominationValue)
	})

	t.Run("Foreign prediction is not found", func(t *testing.T) {
		_, err := repo.GetForUser(ctx, stranger.ID, early.ID)
		assert.ErrorIs(t, err, errs.ErrPredictionNotFound)
	})

	t.Run("Absent prediction is not found", func(t *testing.T) {
		_, err := repo.GetForUser(ctx, owner.ID, 123456)
		assert.ErrorIs(t, err, errs.ErrPredictionNotFound)
	})

	t.Run("Orphan prediction is a persistence failure", func(t *testing.T) {
		err := repo.Create(ctx, newPrediction(987654, base))
		assert.ErrorIs(t, err, errs.ErrPersistenceFailure)
	})

	t.Run("DeleteByUser only touches the owner", func(t *testing.T) {
		deleted, err := repo.DeleteByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), deleted)

		list, err := repo.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = repo.ListByUser(ctx, stranger.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		deleted, err = repo.DeleteByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
