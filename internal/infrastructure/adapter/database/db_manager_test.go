package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	domainErr "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/logger"
)

func TestManager_ConnectMigratePing(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())
	tdb.Setup(t)
	ctx := context.Background()

	require.NoError(t, tdb.Manager.Ping(ctx))
	assert.Equal(t, 1, tdb.Manager.PoolMetrics().MaxOpenConnections)

	// Migrations are idempotent
	require.NoError(t, tdb.Manager.Migrate(ctx))
}

func TestManager_NotConnected(t *testing.T) {
	m := NewManager(DefaultConfig(), logger.NewNoopLogger(), nil)

	assert.ErrorIs(t, m.Ping(context.Background()), ErrNotConnected)
	assert.ErrorIs(t, m.Migrate(context.Background()), ErrNotConnected)
	assert.NoError(t, m.Close())
}

func TestManager_ConnectRetries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Driver = DriverPostgres
	cfg.URL = "postgres://u:p@127.0.0.1:1/app?connect_timeout=1"
	cfg.RetryAttempts = 3
	cfg.RetryDelay = time.Minute

	m := NewManager(cfg, logger.NewNoopLogger(), nil)
	var slept []time.Duration
	m.sleep = func(d time.Duration) { slept = append(slept, d) }

	_, err := m.Connect()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, []time.Duration{time.Minute, time.Minute}, slept)
}

func TestManager_ConnectRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Driver = "oracle"

	_, err := NewManager(cfg, logger.NewNoopLogger(), nil).Connect()

	assert.ErrorContains(t, err, "invalid database config")
}

func TestUnitOfWork(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())
	tdb.Setup(t)
	ctx := context.Background()
	uow := tdb.Manager.CreateUnitOfWork()

	user := entity.RestoreUser(0, "Tx User", "tx@example.com", "hash", time.Now().UTC())
	require.NoError(t, uow.GetUserRepository(ctx).Create(ctx, user))

	prediction := func() *entity.Prediction {
		return &entity.Prediction{
			UserID:       user.ID,
			CurrencyCode: "USD",
			Confidence:   0.8,
			NameEn:       "One Dollar",
			NameAr:       "دولار واحد",
			ImagePath:    "/static/uploads/a.jpg",
			Timestamp:    time.Now().UTC(),
		}
	}

	t.Run("Commit persists", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.GetPredictionRepository(txCtx).Create(txCtx, prediction()))
		require.NoError(t, uow.Commit(txCtx))

		list, err := uow.GetPredictionRepository(ctx).ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Rollback discards", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.GetPredictionRepository(txCtx).Create(txCtx, prediction()))
		require.NoError(t, uow.Rollback(txCtx))

		list, err := uow.GetPredictionRepository(ctx).ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Rollback after commit is tolerated", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Commit(txCtx))

		assert.NoError(t, uow.Rollback(txCtx))
	})

	t.Run("Missing transaction", func(t *testing.T) {
		assert.ErrorIs(t, uow.Commit(ctx), ErrNoTransaction)
		assert.ErrorIs(t, uow.Rollback(ctx), ErrNoTransaction)
	})

	t.Run("User delete rolled back keeps the user", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.GetUserRepository(txCtx).Delete(txCtx, user.ID))
		require.NoError(t, uow.Rollback(txCtx))

		_, err = uow.GetUserRepository(ctx).GetByID(ctx, user.ID)
		assert.NoError(t, err)
	})

	t.Run("User delete committed cascades to predictions", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.GetUserRepository(txCtx).Delete(txCtx, user.ID))
		require.NoError(t, uow.Commit(txCtx))

		_, err = uow.GetUserRepository(ctx).GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, domainErr.ErrUserNotFound)

		list, err := uow.GetPredictionRepository(ctx).ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestErrorMapper(t *testing.T) {
	m := NewErrorMapper()

	assert.NoError(t, m.MapError(nil, "op"))
	assert.ErrorIs(t, m.MapError(errors.New(`duplicate key value violates unique constraint "idx_users_email"`), "op"), domainErr.ErrDuplicateRegistration)
	assert.ErrorIs(t, m.MapError(context.DeadlineExceeded, "op"), domainErr.ErrPersistenceFailure)
	assert.ErrorIs(t, m.MapError(errors.New("boom"), "op"), domainErr.ErrPersistenceFailure)
}
