package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/currency-detector/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/currency-detector/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Stores entry", func(t *testing.T) {
		repo := persistencemocks.NewMockSystemLogRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		userID := uint64(4)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		repo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *entity.SystemLog) bool {
			return e.Action == entity.ActionLogin && e.Message == "User x logged in" &&
				*e.UserID == 4 && e.Timestamp.Equal(fixedTime)
		})).RunAndReturn(func(_ context.Context, e *entity.SystemLog) error {
			e.ID = 12
			return nil
		}).Once()

		result := NewLogger(repo, mockTime, mockLogger).Record(ctx, entity.ActionLogin, "User x logged in", &userID)

		require.True(t, result.Ok())
		assert.Equal(t, uint64(12), result.Entry.ID)
	})

	t.Run("Entry without user", func(t *testing.T) {
		repo := persistencemocks.NewMockSystemLogRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		repo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *entity.SystemLog) bool {
			return e.UserID == nil
		})).Return(nil).Once()

		result := NewLogger(repo, mockTime, mockLogger).Record(ctx, entity.ActionDeleteProfile, "gone", nil)

		assert.True(t, result.Ok())
	})

	t.Run("Write failure is swallowed and reported", func(t *testing.T) {
		repo := persistencemocks.NewMockSystemLogRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		userID := uint64(4)
		writeErr := errors.New("connection reset")

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		repo.EXPECT().Append(mock.Anything, mock.Anything).Return(writeErr).Once()
		mockLogger.EXPECT().Warn("Failed to save audit log", mock.MatchedBy(func(f map[string]any) bool {
			return f["action"] == entity.ActionPredict && f["userId"] == uint64(4)
		})).Once()

		result := NewLogger(repo, mockTime, mockLogger).Record(ctx, entity.ActionPredict, "p", &userID)

		assert.False(t, result.Ok())
		assert.Equal(t, writeErr, result.Err)
		assert.Nil(t, result.Entry)
	})
}
