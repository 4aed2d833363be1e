package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/logger"
)

// newTestDB returns a migrated in-memory SQLite database private to the test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.NewMigrationManager(db, logger.NewNoopLogger(), nil).MigrateAll(context.Background()))
	return db
}

func createUser(t *testing.T, repo *UserRepository, name string) *entity.User {
	t.Helper()
	user := entity.RestoreUser(0, name, strings.ToLower(name)+"@example.com", "hash-"+name, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func newPrediction(userID uint64, at time.Time) *entity.Prediction {
	denomination := 500
	return &entity.Prediction{
		UserID:            userID,
		CurrencyCode:      "SDG",
		Confidence:        0.9,
		NameEn:            "Five Hundred Pounds",
		NameAr:            "خمسمائة جنيه",
		DenominationValue: &denomination,
		ImagePath:         "/static/uploads/x.jpg",
		Timestamp:         at,
	}
}
