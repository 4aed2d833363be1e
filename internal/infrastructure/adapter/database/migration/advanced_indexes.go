package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// Lookups of suspicious notes per user
		name: "idx_predictions_counterfeit",
		sql: `CREATE INDEX IF NOT EXISTS idx_predictions_counterfeit
			ON predictions (user_id, timestamp)
			WHERE is_counterfeit`,
	},
	{
		// Both tables are append-mostly and ordered by time
		name: "idx_predictions_timestamp_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_predictions_timestamp_brin
			ON predictions USING BRIN (timestamp)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_system_logs_timestamp_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_system_logs_timestamp_brin
			ON system_logs USING BRIN (timestamp)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_users_email_lower",
		sql: `CREATE INDEX IF NOT EXISTS idx_users_email_lower
			ON users (lower(email))`,
	},
}

// CreateAdvancedIndexes creates PostgreSQL-only indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are only logged.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Rows are never updated, so pages can be packed full
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE system_logs SET (fillfactor = 100)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for system_logs table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE predictions ALTER COLUMN user_id SET STATISTICS 500`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for predictions.user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
