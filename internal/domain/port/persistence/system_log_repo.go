package persistence

import (
	"context"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// SystemLogRepository appends audit records. There is deliberately no update method.
type SystemLogRepository interface {
	// Append stores a new audit entry and assigns its ID
	Append(ctx context.Context, entry *entity.SystemLog) error

	// ListByUser returns the audit entries of a user, oldest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.SystemLog, error)
}
