package audit

import (
	"context"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
)

// Result is the outcome of a best-effort audit write
type Result = usecase.AuditResult

// Logger appends audit entries. A failed write is reported to the operational
// logger and returned in the Result, never as an error.
type Logger struct {
	repo         persistence.SystemLogRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AuditRecorder = (*Logger)(nil)

// NewLogger creates a new audit logger
func NewLogger(
	repo persistence.SystemLogRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Logger {
	return &Logger{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Record appends an immutable audit entry. userID may be nil.
func (l *Logger) Record(ctx context.Context, action, message string, userID *uint64) Result {
	entry := &entity.SystemLog{
		UserID:    userID,
		Action:    action,
		Message:   message,
		Timestamp: l.timeProvider.Now(),
	}

	if err := l.repo.Append(ctx, entry); err != nil {
		fields := map[string]any{
			"action": action,
			"error":  err.Error(),
		}
		if userID != nil {
			fields["userId"] = *userID
		}
		l.logger.Warn("Failed to save audit log", fields)
		return Result{Err: err}
	}

	return Result{Entry: entry}
}
