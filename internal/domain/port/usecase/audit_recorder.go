package usecase

import (
	"context"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// AuditResult is the outcome of a best-effort audit write. Callers may ignore it.
type AuditResult struct {
	Entry *entity.SystemLog
	Err   error
}

// Ok reports whether the entry was stored
func (r AuditResult) Ok() bool {
	return r.Err == nil
}

// AuditRecorder appends audit entries without ever failing the caller
type AuditRecorder interface {
	Record(ctx context.Context, action, message string, userID *uint64) AuditResult
}
