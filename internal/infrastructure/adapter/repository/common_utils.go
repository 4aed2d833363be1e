package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	NotFoundError     ErrorType = "not_found"
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	ConnectionError   ErrorType = "connection"
	UnknownError      ErrorType = "unknown"
)

// ErrorClassifier classifies driver errors from PostgreSQL and SQLite by message
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return UnknownError
	}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// IsForeignKeyError checks if the error is a foreign key violation
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint") ||
		strings.Contains(msg, "violates foreign key") ||
		strings.Contains(msg, "SQLSTATE 23503")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "database is closed")
}

// handleDatabaseError logs a failed operation and maps it to a domain error.
// notFound is returned for gorm.ErrRecordNotFound.
func handleDatabaseError(logger coreport.Logger, classifier *ErrorClassifier, operation string, err error, notFound error, fields map[string]any) error {
	kind := classifier.Classify(err)

	logFields := map[string]any{
		"operation":  operation,
		"error":      err.Error(),
		"error_type": string(kind),
	}
	for k, v := range fields {
		logFields[k] = v
	}

	switch kind {
	case NotFoundError:
		logger.Debug("Record not found", logFields)
		return notFound
	case DuplicateKeyError:
		logger.Warn("Unique constraint violated", logFields)
		return errs.ErrDuplicateRegistration
	default:
		logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
		return fmt.Errorf("%w: %s: %v", errs.ErrPersistenceFailure, operation, err)
	}
}
