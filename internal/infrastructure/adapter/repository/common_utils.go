package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	NotFoundError     ErrorType = "not_found"
	TimeoutError      ErrorType = "timeout"
)

// PostgreSQL SQLSTATE codes the classifier recognizes
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateNotNullViolation     = "23502"
	sqlStateCheckViolation       = "23514"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateTooManyConnections   = "53300"
	sqlStateAdminShutdown        = "57P01"
)

// ErrorClassifier classifies database errors, preferring the SQLSTATE of a
// PostgreSQL error and falling back to the message for driver level failures
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, empty when unknown
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsTimeoutError(err):
		return TimeoutError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	}
	return ""
}

// MapError translates a database error into a domain error, keeping the cause in the message
func (c *ErrorClassifier) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	switch c.Classify(err) {
	case NotFoundError:
		return errs.ErrNotFound
	case DuplicateKeyError:
		return fmt.Errorf("%w: %s", errs.ErrDuplicateRecord, err.Error())
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case LockError, TransientError, ConnectionError, TimeoutError:
		return fmt.Errorf("%w: %s failed: %s", errs.ErrDatabaseConnection, operation, err.Error())
	}
	return fmt.Errorf("%w: %s failed: %s", errs.ErrInternalServer, operation, err.Error())
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if code := sqlState(err); code != "" {
		return code == sqlStateUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key")
}

// IsTimeoutError checks if the statement ran out of time or its caller gave up on it
func (c *ErrorClassifier) IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// IsTransientError checks if an error is transient and can be retried.
// A statement that hit its deadline is not retried.
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil || c.IsTimeoutError(err) {
		return false
	}
	switch sqlState(err) {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateTooManyConnections, sqlStateAdminShutdown:
		return true
	case "":
	default:
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "eof") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case sqlStateDeadlockDetected, sqlStateSerializationFailure, sqlStateLockNotAvailable:
		return true
	case "":
	default:
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "lock timeout")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) != "" {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "network") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case sqlStateForeignKeyViolation, sqlStateNotNullViolation, sqlStateCheckViolation:
		return true
	case "":
	default:
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "violates") || strings.Contains(msg, "foreign key")
}
