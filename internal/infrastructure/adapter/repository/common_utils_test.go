package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifierClassify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"record not found", gorm.ErrRecordNotFound, NotFoundError},
		{"unique violation", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), DuplicateKeyError},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, ConstraintError},
		{"not null violation", &pgconn.PgError{Code: "23502"}, ConstraintError},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, LockError},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, LockError},
		{"too many connections", &pgconn.PgError{Code: "53300"}, TransientError},
		{"syntax error", &pgconn.PgError{Code: "42601", Message: "syntax error at or near"}, ""},
		{"duplicate message", errors.New("duplicate key value"), DuplicateKeyError},
		{"connection reset", errors.New("read tcp: connection reset by peer"), TransientError},
		{"dial failure", errors.New("dial tcp 127.0.0.1:5432"), ConnectionError},
		{"deadline exceeded", fmt.Errorf("query timeout of 5s exceeded: %w", context.DeadlineExceeded), TimeoutError},
		{"cancelled", context.Canceled, TimeoutError},
		{"unknown", errors.New("something else"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassifierMapError(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.NoError(t, classifier.MapError(nil, "op"))
	assert.True(t, errors.Is(classifier.MapError(gorm.ErrRecordNotFound, "op"), errs.ErrNotFound))
	assert.True(t, errors.Is(classifier.MapError(&pgconn.PgError{Code: "23505"}, "op"), errs.ErrDuplicateRecord))
	assert.True(t, errors.Is(classifier.MapError(&pgconn.PgError{Code: "23514"}, "op"), errs.ErrConstraintViolation))
	assert.True(t, errors.Is(classifier.MapError(&pgconn.PgError{Code: "40001"}, "op"), errs.ErrDatabaseConnection))
	assert.True(t, errors.Is(classifier.MapError(context.DeadlineExceeded, "op"), errs.ErrDatabaseConnection))
	assert.True(t, errors.Is(classifier.MapError(errors.New("boom"), "op"), errs.ErrInternalServer))
}

func TestRetryOnTransientError(t *testing.T) {
	classifier := NewErrorClassifier()
	cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond}

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := retryOnTransientError(context.Background(), cfg, classifier, logger.NewNoopLogger(), func() error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: "40001"}
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent errors are returned at once", func(t *testing.T) {
		calls := 0
		err := retryOnTransientError(context.Background(), cfg, classifier, logger.NewNoopLogger(), func() error {
			calls++
			return &pgconn.PgError{Code: "23505"}
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("timeouts are not retried", func(t *testing.T) {
		calls := 0
		err := retryOnTransientError(context.Background(), cfg, classifier, logger.NewNoopLogger(), func() error {
			calls++
			return fmt.Errorf("timeout: %w", context.DeadlineExceeded)
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := retryOnTransientError(ctx, cfg, classifier, logger.NewNoopLogger(), func() error {
			return errors.New("connection reset by peer")
		})
		assert.Error(t, err)
	})
}
