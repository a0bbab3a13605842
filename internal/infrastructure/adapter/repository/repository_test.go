package repository

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type stubConnections map[string]*gorm.DB

func (s stubConnections) Connection(name string) (*gorm.DB, error) {
	db, ok := s[name]
	if !ok {
		return nil, errs.ErrUnknownConnection
	}
	return db, nil
}

func (s stubConnections) QueryTimeout(string) time.Duration {
	return 0
}

// timedConnections bounds every statement on the wrapped connections
type timedConnections struct {
	stubConnections
	timeout time.Duration
}

func (c timedConnections) QueryTimeout(string) time.Duration {
	return c.timeout
}

func newTestModelRepository(t *testing.T) (*ModelRepository, *gorm.DB) {
	t.Helper()
	db, _ := dbtest.NewMock(t)
	return newModelRepositoryOn(db), db
}

func newModelRepositoryOn(db *gorm.DB) *ModelRepository {
	return NewModelRepository(
		stubConnections{"": db},
		timeprovider.NewFixedTimeProvider(fixedNow),
		logger.NewNoopLogger(),
	).WithRetryConfig(RetryConfig{MaxRetries: 2, RetryInterval: time.Millisecond})
}
