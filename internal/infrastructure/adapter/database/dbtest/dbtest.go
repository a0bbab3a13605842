// Package dbtest opens gorm connections for tests, either backed by sqlmock or by a live PostgreSQL server.
package dbtest

import (
	"fmt"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMock returns a gorm connection speaking the PostgreSQL dialect to a sqlmock driver.
// Unmet expectations fail the test on cleanup.
func NewMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open gorm on sqlmock: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
		_ = sqlDB.Close()
	})
	return db, mock
}

// NewLive connects to the PostgreSQL server named by MM_TEST_DB_* variables,
// skipping the test when MM_TEST_DB_HOST is unset.
func NewLive(t *testing.T) *gorm.DB {
	t.Helper()

	host, ok := os.LookupEnv("MM_TEST_DB_HOST")
	if !ok {
		t.Skip("MM_TEST_DB_HOST not set")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		getEnvOrDefault("MM_TEST_DB_PORT", "5432"),
		getEnvOrDefault("MM_TEST_DB_USERNAME", "postgres"),
		getEnvOrDefault("MM_TEST_DB_PASSWORD", "postgres"),
		getEnvOrDefault("MM_TEST_DB_NAME", "meta_model_test"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
