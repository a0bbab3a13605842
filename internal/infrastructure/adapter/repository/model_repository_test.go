package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/time"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTwoFactorModel() *entity.Model {
	m := entity.NewModel()
	m.SetTable("two_factor_authentications")
	return m
}

func newCredentialModel() *entity.Model {
	m := entity.NewModel()
	m.SetTable("webauthn_credentials")
	m.SetIncrementing(false)
	m.SetTimestamps(false)
	return m
}

func TestModelRepositoryCreate(t *testing.T) {
	t.Run("database assigned key is read back", func(t *testing.T) {
		db, mock := dbtest.NewMock(t)
		repo := newModelRepositoryOn(db)

		m := newTwoFactorModel()
		require.NoError(t, m.ForceFill(map[string]any{"label": "phone", "digits": 6}))

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "two_factor_authentications" ("created_at", "digits", "label", "updated_at") VALUES ($1, $2, $3, $4) RETURNING "id"`)).
			WithArgs(fixedNow, 6, "phone", fixedNow).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		require.NoError(t, repo.Create(context.Background(), m))

		assert.Equal(t, int64(7), m.Key())
		assert.True(t, m.Exists())
	})

	t.Run("application key is generated", func(t *testing.T) {
		db, mock := dbtest.NewMock(t)
		repo := newModelRepositoryOn(db)

		m := newCredentialModel()
		require.NoError(t, m.ForceFill(map[string]any{"alias": "laptop", "transports": []string{"usb"}}))

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "webauthn_credentials" ("alias", "id", "transports") VALUES ($1, $2, $3)`)).
			WithArgs("laptop", sqlmock.AnyArg(), `["usb"]`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), m))

		assert.Len(t, m.Key(), 36)
	})

	t.Run("duplicate key is mapped", func(t *testing.T) {
		db, mock := dbtest.NewMock(t)
		repo := newModelRepositoryOn(db)

		m := newCredentialModel()
		require.NoError(t, m.ForceFill(map[string]any{"id": "cred-1"}))

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "webauthn_credentials" ("id") VALUES ($1)`)).
			WithArgs("cred-1").
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.Create(context.Background(), m)

		assert.True(t, errors.Is(err, errs.ErrDuplicateRecord))
		assert.False(t, m.Exists())
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		db, mock := dbtest.NewMock(t)
		repo := newModelRepositoryOn(db)

		m := newCredentialModel()
		require.NoError(t, m.ForceFill(map[string]any{"id": "cred-1"}))

		statement := regexp.QuoteMeta(`INSERT INTO "webauthn_credentials" ("id") VALUES ($1)`)
		mock.ExpectExec(statement).WithArgs("cred-1").WillReturnError(errors.New("read: connection reset by peer"))
		mock.ExpectExec(statement).WithArgs("cred-1").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), m))
	})

	t.Run("unknown connection", func(t *testing.T) {
		repo, _ := newTestModelRepository(t)

		m := newCredentialModel()
		m.SetConnection("audit")

		err := repo.Create(context.Background(), m)

		assert.True(t, errors.Is(err, errs.ErrUnknownConnection))
	})
}

func TestModelRepositoryFindByKey(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := newModelRepositoryOn(db)
	query := regexp.QuoteMeta(`SELECT * FROM "webauthn_credentials" WHERE "id" = $1 LIMIT 1`)

	mock.ExpectQuery(query).
		WithArgs("cred-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "alias", "counter"}).AddRow("cred-1", "laptop", int64(3)))
	mock.ExpectQuery(query).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "alias", "counter"}))

	found := newCredentialModel()
	require.NoError(t, repo.FindByKey(context.Background(), found, "cred-1"))
	alias, _ := found.Raw("alias")
	assert.Equal(t, "laptop", alias)
	assert.True(t, found.Exists())

	err := repo.FindByKey(context.Background(), newCredentialModel(), "missing")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestModelRepositoryUpdate(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := newModelRepositoryOn(db)
	statement := regexp.QuoteMeta(`UPDATE "webauthn_credentials" SET "alias" = $1 WHERE "id" = $2`)

	m := newCredentialModel()
	require.NoError(t, m.ForceFill(map[string]any{"id": "cred-1", "alias": "phone"}))

	assert.True(t, errors.Is(repo.Update(context.Background(), m), errs.ErrNotFound), "new models cannot be updated")

	m.SetExists(true)
	mock.ExpectExec(statement).WithArgs("phone", "cred-1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), m))

	mock.ExpectExec(statement).WithArgs("phone", "cred-1").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, errors.Is(repo.Update(context.Background(), m), errs.ErrNotFound))
}

func TestModelRepositoryDelete(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := newModelRepositoryOn(db)

	m := newCredentialModel()
	require.NoError(t, m.ForceFill(map[string]any{"id": "cred-1"}))
	m.SetExists(true)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "webauthn_credentials" WHERE "id" = $1`)).
		WithArgs("cred-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), m))
	assert.False(t, m.Exists())
}

func TestModelRepositoryDeleteWhere(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := newModelRepositoryOn(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "two_factor_authentications" WHERE "authenticatable_id" = $1 AND "authenticatable_type" = $2`)).
		WithArgs(7, "users").
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteWhere(context.Background(), newTwoFactorModel(), map[string]any{
		"authenticatable_type": "users",
		"authenticatable_id":   7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = repo.DeleteWhere(context.Background(), newTwoFactorModel(), nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
}

func TestModelRepositoryQueryTimeout(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewModelRepository(
		timedConnections{stubConnections: stubConnections{"": db}, timeout: 20 * time.Millisecond},
		timeprovider.NewFixedTimeProvider(fixedNow),
		logger.NewNoopLogger(),
	).WithRetryConfig(RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond})

	t.Run("slow statement is cut off and not retried", func(t *testing.T) {
		m := newCredentialModel()
		require.NoError(t, m.ForceFill(map[string]any{"id": "cred-1"}))
		m.SetExists(true)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "webauthn_credentials" WHERE "id" = $1`)).
			WithArgs("cred-1").
			WillDelayFor(time.Second).
			WillReturnResult(sqlmock.NewResult(0, 1))

		started := time.Now()
		err := repo.Delete(context.Background(), m)
		assert.Less(t, time.Since(started), time.Second)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
		assert.Contains(t, err.Error(), "query timeout of 20ms exceeded")
		assert.True(t, m.Exists())
	})

	t.Run("slow lookup is cut off", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "webauthn_credentials" WHERE "id" = $1 LIMIT 1`)).
			WithArgs("cred-1").
			WillDelayFor(time.Second).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("cred-1"))

		err := repo.FindByKey(context.Background(), newCredentialModel(), "cred-1")
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})

	t.Run("fast statement is unaffected", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "webauthn_credentials" ("id") VALUES ($1)`)).
			WithArgs("cred-2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		m := newCredentialModel()
		require.NoError(t, m.ForceFill(map[string]any{"id": "cred-2"}))
		require.NoError(t, repo.Create(context.Background(), m))
		assert.True(t, m.Exists())
	})
}
