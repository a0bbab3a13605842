package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/meta-model/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(credentials usecase.CredentialUseCase, twoFactor usecase.TwoFactorUseCase) *gin.Engine {
	router := gin.New()
	log := logger.NewNoopLogger()

	ch := NewCredentialHandler(credentials, log)
	router.POST("/credentials", ch.Register)
	router.GET("/credentials/:id", ch.Show)
	router.POST("/credentials/:id/disable", ch.Disable)
	router.DELETE("/credentials/:id", ch.Delete)

	th := NewTwoFactorHandler(twoFactor, log)
	router.POST("/two-factor", th.Create)
	router.GET("/two-factor/:id", th.Show)
	router.POST("/two-factor/:id/enable", th.Enable)
	return router
}

func serve(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		encoded, _ := json.Marshal(b)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func storedCredential(t *testing.T) *entity.WebAuthnCredential {
	t.Helper()
	credential := entity.NewWebAuthnCredential(entity.WebAuthnCredentialType(metamodel.Customization{}))
	require.NoError(t, credential.ForceFill(map[string]any{
		"id":         "cred-1",
		"alias":      "laptop",
		"public_key": "secret-key",
	}))
	credential.SetExists(true)
	return credential
}

func storedTwoFactor(t *testing.T) *entity.TwoFactorAuthentication {
	t.Helper()
	tfa := entity.NewTwoFactorAuthentication(entity.TwoFactorAuthenticationType(metamodel.Customization{}))
	require.NoError(t, tfa.ForceFill(map[string]any{
		"id":            int64(5),
		"digits":        int64(6),
		"shared_secret": "JBSWY3DPEHPK3PXP",
	}))
	tfa.SetExists(true)
	return tfa
}

func TestCredentialRegister(t *testing.T) {
	t.Run("Created without hidden attributes", func(t *testing.T) {
		credentials := usecasemocks.NewMockCredentialUseCase(t)
		credentials.EXPECT().Register(mock.Anything, map[string]any{"alias": "laptop"}).
			Return(storedCredential(t), nil).Once()

		rec := serve(newRouter(credentials, nil), http.MethodPost, "/credentials", map[string]any{"alias": "laptop"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "cred-1", body["id"])
		assert.Equal(t, true, body["is_enabled"])
		assert.NotContains(t, body, "public_key")
	})

	t.Run("Malformed body", func(t *testing.T) {
		credentials := usecasemocks.NewMockCredentialUseCase(t)

		rec := serve(newRouter(credentials, nil), http.MethodPost, "/credentials", "{not json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Guarded attribute", func(t *testing.T) {
		credentials := usecasemocks.NewMockCredentialUseCase(t)
		credentials.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, domainerr.NewMassAssignmentError("webauthn_credentials", "is_admin")).Once()

		rec := serve(newRouter(credentials, nil), http.MethodPost, "/credentials", map[string]any{"is_admin": true})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, domainerr.CodeMassAssignment, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		credentials := usecasemocks.NewMockCredentialUseCase(t)
		credentials.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: id", domainerr.ErrDuplicateRecord)).Once()

		rec := serve(newRouter(credentials, nil), http.MethodPost, "/credentials", map[string]any{"id": "cred-1"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCredentialShowDisableDelete(t *testing.T) {
	t.Run("Show", func(t *testing.T) {
		credentials := usecasemocks.NewMockCredentialUseCase(t)
		credentials.EXPECT().Find(mock.Anything, "cred-1").Return(storedCredential(t), nil).Once()

		rec := serve(newRouter(credentials, nil), http.MethodGet, "/credentials/cred-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "laptop", decode[map[string]any](t, rec)["alias"])
	})

	t.Run("Show missing", func(t *testing.T) {
		credentials := usecasemocks.NewMockCredentialUseCase(t)
		credentials.EXPECT().Find(mock.Anything, "nope").Return(nil, domainerr.ErrNotFound).Once()

		rec := serve(newRouter(credentials, nil), http.MethodGet, "/credentials/nope", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerr.CodeNotFound, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Disable", func(t *testing.T) {
		credential := storedCredential(t)
		require.NoError(t, credential.Disable(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

		credentials := usecasemocks.NewMockCredentialUseCase(t)
		credentials.EXPECT().Disable(mock.Anything, "cred-1").Return(credential, nil).Once()

		rec := serve(newRouter(credentials, nil), http.MethodPost, "/credentials/cred-1/disable", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decode[map[string]any](t, rec)["is_enabled"])
	})

	t.Run("Delete", func(t *testing.T) {
		credentials := usecasemocks.NewMockCredentialUseCase(t)
		credentials.EXPECT().Delete(mock.Anything, "cred-1").Return(nil).Once()

		rec := serve(newRouter(credentials, nil), http.MethodDelete, "/credentials/cred-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, dto.CredentialDeletedResponse{ID: "cred-1", Deleted: true},
			decode[dto.CredentialDeletedResponse](t, rec))
	})

	t.Run("Server errors hide their cause", func(t *testing.T) {
		credentials := usecasemocks.NewMockCredentialUseCase(t)
		credentials.EXPECT().Delete(mock.Anything, "cred-1").
			Return(fmt.Errorf("%w: dial tcp 10.0.0.1:5432", domainerr.ErrDatabaseConnection)).Once()

		rec := serve(newRouter(credentials, nil), http.MethodDelete, "/credentials/cred-1", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.1")
	})
}

func TestTwoFactorCreate(t *testing.T) {
	t.Run("Created without the shared secret", func(t *testing.T) {
		twoFactor := usecasemocks.NewMockTwoFactorUseCase(t)
		twoFactor.EXPECT().Create(mock.Anything, usecase.CreateTwoFactorRequest{
			AuthenticatableType: "users",
			AuthenticatableID:   "42",
			Label:               "alice@example.com",
			Attributes:          map[string]any{"digits": float64(6)},
		}).Return(storedTwoFactor(t), nil).Once()

		rec := serve(newRouter(nil, twoFactor), http.MethodPost, "/two-factor", map[string]any{
			"authenticatable_type": "users",
			"authenticatable_id":   "42",
			"label":                "alice@example.com",
			"attributes":           map[string]any{"digits": 6},
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.EqualValues(t, 5, body["id"])
		assert.NotContains(t, body, "shared_secret")
	})

	t.Run("Missing owner", func(t *testing.T) {
		twoFactor := usecasemocks.NewMockTwoFactorUseCase(t)

		rec := serve(newRouter(nil, twoFactor), http.MethodPost, "/two-factor", map[string]any{"label": "x"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTwoFactorShowAndEnable(t *testing.T) {
	t.Run("Show", func(t *testing.T) {
		twoFactor := usecasemocks.NewMockTwoFactorUseCase(t)
		twoFactor.EXPECT().Find(mock.Anything, int64(5)).Return(storedTwoFactor(t), nil).Once()

		rec := serve(newRouter(nil, twoFactor), http.MethodGet, "/two-factor/5", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 6, decode[map[string]any](t, rec)["digits"])
	})

	t.Run("Invalid id", func(t *testing.T) {
		twoFactor := usecasemocks.NewMockTwoFactorUseCase(t)

		rec := serve(newRouter(nil, twoFactor), http.MethodGet, "/two-factor/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Enable", func(t *testing.T) {
		tfa := storedTwoFactor(t)
		require.NoError(t, tfa.Enable(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

		twoFactor := usecasemocks.NewMockTwoFactorUseCase(t)
		twoFactor.EXPECT().Enable(mock.Anything, int64(5)).Return(tfa, nil).Once()

		rec := serve(newRouter(nil, twoFactor), http.MethodPost, "/two-factor/5/enable", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2024-03-01T00:00:00Z", decode[map[string]any](t, rec)["enabled_at"])
	})
}
