package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusCode maps domain errors to HTTP status codes
func statusCode(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrMassAssignment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateRecord), errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response; server errors hide their cause from the client
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := statusCode(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	fields := map[string]any{
		"operation": operation,
		"path":      c.Request.URL.Path,
		"error":     err.Error(),
	}
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		for k, v := range withFields.LogFields() {
			fields[k] = v
		}
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Warn("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// bindError answers a malformed request body
func bindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
