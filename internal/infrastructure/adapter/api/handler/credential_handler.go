package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CredentialHandler handles WebAuthn credential HTTP requests
type CredentialHandler struct {
	credentials usecase.CredentialUseCase
	logger      coreport.Logger
}

// NewCredentialHandler creates a new credential handler instance
func NewCredentialHandler(credentials usecase.CredentialUseCase, logger coreport.Logger) *CredentialHandler {
	return &CredentialHandler{
		credentials: credentials,
		logger:      logger,
	}
}

// Register handles the POST /credentials endpoint. The body is mass assigned,
// so attributes outside the fillable list are dropped.
func (h *CredentialHandler) Register(c *gin.Context) {
	var attributes map[string]any
	if err := c.ShouldBindJSON(&attributes); err != nil {
		bindError(c, h.logger, err)
		return
	}

	credential, err := h.credentials.Register(c.Request.Context(), attributes)
	if err != nil {
		respondError(c, h.logger, "register credential", err)
		return
	}

	body, err := credential.ToMap()
	if err != nil {
		respondError(c, h.logger, "serialize credential", err)
		return
	}
	c.JSON(http.StatusCreated, dto.CredentialResponse(body))
}

// Show handles the GET /credentials/:id endpoint
func (h *CredentialHandler) Show(c *gin.Context) {
	credential, err := h.credentials.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "find credential", err)
		return
	}

	body, err := credential.ToMap()
	if err != nil {
		respondError(c, h.logger, "serialize credential", err)
		return
	}
	c.JSON(http.StatusOK, dto.CredentialResponse(body))
}

// Disable handles the POST /credentials/:id/disable endpoint
func (h *CredentialHandler) Disable(c *gin.Context) {
	credential, err := h.credentials.Disable(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "disable credential", err)
		return
	}

	body, err := credential.ToMap()
	if err != nil {
		respondError(c, h.logger, "serialize credential", err)
		return
	}
	c.JSON(http.StatusOK, dto.CredentialResponse(body))
}

// Delete handles the DELETE /credentials/:id endpoint
func (h *CredentialHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.credentials.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "delete credential", err)
		return
	}
	c.JSON(http.StatusOK, dto.CredentialDeletedResponse{ID: id, Deleted: true})
}
