package handler

import (
	"fmt"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TwoFactorHandler handles two factor authentication HTTP requests
type TwoFactorHandler struct {
	twoFactor usecase.TwoFactorUseCase
	logger    coreport.Logger
}

// NewTwoFactorHandler creates a new two factor handler instance
func NewTwoFactorHandler(twoFactor usecase.TwoFactorUseCase, logger coreport.Logger) *TwoFactorHandler {
	return &TwoFactorHandler{
		twoFactor: twoFactor,
		logger:    logger,
	}
}

// Create handles the POST /two-factor endpoint
func (h *TwoFactorHandler) Create(c *gin.Context) {
	var req dto.TwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	tfa, err := h.twoFactor.Create(c.Request.Context(), usecase.CreateTwoFactorRequest{
		AuthenticatableType: req.AuthenticatableType,
		AuthenticatableID:   req.AuthenticatableID,
		Label:               req.Label,
		Attributes:          req.Attributes,
	})
	if err != nil {
		respondError(c, h.logger, "create two factor", err)
		return
	}

	body, err := tfa.ToMap()
	if err != nil {
		respondError(c, h.logger, "serialize two factor", err)
		return
	}
	c.JSON(http.StatusCreated, dto.TwoFactorResponse(body))
}

// Show handles the GET /two-factor/:id endpoint
func (h *TwoFactorHandler) Show(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	tfa, err := h.twoFactor.Find(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "find two factor", err)
		return
	}

	body, err := tfa.ToMap()
	if err != nil {
		respondError(c, h.logger, "serialize two factor", err)
		return
	}
	c.JSON(http.StatusOK, dto.TwoFactorResponse(body))
}

// Enable handles the POST /two-factor/:id/enable endpoint
func (h *TwoFactorHandler) Enable(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	tfa, err := h.twoFactor.Enable(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "enable two factor", err)
		return
	}

	body, err := tfa.ToMap()
	if err != nil {
		respondError(c, h.logger, "serialize two factor", err)
		return
	}
	c.JSON(http.StatusOK, dto.TwoFactorResponse(body))
}

func (h *TwoFactorHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, h.logger, "parse two factor id",
			fmt.Errorf("%w: invalid two factor id %q", domainerr.ErrInvalidRequest, c.Param("id")))
		return 0, false
	}
	return id, true
}
