package handlers

import (
	"errors"
	"net/http"

	request "metalmetrics/internal/adapter/http/dto/request"
	response "metalmetrics/internal/adapter/http/dto/response"
	"metalmetrics/internal/usecase"
	"metalmetrics/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// SettingsHandler handles HTTP requests for tenant costing defaults.
type SettingsHandler struct {
	usecase usecase.ITenantSettingsUseCase
}

func NewSettingsHandler(uc usecase.ITenantSettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	settings, err := h.usecase.Get(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenantSettings(settings))
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.Update(c.Request.Context(), tenant, usecase.SettingsInput{
		DefaultLaborRate:       payload.DefaultLaborRate,
		DefaultMachineRate:     payload.DefaultMachineRate,
		DefaultOverheadPercent: payload.DefaultOverheadPercent,
		TargetMarginPercent:    payload.TargetMarginPercent,
	})
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenantSettings(settings))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
