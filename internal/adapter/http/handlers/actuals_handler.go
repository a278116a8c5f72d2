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

var errInvalidActualsPayload = pkg.NewDomainErrorSimple("INVALID_ACTUALS_INPUT", "Invalid actuals payload", http.StatusBadRequest)

// ActualsHandler handles HTTP requests for job actuals.
type ActualsHandler struct {
	usecase usecase.IActualsUseCase
}

func NewActualsHandler(uc usecase.IActualsUseCase) *ActualsHandler {
	return &ActualsHandler{usecase: uc}
}

func (h *ActualsHandler) GetActuals(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	actuals, err := h.usecase.GetByJobID(c.Request.Context(), tenant, c.Param("job_id"))
	if err != nil {
		appErr := mapActualsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActualsRecord(actuals))
}

func (h *ActualsHandler) SaveActuals(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.SaveActualsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActualsPayload.HTTPStatus, errInvalidActualsPayload.ToHTTPError())
		return
	}

	actuals, err := h.usecase.Save(c.Request.Context(), tenant, c.Param("job_id"), usecase.ActualsInput{
		LaborHours:      payload.LaborHours,
		LaborRate:       payload.LaborRate,
		MaterialCost:    payload.MaterialCost,
		MachineHours:    payload.MachineHours,
		MachineRate:     payload.MachineRate,
		OverheadPercent: payload.OverheadPercent,
		Revenue:         payload.Revenue,
		Notes:           payload.Notes,
		EnteredBy:       payload.EnteredBy,
	})
	if err != nil {
		appErr := mapActualsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActualsRecord(actuals))
}

func mapActualsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActualsNotFound):
		return pkg.NewDomainErrorSimple("ACTUALS_NOT_FOUND", "Actuals not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActualsTooEarly):
		return pkg.NewDomainErrorSimple("ACTUALS_TOO_EARLY", "Actuals are not accepted before work starts", http.StatusConflict)
	case errors.Is(err, usecase.ErrActualsLocked):
		return pkg.NewDomainErrorSimple("ACTUALS_LOCKED", "Actuals cannot change after invoicing", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
