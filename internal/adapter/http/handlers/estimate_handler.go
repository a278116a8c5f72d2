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

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for job estimates, both manual and
// AI-generated.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	estimate, err := h.usecase.GetByJobID(c.Request.Context(), tenant, c.Param("job_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostEstimate(estimate))
}

func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Save(c.Request.Context(), tenant, c.Param("job_id"), usecase.EstimateInput{
		LaborHours:      payload.LaborHours,
		LaborRate:       payload.LaborRate,
		MaterialCost:    payload.MaterialCost,
		MachineHours:    payload.MachineHours,
		MachineRate:     payload.MachineRate,
		OverheadPercent: payload.OverheadPercent,
		QuotePrice:      payload.QuotePrice,
		CreatedBy:       payload.CreatedBy,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostEstimate(estimate))
}

func (h *EstimateHandler) GenerateAIQuote(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.GenerateAI(c.Request.Context(), tenant, c.Param("job_id"), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCostEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateLocked):
		return pkg.NewDomainErrorSimple("ESTIMATE_LOCKED", "Estimate cannot change after the job is completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteGeneratorNotReady):
		return pkg.NewDomainErrorSimple("QUOTE_GENERATOR_UNAVAILABLE", "AI quote generation is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
