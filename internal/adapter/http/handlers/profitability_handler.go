package handlers

import (
	"errors"
	"net/http"

	"metalmetrics/internal/usecase"
	"metalmetrics/pkg"

	"github.com/gin-gonic/gin"
)

// ProfitabilityHandler serves the per-job profitability report. The report
// struct carries its own JSON shape; no separate response DTO is needed.
type ProfitabilityHandler struct {
	usecase usecase.IProfitabilityUseCase
}

func NewProfitabilityHandler(uc usecase.IProfitabilityUseCase) *ProfitabilityHandler {
	return &ProfitabilityHandler{usecase: uc}
}

func (h *ProfitabilityHandler) GetReport(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	report, err := h.usecase.Report(c.Request.Context(), tenant, c.Param("job_id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportUnavailable):
		return pkg.NewDomainErrorSimple("REPORT_UNAVAILABLE", "Job needs both an estimate and actuals for a report", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
