package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"metalmetrics/internal/usecase"
	"metalmetrics/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DashboardHandler serves the tenant-wide portfolio aggregations. The
// aggregation structs carry their own JSON shape.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetKPIs(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	kpis, err := h.usecase.KPIs(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, kpis)
}

func (h *DashboardHandler) GetCustomerProfitability(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	groups, err := h.usecase.CustomerProfitability(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *DashboardHandler) GetCategoryVariances(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	variances, err := h.usecase.CategoryVariances(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, variances)
}

func (h *DashboardHandler) GetAtRiskJobs(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var threshold *decimal.Decimal
	if raw := strings.TrimSpace(c.Query("threshold")); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_THRESHOLD", "threshold must be a decimal percent", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		threshold = &d
	}

	atRisk, err := h.usecase.AtRiskJobs(c.Request.Context(), tenant, threshold)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, atRisk)
}

func (h *DashboardHandler) GetJobSummaries(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	from, ok := parseWindowBound(c, "from")
	if !ok {
		return
	}
	to, ok := parseWindowBound(c, "to")
	if !ok {
		return
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_LIMIT", "limit must be a non-negative integer", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = n
	}

	summaries, err := h.usecase.JobSummaries(c.Request.Context(), tenant, from, to, limit)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// parseWindowBound reads an optional RFC3339 query parameter. The bool is
// false only when the value was present and malformed, in which case the
// 400 has already been written.
func parseWindowBound(c *gin.Context, name string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WINDOW", name+" must be an RFC3339 timestamp", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return nil, false
	}
	return &t, true
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
