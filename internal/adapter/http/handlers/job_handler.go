package handlers

import (
	"context"
	"errors"
	"net/http"

	request "metalmetrics/internal/adapter/http/dto/request"
	response "metalmetrics/internal/adapter/http/dto/response"
	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase"
	"metalmetrics/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles HTTP requests for the job lifecycle.
type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), tenant, payload.CustomerName, payload.Description)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	job, err := h.usecase.GetByID(c.Request.Context(), tenant, c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	jobs, err := h.usecase.List(
		c.Request.Context(),
		tenant,
		c.Query("search"),
		entities.JobStatus(c.Query("status")),
	)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) StartJob(c *gin.Context) {
	h.transition(c, h.usecase.Start)
}

func (h *JobHandler) CompleteJob(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

func (h *JobHandler) InvoiceJob(c *gin.Context) {
	h.transition(c, h.usecase.Invoice)
}

func (h *JobHandler) transition(
	c *gin.Context,
	move func(ctx context.Context, tenantID, jobID string) (entities.Job, error),
) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	job, err := move(c.Request.Context(), tenant, c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Job cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateRequired):
		return pkg.NewDomainErrorSimple("ESTIMATE_REQUIRED", "Job needs an estimate before work starts", http.StatusConflict)
	case errors.Is(err, usecase.ErrActualsRequired):
		return pkg.NewDomainErrorSimple("ACTUALS_REQUIRED", "Job needs an actuals record first", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
