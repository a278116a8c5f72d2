package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidTenantID   = errors.New("invalid tenant id")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidCustomer   = errors.New("invalid customer name")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrEstimateRequired  = errors.New("estimate required")
	ErrActualsRequired   = errors.New("actuals required")
)

// IJobUseCase exposes the job lifecycle operations.
//
// Lifecycle: Quoted -> InProgress -> Completed -> Invoiced, strictly linear.
//   - Start requires an existing estimate.
//   - Complete requires an actuals record and stamps CompletedAt exactly once.
//   - Invoice requires actuals and is terminal.

type IJobUseCase interface {
	Create(ctx context.Context, tenantID, customerName, description string) (entities.Job, error)
	GetByID(ctx context.Context, tenantID, jobID string) (entities.Job, error)
	List(ctx context.Context, tenantID, search string, statusFilter entities.JobStatus) ([]entities.Job, error)
	Start(ctx context.Context, tenantID, jobID string) (entities.Job, error)
	Complete(ctx context.Context, tenantID, jobID string) (entities.Job, error)
	Invoice(ctx context.Context, tenantID, jobID string) (entities.Job, error)
}

type JobUseCase struct {
	repo         interfaces.IJobRepository
	estimateRepo interfaces.IEstimateRepository
	actualsRepo  interfaces.IActualsRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, estimateRepo interfaces.IEstimateRepository, actualsRepo interfaces.IActualsRepository) *JobUseCase {
	return &JobUseCase{repo: repo, estimateRepo: estimateRepo, actualsRepo: actualsRepo}
}

func (u *JobUseCase) Create(ctx context.Context, tenantID, customerName, description string) (entities.Job, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Job{}, ErrInvalidTenantID
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return entities.Job{}, ErrInvalidCustomer
	}

	existing, err := u.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return entities.Job{}, err
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		JobNumber:    nextJobNumber(existing),
		CustomerName: customerName,
		Description:  strings.TrimSpace(description),
		Status:       entities.JobStatusQuoted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, tenantID, jobID string) (entities.Job, error) {
	j, err := u.getJob(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	return u.attachRecords(ctx, j)
}

func (u *JobUseCase) List(ctx context.Context, tenantID, search string, statusFilter entities.JobStatus) ([]entities.Job, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	jobs, err := u.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if term != "" &&
			!strings.Contains(strings.ToLower(j.CustomerName), term) &&
			!strings.Contains(strings.ToLower(j.JobNumber), term) {
			continue
		}
		if statusFilter != "" && j.Status != statusFilter {
			continue
		}
		filtered = append(filtered, j)
	}

	sort.SliceStable(filtered, func(i, k int) bool {
		return filtered[i].CreatedAt.After(filtered[k].CreatedAt)
	})
	return filtered, nil
}

// Start moves a job from Quoted to InProgress. A job cannot start work
// without an estimate on file.
func (u *JobUseCase) Start(ctx context.Context, tenantID, jobID string) (entities.Job, error) {
	j, err := u.getJob(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !j.Status.CanTransitionTo(entities.JobStatusInProgress) {
		return entities.Job{}, ErrIllegalTransition
	}

	estimate, err := u.estimateRepo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if estimate.ID == "" {
		return entities.Job{}, ErrEstimateRequired
	}

	j.Status = entities.JobStatusInProgress
	j.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, j)
}

// Complete moves a job from InProgress to Completed and stamps CompletedAt.
// The stamp is write-once: it is only set here and never touched again.
func (u *JobUseCase) Complete(ctx context.Context, tenantID, jobID string) (entities.Job, error) {
	j, err := u.getJob(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !j.Status.CanTransitionTo(entities.JobStatusCompleted) {
		return entities.Job{}, ErrIllegalTransition
	}

	actuals, err := u.actualsRepo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if actuals.ID == "" {
		return entities.Job{}, ErrActualsRequired
	}

	now := time.Now().UTC()
	j.Status = entities.JobStatusCompleted
	if j.CompletedAt == nil {
		j.CompletedAt = &now
	}
	j.UpdatedAt = now
	return u.repo.Update(ctx, j)
}

// Invoice moves a job from Completed to the terminal Invoiced state.
func (u *JobUseCase) Invoice(ctx context.Context, tenantID, jobID string) (entities.Job, error) {
	j, err := u.getJob(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !j.Status.CanTransitionTo(entities.JobStatusInvoiced) {
		return entities.Job{}, ErrIllegalTransition
	}

	actuals, err := u.actualsRepo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if actuals.ID == "" {
		return entities.Job{}, ErrActualsRequired
	}

	j.Status = entities.JobStatusInvoiced
	j.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, j)
}

func (u *JobUseCase) getJob(ctx context.Context, tenantID, jobID string) (entities.Job, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Job{}, ErrInvalidTenantID
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) attachRecords(ctx context.Context, j entities.Job) (entities.Job, error) {
	estimate, err := u.estimateRepo.GetByJobID(ctx, j.TenantID, j.ID)
	if err != nil {
		return entities.Job{}, err
	}
	if estimate.ID != "" {
		j.Estimate = &estimate
	}

	actuals, err := u.actualsRepo.GetByJobID(ctx, j.TenantID, j.ID)
	if err != nil {
		return entities.Job{}, err
	}
	if actuals.ID != "" {
		j.Actuals = &actuals
	}
	return j, nil
}

// nextJobNumber continues the tenant's JOB-NNNN sequence.
func nextJobNumber(jobs []entities.Job) string {
	highest := 0
	for _, j := range jobs {
		parts := strings.Split(j.JobNumber, "-")
		if len(parts) != 2 {
			continue
		}
		if n, err := strconv.Atoi(parts[1]); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("JOB-%04d", highest+1)
}
