package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"metalmetrics/internal/domain/costing"
	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEstimateNotFound       = errors.New("estimate not found")
	ErrEstimateLocked         = errors.New("estimate locked after completion")
	ErrQuoteGeneratorNotReady = errors.New("quote generator not configured")
)

// EstimateInput is the caller-facing shape for saving an estimate. Nil rate
// and overhead fields fall back to the tenant's configured defaults.
type EstimateInput struct {
	LaborHours      decimal.Decimal
	LaborRate       *decimal.Decimal
	MaterialCost    decimal.Decimal
	MachineHours    decimal.Decimal
	MachineRate     *decimal.Decimal
	OverheadPercent *decimal.Decimal
	QuotePrice      decimal.Decimal
	CreatedBy       string
}

// IEstimateUseCase exposes estimate operations.
//
// Save is create-or-update and is only allowed while the job has not been
// completed; it always recomputes the stored TotalCost/MarginPercent
// snapshots before persisting, so the invariant "snapshots match raw inputs"
// holds at every save point. GenerateAI runs the external quote producer and
// funnels the suggestion through the exact same path.

type IEstimateUseCase interface {
	GetByJobID(ctx context.Context, tenantID, jobID string) (entities.CostEstimate, error)
	Save(ctx context.Context, tenantID, jobID string, input EstimateInput) (entities.CostEstimate, error)
	GenerateAI(ctx context.Context, tenantID, jobID string, req entities.AIQuoteRequest) (entities.CostEstimate, error)
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	jobRepo      interfaces.IJobRepository
	settingsRepo interfaces.ITenantSettingsRepository
	generator    interfaces.IQuoteGenerator
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	jobRepo interfaces.IJobRepository,
	settingsRepo interfaces.ITenantSettingsRepository,
	generator interfaces.IQuoteGenerator,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, jobRepo: jobRepo, settingsRepo: settingsRepo, generator: generator}
}

func (u *EstimateUseCase) GetByJobID(ctx context.Context, tenantID, jobID string) (entities.CostEstimate, error) {
	tenantID, jobID, err := trimIDs(tenantID, jobID)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	e, err := u.repo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if e.ID == "" {
		return entities.CostEstimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) Save(ctx context.Context, tenantID, jobID string, input EstimateInput) (entities.CostEstimate, error) {
	tenantID, jobID, err := trimIDs(tenantID, jobID)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	job, err := u.jobRepo.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if job.ID == "" {
		return entities.CostEstimate{}, ErrJobNotFound
	}
	if job.Status == entities.JobStatusCompleted || job.Status == entities.JobStatusInvoiced {
		return entities.CostEstimate{}, ErrEstimateLocked
	}

	settings, err := u.tenantSettings(ctx, tenantID)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	existing, err := u.repo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	now := time.Now().UTC()
	e := existing
	if e.ID == "" {
		e = entities.CostEstimate{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			JobID:     jobID,
			CreatedAt: now,
		}
	}

	e.LaborHours = input.LaborHours
	e.LaborRate = orDefault(input.LaborRate, settings.DefaultLaborRate)
	e.MaterialCost = input.MaterialCost
	e.MachineHours = input.MachineHours
	e.MachineRate = orDefault(input.MachineRate, settings.DefaultMachineRate)
	e.OverheadPercent = orDefault(input.OverheadPercent, settings.DefaultOverheadPercent)
	e.QuotePrice = input.QuotePrice
	if input.CreatedBy != "" {
		e.CreatedBy = input.CreatedBy
	}
	e.AIGenerated = false
	e.AIPromptSnapshot = ""
	e.UpdatedAt = now

	costing.RecalculateEstimate(&e)
	return u.repo.Save(ctx, e)
}

func (u *EstimateUseCase) GenerateAI(ctx context.Context, tenantID, jobID string, req entities.AIQuoteRequest) (entities.CostEstimate, error) {
	tenantID, jobID, err := trimIDs(tenantID, jobID)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if u.generator == nil {
		return entities.CostEstimate{}, ErrQuoteGeneratorNotReady
	}

	job, err := u.jobRepo.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if job.ID == "" {
		return entities.CostEstimate{}, ErrJobNotFound
	}
	if job.Status == entities.JobStatusCompleted || job.Status == entities.JobStatusInvoiced {
		return entities.CostEstimate{}, ErrEstimateLocked
	}

	settings, err := u.tenantSettings(ctx, tenantID)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if req.LaborRate.IsZero() {
		req.LaborRate = settings.DefaultLaborRate
	}
	if req.MachineRate.IsZero() {
		req.MachineRate = settings.DefaultMachineRate
	}
	if req.OverheadPercent.IsZero() {
		req.OverheadPercent = settings.DefaultOverheadPercent
	}

	suggestion, promptSnapshot, err := u.generator.GenerateQuote(ctx, req)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	existing, err := u.repo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	now := time.Now().UTC()
	e := existing
	if e.ID == "" {
		e = entities.CostEstimate{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			JobID:     jobID,
			CreatedAt: now,
		}
	}

	// The suggestion is ordinary estimate input: same totaling, no extra
	// plausibility checks. The prompt snapshot is retained for audit only.
	e.LaborHours = suggestion.LaborHours
	e.LaborRate = req.LaborRate
	e.MaterialCost = suggestion.MaterialCost
	e.MachineHours = suggestion.MachineHours
	e.MachineRate = req.MachineRate
	e.OverheadPercent = suggestion.OverheadPercent
	e.QuotePrice = suggestion.SuggestedQuotePrice
	e.AIGenerated = true
	e.AIPromptSnapshot = promptSnapshot
	e.UpdatedAt = now

	costing.RecalculateEstimate(&e)
	return u.repo.Save(ctx, e)
}

func (u *EstimateUseCase) tenantSettings(ctx context.Context, tenantID string) (entities.TenantSettings, error) {
	settings, err := u.settingsRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return entities.TenantSettings{}, err
	}
	if settings.TenantID == "" {
		settings = entities.NewTenantSettings(tenantID)
	}
	return settings, nil
}

func orDefault(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

func trimIDs(tenantID, jobID string) (string, string, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return "", "", ErrInvalidTenantID
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return "", "", ErrInvalidJobID
	}
	return tenantID, jobID, nil
}
