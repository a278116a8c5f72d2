package usecase

import (
	"context"
	"errors"
	"time"

	"metalmetrics/internal/domain/costing"
	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrActualsNotFound = errors.New("actuals not found")
	ErrActualsTooEarly = errors.New("actuals not accepted before work starts")
	ErrActualsLocked   = errors.New("actuals locked after invoicing")
)

// ActualsInput is the caller-facing shape for saving an actuals record.
// Nil rate and overhead fields fall back to the tenant's defaults, mirroring
// EstimateInput.
type ActualsInput struct {
	LaborHours      decimal.Decimal
	LaborRate       *decimal.Decimal
	MaterialCost    decimal.Decimal
	MachineHours    decimal.Decimal
	MachineRate     *decimal.Decimal
	OverheadPercent *decimal.Decimal
	Revenue         decimal.Decimal
	Notes           string
	EnteredBy       string
}

// IActualsUseCase exposes actuals operations.
//
// Save is create-or-replace: actuals exist from the moment work starts
// (InProgress) and stay editable until the job is invoiced. TotalCost is
// recomputed before every save, same invariant as estimates.

type IActualsUseCase interface {
	GetByJobID(ctx context.Context, tenantID, jobID string) (entities.ActualsRecord, error)
	Save(ctx context.Context, tenantID, jobID string, input ActualsInput) (entities.ActualsRecord, error)
}

type ActualsUseCase struct {
	repo         interfaces.IActualsRepository
	jobRepo      interfaces.IJobRepository
	settingsRepo interfaces.ITenantSettingsRepository
}

var _ IActualsUseCase = (*ActualsUseCase)(nil)

func NewActualsUseCase(repo interfaces.IActualsRepository, jobRepo interfaces.IJobRepository, settingsRepo interfaces.ITenantSettingsRepository) *ActualsUseCase {
	return &ActualsUseCase{repo: repo, jobRepo: jobRepo, settingsRepo: settingsRepo}
}

func (u *ActualsUseCase) GetByJobID(ctx context.Context, tenantID, jobID string) (entities.ActualsRecord, error) {
	tenantID, jobID, err := trimIDs(tenantID, jobID)
	if err != nil {
		return entities.ActualsRecord{}, err
	}

	a, err := u.repo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.ActualsRecord{}, err
	}
	if a.ID == "" {
		return entities.ActualsRecord{}, ErrActualsNotFound
	}
	return a, nil
}

func (u *ActualsUseCase) Save(ctx context.Context, tenantID, jobID string, input ActualsInput) (entities.ActualsRecord, error) {
	tenantID, jobID, err := trimIDs(tenantID, jobID)
	if err != nil {
		return entities.ActualsRecord{}, err
	}

	job, err := u.jobRepo.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return entities.ActualsRecord{}, err
	}
	if job.ID == "" {
		return entities.ActualsRecord{}, ErrJobNotFound
	}
	switch job.Status {
	case entities.JobStatusQuoted:
		return entities.ActualsRecord{}, ErrActualsTooEarly
	case entities.JobStatusInvoiced:
		return entities.ActualsRecord{}, ErrActualsLocked
	}

	settings, err := u.settingsRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return entities.ActualsRecord{}, err
	}
	if settings.TenantID == "" {
		settings = entities.NewTenantSettings(tenantID)
	}

	existing, err := u.repo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.ActualsRecord{}, err
	}

	now := time.Now().UTC()
	a := existing
	if a.ID == "" {
		a = entities.ActualsRecord{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			JobID:     jobID,
			CreatedAt: now,
		}
	}

	a.LaborHours = input.LaborHours
	a.LaborRate = orDefault(input.LaborRate, settings.DefaultLaborRate)
	a.MaterialCost = input.MaterialCost
	a.MachineHours = input.MachineHours
	a.MachineRate = orDefault(input.MachineRate, settings.DefaultMachineRate)
	a.OverheadPercent = orDefault(input.OverheadPercent, settings.DefaultOverheadPercent)
	a.Revenue = input.Revenue
	a.Notes = input.Notes
	a.EnteredBy = input.EnteredBy
	a.UpdatedAt = now

	costing.RecalculateActuals(&a)
	return u.repo.Save(ctx, a)
}
