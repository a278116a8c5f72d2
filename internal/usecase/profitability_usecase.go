package usecase

import (
	"context"
	"errors"

	"metalmetrics/internal/domain/costing"
	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase/interfaces"
)

// ErrReportUnavailable signals that profitability cannot be assessed yet:
// the job has no estimate, no actuals, or both. This is a defined condition,
// not a failure.
var ErrReportUnavailable = errors.New("profitability report unavailable")

// IProfitabilityUseCase builds the per-job profitability report.
//
// The report is computed fresh on every call from the raw estimate and
// actuals inputs; stored snapshots are never consulted. The target margin
// comes from tenant settings, falling back to the documented default of 20%
// when the tenant has never saved settings.

type IProfitabilityUseCase interface {
	Report(ctx context.Context, tenantID, jobID string) (costing.JobProfitabilityReport, error)
}

type ProfitabilityUseCase struct {
	jobRepo      interfaces.IJobRepository
	estimateRepo interfaces.IEstimateRepository
	actualsRepo  interfaces.IActualsRepository
	settingsRepo interfaces.ITenantSettingsRepository
}

var _ IProfitabilityUseCase = (*ProfitabilityUseCase)(nil)

func NewProfitabilityUseCase(
	jobRepo interfaces.IJobRepository,
	estimateRepo interfaces.IEstimateRepository,
	actualsRepo interfaces.IActualsRepository,
	settingsRepo interfaces.ITenantSettingsRepository,
) *ProfitabilityUseCase {
	return &ProfitabilityUseCase{jobRepo: jobRepo, estimateRepo: estimateRepo, actualsRepo: actualsRepo, settingsRepo: settingsRepo}
}

func (u *ProfitabilityUseCase) Report(ctx context.Context, tenantID, jobID string) (costing.JobProfitabilityReport, error) {
	tenantID, jobID, err := trimIDs(tenantID, jobID)
	if err != nil {
		return costing.JobProfitabilityReport{}, err
	}

	job, err := u.jobRepo.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return costing.JobProfitabilityReport{}, err
	}
	if job.ID == "" {
		return costing.JobProfitabilityReport{}, ErrJobNotFound
	}

	estimate, err := u.estimateRepo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return costing.JobProfitabilityReport{}, err
	}
	actuals, err := u.actualsRepo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return costing.JobProfitabilityReport{}, err
	}
	if estimate.ID == "" || actuals.ID == "" {
		return costing.JobProfitabilityReport{}, ErrReportUnavailable
	}

	settings, err := u.settingsRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return costing.JobProfitabilityReport{}, err
	}
	if settings.TenantID == "" {
		settings = entities.NewTenantSettings(tenantID)
	}

	return costing.Calculate(estimate, actuals, settings.TargetMarginPercent), nil
}
