package usecase

import (
	"context"
	"strings"
	"time"

	"metalmetrics/internal/domain/costing"
	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IDashboardUseCase exposes the tenant-wide portfolio aggregations.
//
// Each call loads the tenant's jobs with their estimate/actuals pairs and
// folds them through the pure aggregation functions in the costing package.
// Jobs with partial data participate only in the aggregates that can use
// them; an empty portfolio yields empty/zero results.

type IDashboardUseCase interface {
	KPIs(ctx context.Context, tenantID string) (costing.DashboardKPIs, error)
	CustomerProfitability(ctx context.Context, tenantID string) ([]costing.CustomerProfitability, error)
	CategoryVariances(ctx context.Context, tenantID string) ([]costing.CategoryVariance, error)
	AtRiskJobs(ctx context.Context, tenantID string, thresholdPercent *decimal.Decimal) ([]costing.AtRiskJob, error)
	JobSummaries(ctx context.Context, tenantID string, from, to *time.Time, limit int) ([]costing.JobSummary, error)
}

type DashboardUseCase struct {
	jobRepo      interfaces.IJobRepository
	estimateRepo interfaces.IEstimateRepository
	actualsRepo  interfaces.IActualsRepository
	settingsRepo interfaces.ITenantSettingsRepository

	// now is swappable for tests; month windows depend on it.
	now func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	jobRepo interfaces.IJobRepository,
	estimateRepo interfaces.IEstimateRepository,
	actualsRepo interfaces.IActualsRepository,
	settingsRepo interfaces.ITenantSettingsRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		jobRepo:      jobRepo,
		estimateRepo: estimateRepo,
		actualsRepo:  actualsRepo,
		settingsRepo: settingsRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *DashboardUseCase) KPIs(ctx context.Context, tenantID string) (costing.DashboardKPIs, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return costing.DashboardKPIs{}, ErrInvalidTenantID
	}

	jobs, err := u.loadPortfolio(ctx, tenantID)
	if err != nil {
		return costing.DashboardKPIs{}, err
	}

	settings, err := u.settingsRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return costing.DashboardKPIs{}, err
	}
	if settings.TenantID == "" {
		settings = entities.NewTenantSettings(tenantID)
	}

	return costing.BuildKPIs(jobs, settings.TargetMarginPercent, u.now()), nil
}

func (u *DashboardUseCase) CustomerProfitability(ctx context.Context, tenantID string) ([]costing.CustomerProfitability, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	jobs, err := u.loadPortfolio(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return costing.BuildCustomerProfitability(jobs), nil
}

func (u *DashboardUseCase) CategoryVariances(ctx context.Context, tenantID string) ([]costing.CategoryVariance, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	jobs, err := u.loadPortfolio(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return costing.BuildCategoryVariances(jobs), nil
}

func (u *DashboardUseCase) AtRiskJobs(ctx context.Context, tenantID string, thresholdPercent *decimal.Decimal) ([]costing.AtRiskJob, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	threshold := costing.DefaultAtRiskThresholdPercent
	if thresholdPercent != nil {
		threshold = *thresholdPercent
	}

	jobs, err := u.loadPortfolio(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return costing.BuildAtRiskJobs(jobs, threshold), nil
}

// JobSummaries lists completed jobs newest-first. With no window and no
// positive limit the recent-completions default of 20 applies; a windowed
// call is uncapped unless the caller passes a limit.
func (u *DashboardUseCase) JobSummaries(ctx context.Context, tenantID string, from, to *time.Time, limit int) ([]costing.JobSummary, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	if limit <= 0 && from == nil && to == nil {
		limit = costing.DefaultJobSummaryLimit
	}

	jobs, err := u.loadPortfolio(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return costing.BuildJobSummaries(jobs, from, to, limit), nil
}

// loadPortfolio fetches the tenant's jobs and attaches estimate/actuals
// pairs in two batch queries rather than per-job lookups.
func (u *DashboardUseCase) loadPortfolio(ctx context.Context, tenantID string) ([]entities.Job, error) {
	jobs, err := u.jobRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	estimates, err := u.estimateRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	actuals, err := u.actualsRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	estimateByJob := make(map[string]entities.CostEstimate, len(estimates))
	for _, e := range estimates {
		estimateByJob[e.JobID] = e
	}
	actualsByJob := make(map[string]entities.ActualsRecord, len(actuals))
	for _, a := range actuals {
		actualsByJob[a.JobID] = a
	}

	for i := range jobs {
		if e, ok := estimateByJob[jobs[i].ID]; ok {
			estimate := e
			jobs[i].Estimate = &estimate
		}
		if a, ok := actualsByJob[jobs[i].ID]; ok {
			record := a
			jobs[i].Actuals = &record
		}
	}
	return jobs, nil
}
