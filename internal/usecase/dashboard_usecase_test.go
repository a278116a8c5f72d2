package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"metalmetrics/internal/domain/entities"
	mock_interfaces "metalmetrics/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newDashboardMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockIActualsRepository, *mock_interfaces.MockITenantSettingsRepository) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIJobRepository(ctrl),
		mock_interfaces.NewMockIEstimateRepository(ctrl),
		mock_interfaces.NewMockIActualsRepository(ctrl),
		mock_interfaces.NewMockITenantSettingsRepository(ctrl)
}

// dashboardFixture is a two-job portfolio: one invoiced job with a healthy
// margin and one in-progress job running over its estimate.
func dashboardFixture() ([]entities.Job, []entities.CostEstimate, []entities.ActualsRecord) {
	completed := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	jobs := []entities.Job{
		{
			ID: "job-1", JobNumber: "JOB-0001", CustomerName: "Acme Fab",
			Status: entities.JobStatusInvoiced, CompletedAt: &completed,
			CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "job-2", JobNumber: "JOB-0002", CustomerName: "Globex",
			Status:    entities.JobStatusInProgress,
			CreatedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	estimates := []entities.CostEstimate{
		{
			ID: "est-1", JobID: "job-1",
			LaborHours: decimal.NewFromInt(10), LaborRate: decimal.NewFromInt(75),
			MaterialCost: decimal.NewFromInt(500),
			MachineHours: decimal.NewFromInt(5), MachineRate: decimal.NewFromInt(150),
			OverheadPercent: decimal.NewFromInt(15),
			QuotePrice:      decimal.NewFromInt(4000),
		},
		{
			ID: "est-2", JobID: "job-2",
			LaborHours: decimal.NewFromInt(10), LaborRate: decimal.NewFromInt(75),
			MaterialCost: decimal.NewFromInt(500),
			MachineHours: decimal.NewFromInt(5), MachineRate: decimal.NewFromInt(150),
			OverheadPercent: decimal.NewFromInt(15),
			QuotePrice:      decimal.NewFromInt(3000),
		},
	}
	actuals := []entities.ActualsRecord{
		{
			ID: "act-1", JobID: "job-1",
			LaborHours: decimal.NewFromInt(10), LaborRate: decimal.NewFromInt(75),
			MaterialCost: decimal.NewFromInt(500),
			MachineHours: decimal.NewFromInt(5), MachineRate: decimal.NewFromInt(150),
			OverheadPercent: decimal.NewFromInt(15),
			Revenue:         decimal.NewFromInt(4600),
		},
		{
			ID: "act-2", JobID: "job-2",
			LaborHours: decimal.NewFromInt(20), LaborRate: decimal.NewFromInt(75),
			MaterialCost: decimal.NewFromInt(1000),
			MachineHours: decimal.NewFromInt(5), MachineRate: decimal.NewFromInt(150),
			OverheadPercent: decimal.NewFromInt(15),
			Revenue:         decimal.NewFromInt(3000),
		},
	}
	return jobs, estimates, actuals
}

func expectPortfolio(jobRepo *mock_interfaces.MockIJobRepository, estRepo *mock_interfaces.MockIEstimateRepository, actRepo *mock_interfaces.MockIActualsRepository) {
	jobs, estimates, actuals := dashboardFixture()
	jobRepo.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return(jobs, nil)
	estRepo.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return(estimates, nil)
	actRepo.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return(actuals, nil)
}

func TestDashboardUseCase_KPIs(t *testing.T) {
	t.Run("invalid tenant id", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil, nil, nil)
		_, err := uc.KPIs(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("rolls up portfolio", func(t *testing.T) {
		ctrl, jobRepo, estRepo, actRepo, settingsRepo := newDashboardMocks(t)
		defer ctrl.Finish()
		uc := NewDashboardUseCase(jobRepo, estRepo, actRepo, settingsRepo)
		uc.now = func() time.Time { return time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC) }

		expectPortfolio(jobRepo, estRepo, actRepo)
		settingsRepo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").
			Return(entities.NewTenantSettings("tenant-1"), nil)

		kpis, err := uc.KPIs(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kpis.TotalJobs != 2 || kpis.JobsThisMonth != 1 {
			t.Fatalf("unexpected counts: %+v", kpis)
		}
		if kpis.InProgressCount != 1 || !kpis.PipelineValue.Equal(decimal.NewFromInt(3000)) {
			t.Fatalf("unexpected pipeline: %+v", kpis)
		}
		if !kpis.RevenueThisMonth.Equal(decimal.NewFromInt(4600)) {
			t.Fatalf("expected revenue this month 4600, got %s", kpis.RevenueThisMonth)
		}
		if !kpis.TotalRevenue.Equal(decimal.NewFromInt(7600)) {
			t.Fatalf("expected total revenue 7600, got %s", kpis.TotalRevenue)
		}
		// Job 2 runs at a loss, so it is the one below the 20% target.
		if kpis.JobsBelowTarget != 1 {
			t.Fatalf("expected one job below target, got %d", kpis.JobsBelowTarget)
		}
	})
}

func TestDashboardUseCase_CustomerProfitability(t *testing.T) {
	ctrl, jobRepo, estRepo, actRepo, settingsRepo := newDashboardMocks(t)
	defer ctrl.Finish()
	uc := NewDashboardUseCase(jobRepo, estRepo, actRepo, settingsRepo)

	expectPortfolio(jobRepo, estRepo, actRepo)

	groups, err := uc.CustomerProfitability(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected two customers, got %d", len(groups))
	}
	// Acme cleared 2300 profit; Globex lost money, so Acme leads.
	if groups[0].CustomerName != "Acme Fab" || !groups[0].Profit.Equal(decimal.NewFromInt(2300)) {
		t.Fatalf("unexpected leader: %+v", groups[0])
	}
	if !groups[1].Profit.IsNegative() {
		t.Fatalf("expected Globex at a loss, got %+v", groups[1])
	}
}

func TestDashboardUseCase_CategoryVariances(t *testing.T) {
	ctrl, jobRepo, estRepo, actRepo, settingsRepo := newDashboardMocks(t)
	defer ctrl.Finish()
	uc := NewDashboardUseCase(jobRepo, estRepo, actRepo, settingsRepo)

	expectPortfolio(jobRepo, estRepo, actRepo)

	variances, err := uc.CategoryVariances(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// All four categories have positive estimated bases across the fixture.
	if len(variances) != 4 {
		t.Fatalf("expected four categories, got %d", len(variances))
	}
}

func TestDashboardUseCase_AtRiskJobs(t *testing.T) {
	t.Run("default threshold", func(t *testing.T) {
		ctrl, jobRepo, estRepo, actRepo, settingsRepo := newDashboardMocks(t)
		defer ctrl.Finish()
		uc := NewDashboardUseCase(jobRepo, estRepo, actRepo, settingsRepo)

		expectPortfolio(jobRepo, estRepo, actRepo)

		atRisk, err := uc.AtRiskJobs(context.Background(), "tenant-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Job 2 runs 62.5% over its 2300 estimate; job 1 is invoiced.
		if len(atRisk) != 1 || atRisk[0].JobID != "job-2" {
			t.Fatalf("expected job-2 at risk, got %+v", atRisk)
		}
	})

	t.Run("caller threshold excludes", func(t *testing.T) {
		ctrl, jobRepo, estRepo, actRepo, settingsRepo := newDashboardMocks(t)
		defer ctrl.Finish()
		uc := NewDashboardUseCase(jobRepo, estRepo, actRepo, settingsRepo)

		expectPortfolio(jobRepo, estRepo, actRepo)

		threshold := decimal.NewFromInt(70)
		atRisk, err := uc.AtRiskJobs(context.Background(), "tenant-1", &threshold)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(atRisk) != 0 {
			t.Fatalf("expected none above 70%%, got %+v", atRisk)
		}
	})
}

func TestDashboardUseCase_JobSummaries(t *testing.T) {
	t.Run("invalid tenant id", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil, nil, nil)
		_, err := uc.JobSummaries(context.Background(), "  ", nil, nil, 0)
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("lists completed jobs only", func(t *testing.T) {
		ctrl, jobRepo, estRepo, actRepo, settingsRepo := newDashboardMocks(t)
		defer ctrl.Finish()
		uc := NewDashboardUseCase(jobRepo, estRepo, actRepo, settingsRepo)

		expectPortfolio(jobRepo, estRepo, actRepo)

		summaries, err := uc.JobSummaries(context.Background(), "tenant-1", nil, nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Job 2 is still in progress, so only the invoiced job appears.
		if len(summaries) != 1 || summaries[0].JobID != "job-1" {
			t.Fatalf("expected only job-1, got %+v", summaries)
		}
		// 2300 cost against 4600 revenue: 50% realized margin.
		if !summaries[0].ActualMarginPercent.Equal(decimal.NewFromInt(50)) || !summaries[0].IsProfitable {
			t.Fatalf("unexpected margin: %+v", summaries[0])
		}
	})

	t.Run("window excludes completions outside it", func(t *testing.T) {
		ctrl, jobRepo, estRepo, actRepo, settingsRepo := newDashboardMocks(t)
		defer ctrl.Finish()
		uc := NewDashboardUseCase(jobRepo, estRepo, actRepo, settingsRepo)

		expectPortfolio(jobRepo, estRepo, actRepo)

		from := time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC)
		summaries, err := uc.JobSummaries(context.Background(), "tenant-1", &from, nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(summaries) != 0 {
			t.Fatalf("expected empty window, got %+v", summaries)
		}
	})
}
