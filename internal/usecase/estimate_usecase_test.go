package usecase

import (
	"context"
	"errors"
	"testing"

	"metalmetrics/internal/domain/entities"
	mock_interfaces "metalmetrics/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newEstimateMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockITenantSettingsRepository, *mock_interfaces.MockIQuoteGenerator) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIEstimateRepository(ctrl),
		mock_interfaces.NewMockIJobRepository(ctrl),
		mock_interfaces.NewMockITenantSettingsRepository(ctrl),
		mock_interfaces.NewMockIQuoteGenerator(ctrl)
}

func TestEstimateUseCase_GetByJobID(t *testing.T) {
	t.Run("invalid tenant id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.GetByJobID(context.Background(), "  ", "job-1")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, jobRepo, settingsRepo, gen := newEstimateMocks(t)
		defer ctrl.Finish()
		uc := NewEstimateUseCase(repo, jobRepo, settingsRepo, gen)

		repo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").Return(entities.CostEstimate{}, nil)

		_, err := uc.GetByJobID(context.Background(), "tenant-1", "job-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_Save(t *testing.T) {
	t.Run("job not found", func(t *testing.T) {
		ctrl, repo, jobRepo, settingsRepo, gen := newEstimateMocks(t)
		defer ctrl.Finish()
		uc := NewEstimateUseCase(repo, jobRepo, settingsRepo, gen)

		jobRepo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").Return(entities.Job{}, nil)

		_, err := uc.Save(context.Background(), "tenant-1", "job-1", EstimateInput{})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("locked after completion", func(t *testing.T) {
		ctrl, repo, jobRepo, settingsRepo, gen := newEstimateMocks(t)
		defer ctrl.Finish()
		uc := NewEstimateUseCase(repo, jobRepo, settingsRepo, gen)

		jobRepo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)

		_, err := uc.Save(context.Background(), "tenant-1", "job-1", EstimateInput{})
		if !errors.Is(err, ErrEstimateLocked) {
			t.Fatalf("expected ErrEstimateLocked, got %v", err)
		}
	})

	t.Run("defaults and snapshot recompute", func(t *testing.T) {
		ctrl, repo, jobRepo, settingsRepo, gen := newEstimateMocks(t)
		defer ctrl.Finish()
		uc := NewEstimateUseCase(repo, jobRepo, settingsRepo, gen)

		jobRepo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusQuoted}, nil)
		settingsRepo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").
			Return(entities.TenantSettings{}, nil)
		repo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.CostEstimate{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.CostEstimate{})).DoAndReturn(
			func(_ context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
				if e.ID == "" || e.TenantID != "tenant-1" || e.JobID != "job-1" {
					t.Fatalf("unexpected identity: %+v", e)
				}
				// Default rates 75/150 and 15% overhead over a
				// 12h/600/6h input give a 2760 total.
				if !e.LaborRate.Equal(decimal.NewFromInt(75)) || !e.MachineRate.Equal(decimal.NewFromInt(150)) {
					t.Fatalf("expected default rates, got %s/%s", e.LaborRate, e.MachineRate)
				}
				if !e.TotalCost.Equal(decimal.NewFromInt(2760)) {
					t.Fatalf("expected total 2760, got %s", e.TotalCost)
				}
				if e.AIGenerated || e.AIPromptSnapshot != "" {
					t.Fatalf("manual save must clear AI markers")
				}
				return e, nil
			},
		)

		_, err := uc.Save(context.Background(), "tenant-1", "job-1", EstimateInput{
			LaborHours:   decimal.NewFromInt(12),
			MaterialCost: decimal.NewFromInt(600),
			MachineHours: decimal.NewFromInt(6),
			QuotePrice:   decimal.NewFromInt(3500),
			CreatedBy:    "estimator@acme",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update keeps id and created at", func(t *testing.T) {
		ctrl, repo, jobRepo, settingsRepo, gen := newEstimateMocks(t)
		defer ctrl.Finish()
		uc := NewEstimateUseCase(repo, jobRepo, settingsRepo, gen)

		rate := decimal.NewFromInt(90)
		jobRepo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusInProgress}, nil)
		settingsRepo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").
			Return(entities.NewTenantSettings("tenant-1"), nil)
		repo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.CostEstimate{ID: "est-1", TenantID: "tenant-1", JobID: "job-1", AIGenerated: true}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
				if e.ID != "est-1" {
					t.Fatalf("expected existing id kept, got %s", e.ID)
				}
				if !e.LaborRate.Equal(rate) {
					t.Fatalf("expected explicit rate 90, got %s", e.LaborRate)
				}
				if e.AIGenerated {
					t.Fatalf("manual edit must clear ai_generated")
				}
				return e, nil
			},
		)

		_, err := uc.Save(context.Background(), "tenant-1", "job-1", EstimateInput{
			LaborHours: decimal.NewFromInt(4),
			LaborRate:  &rate,
			QuotePrice: decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_GenerateAI(t *testing.T) {
	t.Run("generator not configured", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.GenerateAI(context.Background(), "tenant-1", "job-1", entities.AIQuoteRequest{})
		if !errors.Is(err, ErrQuoteGeneratorNotReady) {
			t.Fatalf("expected ErrQuoteGeneratorNotReady, got %v", err)
		}
	})

	t.Run("generator error", func(t *testing.T) {
		ctrl, repo, jobRepo, settingsRepo, gen := newEstimateMocks(t)
		defer ctrl.Finish()
		uc := NewEstimateUseCase(repo, jobRepo, settingsRepo, gen)

		jobRepo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusQuoted}, nil)
		settingsRepo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").
			Return(entities.NewTenantSettings("tenant-1"), nil)
		gen.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).
			Return(entities.AIQuoteSuggestion{}, "", errors.New("upstream"))

		_, err := uc.GenerateAI(context.Background(), "tenant-1", "job-1", entities.AIQuoteRequest{})
		if err == nil || err.Error() != "upstream" {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})

	t.Run("success seeds rates and marks ai generated", func(t *testing.T) {
		ctrl, repo, jobRepo, settingsRepo, gen := newEstimateMocks(t)
		defer ctrl.Finish()
		uc := NewEstimateUseCase(repo, jobRepo, settingsRepo, gen)

		jobRepo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusQuoted}, nil)
		settingsRepo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").
			Return(entities.NewTenantSettings("tenant-1"), nil)
		gen.EXPECT().GenerateQuote(gomock.Any(), gomock.AssignableToTypeOf(entities.AIQuoteRequest{})).DoAndReturn(
			func(_ context.Context, req entities.AIQuoteRequest) (entities.AIQuoteSuggestion, string, error) {
				if !req.LaborRate.Equal(decimal.NewFromInt(75)) || !req.MachineRate.Equal(decimal.NewFromInt(150)) {
					t.Fatalf("expected tenant default rates in request, got %s/%s", req.LaborRate, req.MachineRate)
				}
				return entities.AIQuoteSuggestion{
					LaborHours:          decimal.NewFromInt(12),
					MaterialCost:        decimal.NewFromInt(600),
					MachineHours:        decimal.NewFromInt(6),
					OverheadPercent:     decimal.NewFromInt(15),
					SuggestedQuotePrice: decimal.NewFromInt(3500),
				}, "prompt body", nil
			},
		)
		repo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.CostEstimate{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
				if !e.AIGenerated || e.AIPromptSnapshot != "prompt body" {
					t.Fatalf("expected AI markers set, got %+v", e)
				}
				if !e.TotalCost.Equal(decimal.NewFromInt(2760)) {
					t.Fatalf("expected total 2760, got %s", e.TotalCost)
				}
				return e, nil
			},
		)

		e, err := uc.GenerateAI(context.Background(), "tenant-1", "job-1", entities.AIQuoteRequest{
			MaterialType: "304 stainless",
			Quantity:     40,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !e.QuotePrice.Equal(decimal.NewFromInt(3500)) {
			t.Fatalf("expected quote 3500, got %s", e.QuotePrice)
		}
	})
}
