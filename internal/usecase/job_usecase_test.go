package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"metalmetrics/internal/domain/entities"
	mock_interfaces "metalmetrics/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newJobMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockIActualsRepository) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIJobRepository(ctrl),
		mock_interfaces.NewMockIEstimateRepository(ctrl),
		mock_interfaces.NewMockIActualsRepository(ctrl)
}

func TestJobUseCase_Create(t *testing.T) {
	t.Run("invalid tenant id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "   ", "Acme", "")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("invalid customer", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "tenant-1", "  ", "")
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("continues job number sequence", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return([]entities.Job{
			{JobNumber: "JOB-0001"},
			{JobNumber: "JOB-0007"},
			{JobNumber: "not-a-number"},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.TenantID != "tenant-1" {
					t.Fatalf("unexpected job identity: %+v", j)
				}
				if j.JobNumber != "JOB-0008" {
					t.Fatalf("expected JOB-0008, got %s", j.JobNumber)
				}
				if j.Status != entities.JobStatusQuoted {
					t.Fatalf("expected quoted status, got %s", j.Status)
				}
				if j.CustomerName != "Acme Fab" || j.Description != "bracket run" {
					t.Fatalf("expected trimmed fields, got %+v", j)
				}
				if j.CreatedAt.IsZero() || j.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return j, nil
			},
		)

		j, err := uc.Create(context.Background(), " tenant-1 ", " Acme Fab ", " bracket run ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.JobNumber != "JOB-0008" {
			t.Fatalf("expected JOB-0008, got %s", j.JobNumber)
		}
	})

	t.Run("first job of tenant", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)

		j, err := uc.Create(context.Background(), "tenant-1", "Acme", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.JobNumber != "JOB-0001" {
			t.Fatalf("expected JOB-0001, got %s", j.JobNumber)
		}
	})

	t.Run("repo list error", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return(nil, errors.New("db"))

		_, err := uc.Create(context.Background(), "tenant-1", "Acme", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestJobUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").Return(entities.Job{}, nil)

		_, err := uc.GetByID(context.Background(), "tenant-1", "job-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("attaches estimate and actuals", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", TenantID: "tenant-1"}, nil)
		estRepo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.CostEstimate{ID: "est-1", JobID: "job-1"}, nil)
		actRepo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.ActualsRecord{}, nil)

		j, err := uc.GetByID(context.Background(), "tenant-1", "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Estimate == nil || j.Estimate.ID != "est-1" {
			t.Fatalf("expected estimate attached, got %+v", j.Estimate)
		}
		if j.Actuals != nil {
			t.Fatalf("expected no actuals, got %+v", j.Actuals)
		}
	})
}

func TestJobUseCase_List(t *testing.T) {
	ctrl, repo, estRepo, actRepo := newJobMocks(t)
	defer ctrl.Finish()
	uc := NewJobUseCase(repo, estRepo, actRepo)

	older := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	jobs := []entities.Job{
		{ID: "a", JobNumber: "JOB-0001", CustomerName: "Acme Fab", Status: entities.JobStatusQuoted, CreatedAt: older},
		{ID: "b", JobNumber: "JOB-0002", CustomerName: "Globex", Status: entities.JobStatusInProgress, CreatedAt: newer},
		{ID: "c", JobNumber: "JOB-0003", CustomerName: "Acme Fab", Status: entities.JobStatusInProgress, CreatedAt: older.Add(time.Hour)},
	}

	t.Run("search matches customer or job number", func(t *testing.T) {
		repo.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return(jobs, nil)

		got, err := uc.List(context.Background(), "tenant-1", "acme", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
			t.Fatalf("expected [c a] newest first, got %+v", got)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		repo.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return(jobs, nil)

		got, err := uc.List(context.Background(), "tenant-1", "", entities.JobStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "b" {
			t.Fatalf("expected [b c], got %+v", got)
		}
	})
}

func TestJobUseCase_Start(t *testing.T) {
	t.Run("requires estimate", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusQuoted}, nil)
		estRepo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.CostEstimate{}, nil)

		_, err := uc.Start(context.Background(), "tenant-1", "job-1")
		if !errors.Is(err, ErrEstimateRequired) {
			t.Fatalf("expected ErrEstimateRequired, got %v", err)
		}
	})

	t.Run("illegal from completed", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)

		_, err := uc.Start(context.Background(), "tenant-1", "job-1")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", TenantID: "tenant-1", Status: entities.JobStatusQuoted}, nil)
		estRepo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.CostEstimate{ID: "est-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusInProgress {
					t.Fatalf("expected in_progress, got %s", j.Status)
				}
				return j, nil
			},
		)

		j, err := uc.Start(context.Background(), "tenant-1", "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Status != entities.JobStatusInProgress {
			t.Fatalf("expected in_progress, got %s", j.Status)
		}
	})
}

func TestJobUseCase_Complete(t *testing.T) {
	t.Run("requires actuals", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusInProgress}, nil)
		actRepo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.ActualsRecord{}, nil)

		_, err := uc.Complete(context.Background(), "tenant-1", "job-1")
		if !errors.Is(err, ErrActualsRequired) {
			t.Fatalf("expected ErrActualsRequired, got %v", err)
		}
	})

	t.Run("stamps completed at once", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusInProgress}, nil)
		actRepo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.ActualsRecord{ID: "act-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusCompleted {
					t.Fatalf("expected completed, got %s", j.Status)
				}
				if j.CompletedAt == nil || j.CompletedAt.IsZero() {
					t.Fatalf("expected completed_at stamp")
				}
				return j, nil
			},
		)

		if _, err := uc.Complete(context.Background(), "tenant-1", "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("preserves existing completed at", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusInProgress, CompletedAt: &stamp}, nil)
		actRepo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.ActualsRecord{ID: "act-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.CompletedAt == nil || !j.CompletedAt.Equal(stamp) {
					t.Fatalf("expected original stamp preserved, got %v", j.CompletedAt)
				}
				return j, nil
			},
		)

		if _, err := uc.Complete(context.Background(), "tenant-1", "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_Invoice(t *testing.T) {
	t.Run("terminal state", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusInvoiced}, nil)

		_, err := uc.Invoice(context.Background(), "tenant-1", "job-1")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, estRepo, actRepo := newJobMocks(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(repo, estRepo, actRepo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)
		actRepo.EXPECT().GetByJobID(gomock.Any(), "tenant-1", "job-1").
			Return(entities.ActualsRecord{ID: "act-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)

		j, err := uc.Invoice(context.Background(), "tenant-1", "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Status != entities.JobStatusInvoiced {
			t.Fatalf("expected invoiced, got %s", j.Status)
		}
	})
}
