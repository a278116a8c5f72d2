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

func TestTenantSettingsUseCase_Get(t *testing.T) {
	t.Run("invalid tenant id", func(t *testing.T) {
		uc := NewTenantSettingsUseCase(nil)
		_, err := uc.Get(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("returns stored settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantSettingsRepository(ctrl)
		uc := NewTenantSettingsUseCase(repo)

		stored := entities.NewTenantSettings("tenant-1")
		stored.DefaultLaborRate = decimal.NewFromInt(95)
		repo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(stored, nil)

		settings, err := uc.Get(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !settings.DefaultLaborRate.Equal(decimal.NewFromInt(95)) {
			t.Fatalf("expected stored rate 95, got %s", settings.DefaultLaborRate)
		}
	})

	t.Run("persists defaults on first access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantSettingsRepository(ctrl)
		uc := NewTenantSettingsUseCase(repo)

		repo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").Return(entities.TenantSettings{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.TenantSettings{})).DoAndReturn(
			func(_ context.Context, s entities.TenantSettings) (entities.TenantSettings, error) {
				if s.TenantID != "tenant-1" {
					t.Fatalf("unexpected tenant: %s", s.TenantID)
				}
				if !s.DefaultLaborRate.Equal(decimal.NewFromInt(75)) ||
					!s.DefaultMachineRate.Equal(decimal.NewFromInt(150)) ||
					!s.DefaultOverheadPercent.Equal(decimal.NewFromInt(15)) ||
					!s.TargetMarginPercent.Equal(decimal.NewFromInt(20)) {
					t.Fatalf("unexpected defaults: %+v", s)
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)

		if _, err := uc.Get(context.Background(), "tenant-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTenantSettingsUseCase_Update(t *testing.T) {
	t.Run("patches only provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantSettingsRepository(ctrl)
		uc := NewTenantSettingsUseCase(repo)

		repo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").
			Return(entities.NewTenantSettings("tenant-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.TenantSettings) (entities.TenantSettings, error) {
				if !s.TargetMarginPercent.Equal(decimal.NewFromInt(30)) {
					t.Fatalf("expected target 30, got %s", s.TargetMarginPercent)
				}
				if !s.DefaultLaborRate.Equal(decimal.NewFromInt(75)) {
					t.Fatalf("expected labor rate untouched, got %s", s.DefaultLaborRate)
				}
				return s, nil
			},
		)

		target := decimal.NewFromInt(30)
		settings, err := uc.Update(context.Background(), "tenant-1", SettingsInput{TargetMarginPercent: &target})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !settings.TargetMarginPercent.Equal(target) {
			t.Fatalf("expected target 30, got %s", settings.TargetMarginPercent)
		}
	})

	t.Run("repo save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantSettingsRepository(ctrl)
		uc := NewTenantSettingsUseCase(repo)

		repo.EXPECT().GetByTenantID(gomock.Any(), "tenant-1").
			Return(entities.NewTenantSettings("tenant-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(entities.TenantSettings{}, errors.New("db"))

		_, err := uc.Update(context.Background(), "tenant-1", SettingsInput{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
