package usecase

import (
	"context"
	"strings"
	"time"

	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// SettingsInput carries the editable tenant defaults. Nil fields keep the
// current value.
type SettingsInput struct {
	DefaultLaborRate       *decimal.Decimal
	DefaultMachineRate     *decimal.Decimal
	DefaultOverheadPercent *decimal.Decimal
	TargetMarginPercent    *decimal.Decimal
}

// ITenantSettingsUseCase exposes tenant settings operations. Get is lazy:
// a tenant that has never saved settings receives the documented defaults,
// persisted on first access so later reads are stable.

type ITenantSettingsUseCase interface {
	Get(ctx context.Context, tenantID string) (entities.TenantSettings, error)
	Update(ctx context.Context, tenantID string, input SettingsInput) (entities.TenantSettings, error)
}

type TenantSettingsUseCase struct {
	repo interfaces.ITenantSettingsRepository
}

var _ ITenantSettingsUseCase = (*TenantSettingsUseCase)(nil)

func NewTenantSettingsUseCase(repo interfaces.ITenantSettingsRepository) *TenantSettingsUseCase {
	return &TenantSettingsUseCase{repo: repo}
}

func (u *TenantSettingsUseCase) Get(ctx context.Context, tenantID string) (entities.TenantSettings, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.TenantSettings{}, ErrInvalidTenantID
	}

	settings, err := u.repo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return entities.TenantSettings{}, err
	}
	if settings.TenantID != "" {
		return settings, nil
	}

	settings = entities.NewTenantSettings(tenantID)
	now := time.Now().UTC()
	settings.CreatedAt = now
	settings.UpdatedAt = now
	return u.repo.Save(ctx, settings)
}

func (u *TenantSettingsUseCase) Update(ctx context.Context, tenantID string, input SettingsInput) (entities.TenantSettings, error) {
	settings, err := u.Get(ctx, tenantID)
	if err != nil {
		return entities.TenantSettings{}, err
	}

	if input.DefaultLaborRate != nil {
		settings.DefaultLaborRate = *input.DefaultLaborRate
	}
	if input.DefaultMachineRate != nil {
		settings.DefaultMachineRate = *input.DefaultMachineRate
	}
	if input.DefaultOverheadPercent != nil {
		settings.DefaultOverheadPercent = *input.DefaultOverheadPercent
	}
	if input.TargetMarginPercent != nil {
		settings.TargetMarginPercent = *input.TargetMarginPercent
	}
	settings.UpdatedAt = time.Now().UTC()

	return u.repo.Save(ctx, settings)
}
