package response

import (
	"time"

	"metalmetrics/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type SettingsResponse struct {
	TenantID string `json:"tenant_id"`

	DefaultLaborRate       decimal.Decimal `json:"default_labor_rate"`
	DefaultMachineRate     decimal.Decimal `json:"default_machine_rate"`
	DefaultOverheadPercent decimal.Decimal `json:"default_overhead_percent"`
	TargetMarginPercent    decimal.Decimal `json:"target_margin_percent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTenantSettings(s entities.TenantSettings) SettingsResponse {
	return SettingsResponse{
		TenantID:               s.TenantID,
		DefaultLaborRate:       s.DefaultLaborRate,
		DefaultMachineRate:     s.DefaultMachineRate,
		DefaultOverheadPercent: s.DefaultOverheadPercent,
		TargetMarginPercent:    s.TargetMarginPercent,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}
