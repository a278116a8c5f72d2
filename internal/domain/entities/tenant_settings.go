package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantSettings holds per-tenant costing defaults.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//
// Created lazily on first access with the defaults below. DefaultLaborRate,
// DefaultMachineRate and DefaultOverheadPercent seed new estimates and
// actuals; TargetMarginPercent is the benchmark for below-target warnings.

type TenantSettings struct {
	TenantID string `json:"tenant_id"`

	DefaultLaborRate       decimal.Decimal `json:"default_labor_rate"`
	DefaultMachineRate     decimal.Decimal `json:"default_machine_rate"`
	DefaultOverheadPercent decimal.Decimal `json:"default_overhead_percent"`
	TargetMarginPercent    decimal.Decimal `json:"target_margin_percent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTenantSettings returns the documented defaults for a tenant that has
// never saved settings: labor 75/h, machine 150/h, overhead 15%, target
// margin 20%.
func NewTenantSettings(tenantID string) TenantSettings {
	return TenantSettings{
		TenantID:               tenantID,
		DefaultLaborRate:       decimal.NewFromInt(75),
		DefaultMachineRate:     decimal.NewFromInt(150),
		DefaultOverheadPercent: decimal.NewFromInt(15),
		TargetMarginPercent:    decimal.NewFromInt(20),
	}
}
