package request

import (
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest patches tenant defaults; nil fields keep the current
// value.
type UpdateSettingsRequest struct {
	DefaultLaborRate       *decimal.Decimal `json:"default_labor_rate"`
	DefaultMachineRate     *decimal.Decimal `json:"default_machine_rate"`
	DefaultOverheadPercent *decimal.Decimal `json:"default_overhead_percent"`
	TargetMarginPercent    *decimal.Decimal `json:"target_margin_percent"`
}
