package request

import (
	"github.com/shopspring/decimal"
)

// SaveActualsRequest carries the raw actuals inputs, mirroring
// SaveEstimateRequest plus the invoiced revenue.
type SaveActualsRequest struct {
	LaborHours      decimal.Decimal  `json:"labor_hours"`
	LaborRate       *decimal.Decimal `json:"labor_rate"`
	MaterialCost    decimal.Decimal  `json:"material_cost"`
	MachineHours    decimal.Decimal  `json:"machine_hours"`
	MachineRate     *decimal.Decimal `json:"machine_rate"`
	OverheadPercent *decimal.Decimal `json:"overhead_percent"`
	Revenue         decimal.Decimal  `json:"revenue"`
	Notes           string           `json:"notes"`
	EnteredBy       string           `json:"entered_by"`
}
