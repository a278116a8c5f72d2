package request

import (
	"github.com/shopspring/decimal"
)

// SaveEstimateRequest carries the raw estimate inputs. Rate and overhead
// fields are pointers: absent means "use the tenant default", zero means an
// explicit zero.
type SaveEstimateRequest struct {
	LaborHours      decimal.Decimal  `json:"labor_hours"`
	LaborRate       *decimal.Decimal `json:"labor_rate"`
	MaterialCost    decimal.Decimal  `json:"material_cost"`
	MachineHours    decimal.Decimal  `json:"machine_hours"`
	MachineRate     *decimal.Decimal `json:"machine_rate"`
	OverheadPercent *decimal.Decimal `json:"overhead_percent"`
	QuotePrice      decimal.Decimal  `json:"quote_price"`
	CreatedBy       string           `json:"created_by"`
}
