package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActualsRecord is the post-work record of real cost and invoiced revenue.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: job_id (one actuals record per job by key design)
//
// The six raw inputs mirror CostEstimate exactly; the same totaling formula
// applies to both sides. TotalCost is a stored snapshot recomputed before
// every save, same rules as CostEstimate.TotalCost.

type ActualsRecord struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	JobID    string `json:"job_id"`

	LaborHours      decimal.Decimal `json:"labor_hours"`
	LaborRate       decimal.Decimal `json:"labor_rate"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	MachineHours    decimal.Decimal `json:"machine_hours"`
	MachineRate     decimal.Decimal `json:"machine_rate"`
	OverheadPercent decimal.Decimal `json:"overhead_percent"`

	Revenue decimal.Decimal `json:"revenue"`

	TotalCost decimal.Decimal `json:"total_cost"`

	Notes     string `json:"notes,omitempty"`
	EnteredBy string `json:"entered_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
