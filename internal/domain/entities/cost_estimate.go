package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostEstimate is the pre-work cost projection and customer quote for a job.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: job_id (one estimate per job by key design)
//
// Monetary representation:
//   - All money and percent fields are exact decimals; binary floats never
//     enter the arithmetic path.
//   - TotalCost and MarginPercent are stored snapshots recomputed by the
//     costing package immediately before every save. They must stay
//     consistent with the six raw inputs; reporting recomputes independently
//     and never reads them.

type CostEstimate struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	JobID    string `json:"job_id"`

	LaborHours      decimal.Decimal `json:"labor_hours"`
	LaborRate       decimal.Decimal `json:"labor_rate"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	MachineHours    decimal.Decimal `json:"machine_hours"`
	MachineRate     decimal.Decimal `json:"machine_rate"`
	OverheadPercent decimal.Decimal `json:"overhead_percent"`

	QuotePrice decimal.Decimal `json:"quote_price"`

	TotalCost     decimal.Decimal `json:"total_cost"`
	MarginPercent decimal.Decimal `json:"margin_percent"`

	AIGenerated      bool   `json:"ai_generated"`
	AIPromptSnapshot string `json:"ai_prompt_snapshot,omitempty"`
	CreatedBy        string `json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
