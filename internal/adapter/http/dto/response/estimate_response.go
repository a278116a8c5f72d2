package response

import (
	"time"

	"metalmetrics/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type EstimateResponse struct {
	ID    string `json:"id"`
	JobID string `json:"job_id"`

	LaborHours      decimal.Decimal `json:"labor_hours"`
	LaborRate       decimal.Decimal `json:"labor_rate"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	MachineHours    decimal.Decimal `json:"machine_hours"`
	MachineRate     decimal.Decimal `json:"machine_rate"`
	OverheadPercent decimal.Decimal `json:"overhead_percent"`

	QuotePrice    decimal.Decimal `json:"quote_price"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	MarginPercent decimal.Decimal `json:"margin_percent"`

	AIGenerated bool   `json:"ai_generated"`
	CreatedBy   string `json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromCostEstimate omits the prompt snapshot on purpose: it is audit data,
// not part of the estimate surface.
func FromCostEstimate(e entities.CostEstimate) EstimateResponse {
	return EstimateResponse{
		ID:              e.ID,
		JobID:           e.JobID,
		LaborHours:      e.LaborHours,
		LaborRate:       e.LaborRate,
		MaterialCost:    e.MaterialCost,
		MachineHours:    e.MachineHours,
		MachineRate:     e.MachineRate,
		OverheadPercent: e.OverheadPercent,
		QuotePrice:      e.QuotePrice,
		TotalCost:       e.TotalCost,
		MarginPercent:   e.MarginPercent,
		AIGenerated:     e.AIGenerated,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
