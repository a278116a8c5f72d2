package response

import (
	"time"

	"metalmetrics/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ActualsResponse struct {
	ID    string `json:"id"`
	JobID string `json:"job_id"`

	LaborHours      decimal.Decimal `json:"labor_hours"`
	LaborRate       decimal.Decimal `json:"labor_rate"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	MachineHours    decimal.Decimal `json:"machine_hours"`
	MachineRate     decimal.Decimal `json:"machine_rate"`
	OverheadPercent decimal.Decimal `json:"overhead_percent"`

	Revenue   decimal.Decimal `json:"revenue"`
	TotalCost decimal.Decimal `json:"total_cost"`

	Notes     string `json:"notes,omitempty"`
	EnteredBy string `json:"entered_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromActualsRecord(a entities.ActualsRecord) ActualsResponse {
	return ActualsResponse{
		ID:              a.ID,
		JobID:           a.JobID,
		LaborHours:      a.LaborHours,
		LaborRate:       a.LaborRate,
		MaterialCost:    a.MaterialCost,
		MachineHours:    a.MachineHours,
		MachineRate:     a.MachineRate,
		OverheadPercent: a.OverheadPercent,
		Revenue:         a.Revenue,
		TotalCost:       a.TotalCost,
		Notes:           a.Notes,
		EnteredBy:       a.EnteredBy,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
