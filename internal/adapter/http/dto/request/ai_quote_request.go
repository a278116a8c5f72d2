package request

import (
	"metalmetrics/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// GenerateQuoteRequest describes the part to the AI quote generator. Rates
// left at zero are filled from tenant settings before the generator runs.
type GenerateQuoteRequest struct {
	MaterialType      string          `json:"material_type" binding:"required"`
	MaterialThickness string          `json:"material_thickness" binding:"required"`
	PartDimensions    string          `json:"part_dimensions" binding:"required"`
	SheetSize         string          `json:"sheet_size"`
	Quantity          int             `json:"quantity" binding:"required"`
	Operations        []string        `json:"operations"`
	Complexity        string          `json:"complexity" binding:"required"`
	SpecialNotes      string          `json:"special_notes"`
	LaborRate         decimal.Decimal `json:"labor_rate"`
	MachineRate       decimal.Decimal `json:"machine_rate"`
	OverheadPercent   decimal.Decimal `json:"overhead_percent"`
}

func (r GenerateQuoteRequest) ToEntity() entities.AIQuoteRequest {
	return entities.AIQuoteRequest{
		MaterialType:      r.MaterialType,
		MaterialThickness: r.MaterialThickness,
		PartDimensions:    r.PartDimensions,
		SheetSize:         r.SheetSize,
		Quantity:          r.Quantity,
		Operations:        r.Operations,
		Complexity:        r.Complexity,
		SpecialNotes:      r.SpecialNotes,
		LaborRate:         r.LaborRate,
		MachineRate:       r.MachineRate,
		OverheadPercent:   r.OverheadPercent,
	}
}
