package entities

import "github.com/shopspring/decimal"

// AIQuoteRequest describes a part to the external quote generator.
//
// Rates and overhead are passed through so the generator prices against the
// tenant's own figures; they come from TenantSettings unless overridden.
type AIQuoteRequest struct {
	MaterialType      string          `json:"material_type"`
	MaterialThickness string          `json:"material_thickness"`
	PartDimensions    string          `json:"part_dimensions"`
	SheetSize         string          `json:"sheet_size,omitempty"`
	Quantity          int             `json:"quantity"`
	Operations        []string        `json:"operations"`
	Complexity        string          `json:"complexity"`
	SpecialNotes      string          `json:"special_notes,omitempty"`
	LaborRate         decimal.Decimal `json:"labor_rate"`
	MachineRate       decimal.Decimal `json:"machine_rate"`
	OverheadPercent   decimal.Decimal `json:"overhead_percent"`
}

// AIQuoteSuggestion is the generator's candidate estimate. It is treated as
// ordinary estimate input: the same totaling applies, and no plausibility
// checks happen beyond what a manually entered estimate receives.
type AIQuoteSuggestion struct {
	LaborHours          decimal.Decimal `json:"labor_hours"`
	MaterialCost        decimal.Decimal `json:"material_cost"`
	MachineHours        decimal.Decimal `json:"machine_hours"`
	OverheadPercent     decimal.Decimal `json:"overhead_percent"`
	SuggestedQuotePrice decimal.Decimal `json:"suggested_quote_price"`
	Reasoning           string          `json:"reasoning"`
	Assumptions         []string        `json:"assumptions"`
	ConfidenceLevel     string          `json:"confidence_level"`
}
