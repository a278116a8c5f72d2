package costing

import "github.com/shopspring/decimal"

// CostCategory names one of the four comparable cost buckets. It is a closed
// enumeration used both as a programmatic discriminant and, via String, as
// display text; warning matching must never depend on free-form strings.
type CostCategory string

const (
	CategoryLabor    CostCategory = "Labor"
	CategoryMaterial CostCategory = "Material"
	CategoryMachine  CostCategory = "Machine"
	CategoryOverhead CostCategory = "Overhead"
)

// Categories lists the four cost categories in report order.
var Categories = []CostCategory{CategoryLabor, CategoryMaterial, CategoryMachine, CategoryOverhead}

func (c CostCategory) String() string { return string(c) }

// VarianceDetail compares one estimated amount to one actual amount.
// Positive variance means the actual exceeded the estimate.
type VarianceDetail struct {
	EstimatedAmount decimal.Decimal `json:"estimated_amount"`
	ActualAmount    decimal.Decimal `json:"actual_amount"`
	VarianceDollars decimal.Decimal `json:"variance_dollars"`
	VariancePercent decimal.Decimal `json:"variance_percent"`
}

// BuildVariance computes the signed dollar and percent delta between an
// estimated and an actual amount. A zero estimated base yields 0%, guarded.
func BuildVariance(estimated, actual decimal.Decimal) VarianceDetail {
	diff := actual.Sub(estimated)
	return VarianceDetail{
		EstimatedAmount: estimated,
		ActualAmount:    actual,
		VarianceDollars: diff,
		VariancePercent: SafeRatio(diff, estimated).Mul(hundred),
	}
}
