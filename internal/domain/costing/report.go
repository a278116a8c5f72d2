package costing

import (
	"fmt"

	"metalmetrics/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Verdict is the three-way classification of a job's actual margin. Exact
// zero is its own state; it never collapses into Profit or Loss.
type Verdict string

const (
	VerdictProfit    Verdict = "Profit"
	VerdictLoss      Verdict = "Loss"
	VerdictBreakEven Verdict = "BreakEven"
)

// Thresholds are the policy constants for warning generation. They are
// parameters so callers can tune them, but DefaultThresholds matches the
// shipped behavior and is what every production path uses.
type Thresholds struct {
	// CategoryOveragePercent flags a category whose actual cost exceeded
	// its estimate by strictly more than this percent.
	CategoryOveragePercent decimal.Decimal
	// MarginDriftPercent flags a job whose margin percent moved by strictly
	// more than this between estimate and actuals, in either direction.
	MarginDriftPercent decimal.Decimal
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CategoryOveragePercent: decimal.NewFromInt(20),
		MarginDriftPercent:     decimal.NewFromInt(10),
	}
}

// JobProfitabilityReport compares a job's estimate against its actuals.
// It is constructed fresh on every request, never cached, never mutated
// after construction, and never persisted.
type JobProfitabilityReport struct {
	LaborVariance    VarianceDetail `json:"labor_variance"`
	MaterialVariance VarianceDetail `json:"material_variance"`
	MachineVariance  VarianceDetail `json:"machine_variance"`
	OverheadVariance VarianceDetail `json:"overhead_variance"`

	TotalEstimatedCost decimal.Decimal `json:"total_estimated_cost"`
	TotalActualCost    decimal.Decimal `json:"total_actual_cost"`
	QuotedPrice        decimal.Decimal `json:"quoted_price"`
	ActualRevenue      decimal.Decimal `json:"actual_revenue"`

	EstimatedMarginDollars decimal.Decimal `json:"estimated_margin_dollars"`
	EstimatedMarginPercent decimal.Decimal `json:"estimated_margin_percent"`
	ActualMarginDollars    decimal.Decimal `json:"actual_margin_dollars"`
	ActualMarginPercent    decimal.Decimal `json:"actual_margin_percent"`
	MarginDriftDollars     decimal.Decimal `json:"margin_drift_dollars"`
	MarginDriftPercent     decimal.Decimal `json:"margin_drift_percent"`

	OverallVerdict Verdict  `json:"overall_verdict"`
	Warnings       []string `json:"warnings"`
}

// Variance returns the report's variance detail for a category.
func (r JobProfitabilityReport) Variance(c CostCategory) VarianceDetail {
	switch c {
	case CategoryLabor:
		return r.LaborVariance
	case CategoryMaterial:
		return r.MaterialVariance
	case CategoryMachine:
		return r.MachineVariance
	default:
		return r.OverheadVariance
	}
}

// Calculate builds the profitability report for one job from its estimate
// and actuals, using the default warning thresholds.
//
// Totals are recomputed here from the raw inputs rather than trusted from
// the stored snapshots, so the report stays self-consistent even when a
// snapshot is stale.
func Calculate(estimate entities.CostEstimate, actuals entities.ActualsRecord, targetMarginPercent decimal.Decimal) JobProfitabilityReport {
	return CalculateWithThresholds(estimate, actuals, targetMarginPercent, DefaultThresholds())
}

// CalculateWithThresholds is Calculate with caller-supplied warning policy.
func CalculateWithThresholds(estimate entities.CostEstimate, actuals entities.ActualsRecord, targetMarginPercent decimal.Decimal, thresholds Thresholds) JobProfitabilityReport {
	est := EstimateInputs(estimate)
	act := ActualsInputs(actuals)

	report := JobProfitabilityReport{
		LaborVariance:    BuildVariance(est.LaborCost(), act.LaborCost()),
		MaterialVariance: BuildVariance(est.MaterialCost, act.MaterialCost),
		MachineVariance:  BuildVariance(est.MachineCost(), act.MachineCost()),
		// Each side's overhead uses its own subtotal and its own overhead
		// percent; estimate and actuals may legitimately differ (a rate
		// change mid-job).
		OverheadVariance: BuildVariance(est.Overhead(), act.Overhead()),

		TotalEstimatedCost: est.TotalCost(),
		TotalActualCost:    act.TotalCost(),
		QuotedPrice:        estimate.QuotePrice,
		ActualRevenue:      actuals.Revenue,
	}

	report.EstimatedMarginDollars = report.QuotedPrice.Sub(report.TotalEstimatedCost)
	report.EstimatedMarginPercent = MarginPercent(report.QuotedPrice, report.TotalEstimatedCost)

	report.ActualMarginDollars = report.ActualRevenue.Sub(report.TotalActualCost)
	report.ActualMarginPercent = MarginPercent(report.ActualRevenue, report.TotalActualCost)

	report.MarginDriftDollars = report.ActualMarginDollars.Sub(report.EstimatedMarginDollars)
	report.MarginDriftPercent = report.ActualMarginPercent.Sub(report.EstimatedMarginPercent)

	switch report.ActualMarginDollars.Sign() {
	case 1:
		report.OverallVerdict = VerdictProfit
	case -1:
		report.OverallVerdict = VerdictLoss
	default:
		report.OverallVerdict = VerdictBreakEven
	}

	report.Warnings = buildWarnings(report, targetMarginPercent, thresholds)
	return report
}

// buildWarnings appends warnings in fixed order: the four categories, the
// below-target check, then margin drift. Any subset may appear.
func buildWarnings(report JobProfitabilityReport, targetMarginPercent decimal.Decimal, thresholds Thresholds) []string {
	var warnings []string

	for _, category := range Categories {
		v := report.Variance(category)
		if v.VariancePercent.GreaterThan(thresholds.CategoryOveragePercent) {
			warnings = append(warnings, fmt.Sprintf("%s cost exceeded estimate by %s%%", category, v.VariancePercent.StringFixed(1)))
		}
	}

	if report.ActualMarginPercent.LessThan(targetMarginPercent) {
		warnings = append(warnings, fmt.Sprintf("Margin (%s%%) is below target (%s%%)",
			report.ActualMarginPercent.StringFixed(1), targetMarginPercent.StringFixed(1)))
	}

	if report.MarginDriftPercent.Abs().GreaterThan(thresholds.MarginDriftPercent) {
		warnings = append(warnings, "Significant margin drift detected")
	}

	return warnings
}
