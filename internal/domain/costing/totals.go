package costing

import (
	"metalmetrics/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CostInputs are the six raw figures a cost total is built from. The same
// shape and the same formula apply whether the figures come from an estimate
// or an actuals record; there is no asymmetry between quoting math and
// actualizing math.
type CostInputs struct {
	LaborHours      decimal.Decimal
	LaborRate       decimal.Decimal
	MaterialCost    decimal.Decimal
	MachineHours    decimal.Decimal
	MachineRate     decimal.Decimal
	OverheadPercent decimal.Decimal
}

func (in CostInputs) LaborCost() decimal.Decimal {
	return in.LaborHours.Mul(in.LaborRate)
}

func (in CostInputs) MachineCost() decimal.Decimal {
	return in.MachineHours.Mul(in.MachineRate)
}

func (in CostInputs) Subtotal() decimal.Decimal {
	return in.LaborCost().Add(in.MaterialCost).Add(in.MachineCost())
}

func (in CostInputs) Overhead() decimal.Decimal {
	return PercentOf(in.Subtotal(), in.OverheadPercent)
}

func (in CostInputs) TotalCost() decimal.Decimal {
	return in.Subtotal().Add(in.Overhead())
}

// MarginPercent returns (price - cost) / price * 100, 0 when price is zero.
func MarginPercent(price, cost decimal.Decimal) decimal.Decimal {
	return SafeRatio(price.Sub(cost), price).Mul(hundred)
}

// EstimateInputs extracts the raw cost inputs from an estimate.
func EstimateInputs(e entities.CostEstimate) CostInputs {
	return CostInputs{
		LaborHours:      e.LaborHours,
		LaborRate:       e.LaborRate,
		MaterialCost:    e.MaterialCost,
		MachineHours:    e.MachineHours,
		MachineRate:     e.MachineRate,
		OverheadPercent: e.OverheadPercent,
	}
}

// ActualsInputs extracts the raw cost inputs from an actuals record.
func ActualsInputs(a entities.ActualsRecord) CostInputs {
	return CostInputs{
		LaborHours:      a.LaborHours,
		LaborRate:       a.LaborRate,
		MaterialCost:    a.MaterialCost,
		MachineHours:    a.MachineHours,
		MachineRate:     a.MachineRate,
		OverheadPercent: a.OverheadPercent,
	}
}

// RecalculateEstimate overwrites the estimate's stored TotalCost and
// MarginPercent snapshots from its raw inputs. Callers must run this after
// any input mutation and before persisting; the snapshots are never derived
// lazily at read time.
func RecalculateEstimate(e *entities.CostEstimate) {
	e.TotalCost = EstimateInputs(*e).TotalCost()
	e.MarginPercent = MarginPercent(e.QuotePrice, e.TotalCost)
}

// RecalculateActuals overwrites the actuals record's stored TotalCost
// snapshot from its raw inputs. Same save-time contract as
// RecalculateEstimate.
func RecalculateActuals(a *entities.ActualsRecord) {
	a.TotalCost = ActualsInputs(*a).TotalCost()
}
