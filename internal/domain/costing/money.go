// Package costing is the job costing and profitability engine: pure,
// stateless computation over immutable snapshots. It performs no I/O, holds
// no shared state, and is total over its domain: missing data and zero
// denominators yield defined zero results, never errors.
package costing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentOf returns amount * percent / 100.
func PercentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// SafeRatio returns numerator / denominator, or zero when the denominator is
// zero. Every percentage in the engine derived from a cost or revenue base
// that can legitimately be zero (a free job, an estimate never costed) goes
// through this guard: the answer is 0%, not an error.
func SafeRatio(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}
