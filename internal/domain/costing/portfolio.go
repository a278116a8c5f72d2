package costing

import (
	"sort"
	"time"

	"metalmetrics/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Portfolio aggregations fold a tenant's jobs into dashboard and reporting
// views. All of them are read-only pure functions: a job missing an estimate or actuals is
// simply excluded from aggregates that need it, and an empty job set yields
// empty/zero results. Totals are always recomputed from raw inputs, never
// read from stored snapshots.

// DashboardKPIs are the tenant-level headline figures.
type DashboardKPIs struct {
	TotalJobs            int             `json:"total_jobs"`
	JobsThisMonth        int             `json:"jobs_this_month"`
	AverageMarginPercent decimal.Decimal `json:"average_margin_percent"`
	JobsBelowTarget      int             `json:"jobs_below_target"`
	RevenueThisMonth     decimal.Decimal `json:"revenue_this_month"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	TargetMarginPercent  decimal.Decimal `json:"target_margin_percent"`
	InProgressCount      int             `json:"in_progress_count"`
	QuotedCount          int             `json:"quoted_count"`
	PipelineValue        decimal.Decimal `json:"pipeline_value"`
}

// CustomerProfitability is the revenue/cost rollup for one customer.
type CustomerProfitability struct {
	CustomerName  string          `json:"customer_name"`
	JobCount      int             `json:"job_count"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// VarianceDirection tags whether a category is, on average, under- or
// over-estimated across the portfolio.
type VarianceDirection string

const (
	DirectionUnderestimate VarianceDirection = "Underestimate"
	DirectionOverestimate  VarianceDirection = "Overestimate"
)

// CategoryVariance is the portfolio-wide variance trend for one category.
type CategoryVariance struct {
	Category               CostCategory      `json:"category"`
	AverageVariancePercent decimal.Decimal   `json:"average_variance_percent"`
	AverageVarianceDollars decimal.Decimal   `json:"average_variance_dollars"`
	Direction              VarianceDirection `json:"direction"`
	JobCount               int               `json:"job_count"`
}

// AtRiskJob is an in-progress job whose actual cost already exceeds its
// estimate by more than the threshold.
type AtRiskJob struct {
	JobID          string          `json:"job_id"`
	JobNumber      string          `json:"job_number"`
	CustomerName   string          `json:"customer_name"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
	ActualCost     decimal.Decimal `json:"actual_cost"`
	OveragePercent decimal.Decimal `json:"overage_percent"`
}

// JobSummary is one completed job's line in the reporting views: recomputed
// costs on both sides plus the realized margin.
type JobSummary struct {
	JobID               string          `json:"job_id"`
	JobNumber           string          `json:"job_number"`
	CustomerName        string          `json:"customer_name"`
	Status              string          `json:"status"`
	EstimatedCost       decimal.Decimal `json:"estimated_cost"`
	ActualCost          decimal.Decimal `json:"actual_cost"`
	QuotePrice          decimal.Decimal `json:"quote_price"`
	ActualRevenue       decimal.Decimal `json:"actual_revenue"`
	ActualMarginPercent decimal.Decimal `json:"actual_margin_percent"`
	IsProfitable        bool            `json:"is_profitable"`
	CompletedAt         time.Time       `json:"completed_at"`
}

// DefaultAtRiskThresholdPercent is the overage cutoff used when the caller
// does not supply one.
var DefaultAtRiskThresholdPercent = decimal.NewFromInt(10)

// DefaultJobSummaryLimit caps the recent-completions list when the caller
// asks for no explicit window or limit.
const DefaultJobSummaryLimit = 20

// BuildKPIs computes the dashboard KPI set over a tenant's jobs. The caller
// supplies now so month windows are deterministic; the calendar month is
// evaluated in UTC.
func BuildKPIs(jobs []entities.Job, targetMarginPercent decimal.Decimal, now time.Time) DashboardKPIs {
	monthStart := time.Date(now.UTC().Year(), now.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)

	kpis := DashboardKPIs{
		TotalJobs:           len(jobs),
		TargetMarginPercent: targetMarginPercent,
	}

	marginSum := decimal.Zero
	costed := 0

	for _, job := range jobs {
		if !job.CreatedAt.Before(monthStart) {
			kpis.JobsThisMonth++
		}

		switch job.Status {
		case entities.JobStatusInProgress:
			kpis.InProgressCount++
			if job.Estimate != nil {
				kpis.PipelineValue = kpis.PipelineValue.Add(job.Estimate.QuotePrice)
			}
		case entities.JobStatusQuoted:
			kpis.QuotedCount++
		}

		if job.Estimate == nil || job.Actuals == nil {
			continue
		}
		costed++

		actualCost := ActualsInputs(*job.Actuals).TotalCost()
		margin := MarginPercent(job.Actuals.Revenue, actualCost)
		marginSum = marginSum.Add(margin)

		if margin.LessThan(targetMarginPercent) {
			kpis.JobsBelowTarget++
		}

		if job.CompletedAt != nil && !job.CompletedAt.Before(monthStart) {
			kpis.RevenueThisMonth = kpis.RevenueThisMonth.Add(job.Actuals.Revenue)
		}
		kpis.TotalRevenue = kpis.TotalRevenue.Add(job.Actuals.Revenue)
	}

	kpis.AverageMarginPercent = SafeRatio(marginSum, decimal.NewFromInt(int64(costed)))
	return kpis
}

// BuildCustomerProfitability groups jobs with actuals by customer name and
// rolls up revenue, cost and margin, ordered by profit descending.
func BuildCustomerProfitability(jobs []entities.Job) []CustomerProfitability {
	byCustomer := make(map[string]*CustomerProfitability)
	var order []string

	for _, job := range jobs {
		if job.Actuals == nil {
			continue
		}

		group, ok := byCustomer[job.CustomerName]
		if !ok {
			group = &CustomerProfitability{CustomerName: job.CustomerName}
			byCustomer[job.CustomerName] = group
			order = append(order, job.CustomerName)
		}

		group.JobCount++
		group.TotalRevenue = group.TotalRevenue.Add(job.Actuals.Revenue)
		group.TotalCost = group.TotalCost.Add(ActualsInputs(*job.Actuals).TotalCost())
	}

	result := make([]CustomerProfitability, 0, len(order))
	for _, name := range order {
		group := byCustomer[name]
		group.Profit = group.TotalRevenue.Sub(group.TotalCost)
		group.MarginPercent = SafeRatio(group.Profit, group.TotalRevenue).Mul(hundred)
		result = append(result, *group)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Profit.GreaterThan(result[j].Profit)
	})
	return result
}

// BuildCategoryVariances averages per-job variance percent and dollars per
// category across jobs with both estimate and actuals. A job only
// contributes to a category when its estimated base there is positive; a
// category with no samples is omitted entirely.
func BuildCategoryVariances(jobs []entities.Job) []CategoryVariance {
	type sample struct {
		percentSum decimal.Decimal
		dollarSum  decimal.Decimal
		count      int
	}
	samples := make(map[CostCategory]*sample, len(Categories))
	for _, category := range Categories {
		samples[category] = &sample{}
	}

	add := func(category CostCategory, estimated, actual decimal.Decimal) {
		if !estimated.IsPositive() {
			return
		}
		v := BuildVariance(estimated, actual)
		s := samples[category]
		s.percentSum = s.percentSum.Add(v.VariancePercent)
		s.dollarSum = s.dollarSum.Add(v.VarianceDollars)
		s.count++
	}

	for _, job := range jobs {
		if job.Estimate == nil || job.Actuals == nil {
			continue
		}
		est := EstimateInputs(*job.Estimate)
		act := ActualsInputs(*job.Actuals)

		add(CategoryLabor, est.LaborCost(), act.LaborCost())
		add(CategoryMaterial, est.MaterialCost, act.MaterialCost)
		add(CategoryMachine, est.MachineCost(), act.MachineCost())
		add(CategoryOverhead, est.Overhead(), act.Overhead())
	}

	var result []CategoryVariance
	for _, category := range Categories {
		s := samples[category]
		if s.count == 0 {
			continue
		}
		count := decimal.NewFromInt(int64(s.count))
		avgPercent := s.percentSum.Div(count)

		direction := DirectionOverestimate
		if avgPercent.IsPositive() {
			direction = DirectionUnderestimate
		}

		result = append(result, CategoryVariance{
			Category:               category,
			AverageVariancePercent: avgPercent,
			AverageVarianceDollars: s.dollarSum.Div(count),
			Direction:              direction,
			JobCount:               s.count,
		})
	}
	return result
}

// BuildAtRiskJobs returns in-progress jobs whose recomputed actual cost
// exceeds the recomputed estimated cost by strictly more than
// thresholdPercent, ordered by overage descending. Jobs with a zero or
// negative estimated cost are excluded since no meaningful overage exists.
func BuildAtRiskJobs(jobs []entities.Job, thresholdPercent decimal.Decimal) []AtRiskJob {
	var atRisk []AtRiskJob

	for _, job := range jobs {
		if job.Status != entities.JobStatusInProgress || job.Estimate == nil || job.Actuals == nil {
			continue
		}

		estimatedCost := EstimateInputs(*job.Estimate).TotalCost()
		if !estimatedCost.IsPositive() {
			continue
		}
		actualCost := ActualsInputs(*job.Actuals).TotalCost()

		overage := SafeRatio(actualCost.Sub(estimatedCost), estimatedCost).Mul(hundred)
		if overage.GreaterThan(thresholdPercent) {
			atRisk = append(atRisk, AtRiskJob{
				JobID:          job.ID,
				JobNumber:      job.JobNumber,
				CustomerName:   job.CustomerName,
				EstimatedCost:  estimatedCost,
				ActualCost:     actualCost,
				OveragePercent: overage,
			})
		}
	}

	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].OveragePercent.GreaterThan(atRisk[j].OveragePercent)
	})
	return atRisk
}

// BuildJobSummaries lists completed jobs that carry both an estimate and
// actuals, ordered by CompletedAt descending. A nil from/to bound is open;
// supplied bounds are inclusive. A limit above zero truncates the result
// after ordering; zero or below means no cap.
//
// IsProfitable is strict: revenue exactly equal to cost is not profitable,
// matching the BreakEven verdict of the per-job report.
func BuildJobSummaries(jobs []entities.Job, from, to *time.Time, limit int) []JobSummary {
	var summaries []JobSummary

	for _, job := range jobs {
		if job.CompletedAt == nil || job.Estimate == nil || job.Actuals == nil {
			continue
		}
		if from != nil && job.CompletedAt.Before(*from) {
			continue
		}
		if to != nil && job.CompletedAt.After(*to) {
			continue
		}

		actualCost := ActualsInputs(*job.Actuals).TotalCost()
		summaries = append(summaries, JobSummary{
			JobID:               job.ID,
			JobNumber:           job.JobNumber,
			CustomerName:        job.CustomerName,
			Status:              string(job.Status),
			EstimatedCost:       EstimateInputs(*job.Estimate).TotalCost(),
			ActualCost:          actualCost,
			QuotePrice:          job.Estimate.QuotePrice,
			ActualRevenue:       job.Actuals.Revenue,
			ActualMarginPercent: MarginPercent(job.Actuals.Revenue, actualCost),
			IsProfitable:        job.Actuals.Revenue.GreaterThan(actualCost),
			CompletedAt:         *job.CompletedAt,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CompletedAt.After(summaries[j].CompletedAt)
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries
}
