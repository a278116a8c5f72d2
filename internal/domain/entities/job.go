package entities

import "time"

// JobStatus represents the lifecycle of a fabrication job.
//
// Domain notes:
//   - The lifecycle is strictly linear: Quoted -> InProgress -> Completed -> Invoiced.
//   - No state is ever skipped or re-entered; there are no backward transitions.
//   - CompletedAt is stamped exactly once, on the transition into Completed.

type JobStatus string

const (
	JobStatusQuoted     JobStatus = "quoted"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusInvoiced   JobStatus = "invoiced"
)

// Next returns the only status reachable from s, or empty when s is terminal.
func (s JobStatus) Next() JobStatus {
	switch s {
	case JobStatusQuoted:
		return JobStatusInProgress
	case JobStatusInProgress:
		return JobStatusCompleted
	case JobStatusCompleted:
		return JobStatusInvoiced
	default:
		return ""
	}
}

// CanTransitionTo reports whether moving from s to target is a legal step.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	next := s.Next()
	return next != "" && next == target
}

// Job is a fabrication job persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//
// Relationships:
//   - Estimate and Actuals are optional (0 or 1 each); both are keyed by the
//     job id and loaded separately by the repositories.

type Job struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	JobNumber    string     `json:"job_number"`
	CustomerName string     `json:"customer_name"`
	Description  string     `json:"description,omitempty"`
	Status       JobStatus  `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Estimate *CostEstimate  `json:"estimate,omitempty"`
	Actuals  *ActualsRecord `json:"actuals,omitempty"`
}
