package interfaces

import (
	"context"

	"metalmetrics/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for CostEstimate.
//
// The table is keyed (tenant_id, job_id), which guarantees at most one
// estimate per job by design. Save is create-or-replace: the caller has
// already recomputed the stored snapshots before handing the record over.

type IEstimateRepository interface {
	GetByJobID(ctx context.Context, tenantID, jobID string) (entities.CostEstimate, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.CostEstimate, error)
	Save(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error)
}
