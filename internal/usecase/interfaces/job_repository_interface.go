package interfaces

import (
	"context"

	"metalmetrics/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Every call is scoped to one tenant by parameter; no ambient tenant state
// exists anywhere in the service. Missing records come back as zero values,
// not errors.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Job, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
}
