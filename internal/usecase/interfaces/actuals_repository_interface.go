package interfaces

import (
	"context"

	"metalmetrics/internal/domain/entities"
)

// IActualsRepository abstracts DynamoDB persistence for ActualsRecord.
// Same key design and save contract as IEstimateRepository.

type IActualsRepository interface {
	GetByJobID(ctx context.Context, tenantID, jobID string) (entities.ActualsRecord, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.ActualsRecord, error)
	Save(ctx context.Context, a entities.ActualsRecord) (entities.ActualsRecord, error)
}
