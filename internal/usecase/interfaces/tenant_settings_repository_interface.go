package interfaces

import (
	"context"

	"metalmetrics/internal/domain/entities"
)

// ITenantSettingsRepository abstracts DynamoDB persistence for TenantSettings.

type ITenantSettingsRepository interface {
	GetByTenantID(ctx context.Context, tenantID string) (entities.TenantSettings, error)
	Save(ctx context.Context, s entities.TenantSettings) (entities.TenantSettings, error)
}
