package repository

import (
	"context"

	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTenantSettingsTableName = "tenant_settings"

type tenantSettingsItem struct {
	TenantID string `dynamodbav:"tenant_id"`

	DefaultLaborRate       string `dynamodbav:"default_labor_rate"`
	DefaultMachineRate     string `dynamodbav:"default_machine_rate"`
	DefaultOverheadPercent string `dynamodbav:"default_overhead_percent"`
	TargetMarginPercent    string `dynamodbav:"target_margin_percent"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TenantSettingsDynamoRepository persists TenantSettings in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//
// One item per tenant; Save is an upsert.

type TenantSettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITenantSettingsRepository = (*TenantSettingsDynamoRepository)(nil)

func NewTenantSettingsDynamoRepository(ddb *dynamodb.Client) *TenantSettingsDynamoRepository {
	return &TenantSettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANT_SETTINGS_TABLE", defaultTenantSettingsTableName),
	}
}

func (r *TenantSettingsDynamoRepository) GetByTenantID(ctx context.Context, tenantID string) (entities.TenantSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TenantSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.TenantSettings{}, nil
	}

	var it tenantSettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TenantSettings{}, err
	}
	return fromTenantSettingsItem(it), nil
}

func (r *TenantSettingsDynamoRepository) Save(ctx context.Context, s entities.TenantSettings) (entities.TenantSettings, error) {
	it := toTenantSettingsItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TenantSettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.TenantSettings{}, err
	}
	return s, nil
}

func toTenantSettingsItem(s entities.TenantSettings) tenantSettingsItem {
	return tenantSettingsItem{
		TenantID:               s.TenantID,
		DefaultLaborRate:       decToString(s.DefaultLaborRate),
		DefaultMachineRate:     decToString(s.DefaultMachineRate),
		DefaultOverheadPercent: decToString(s.DefaultOverheadPercent),
		TargetMarginPercent:    decToString(s.TargetMarginPercent),
		CreatedAt:              timeToString(s.CreatedAt),
		UpdatedAt:              timeToString(s.UpdatedAt),
	}
}

func fromTenantSettingsItem(it tenantSettingsItem) entities.TenantSettings {
	return entities.TenantSettings{
		TenantID:               it.TenantID,
		DefaultLaborRate:       decFromString(it.DefaultLaborRate),
		DefaultMachineRate:     decFromString(it.DefaultMachineRate),
		DefaultOverheadPercent: decFromString(it.DefaultOverheadPercent),
		TargetMarginPercent:    decFromString(it.TargetMarginPercent),
		CreatedAt:              timeFromString(it.CreatedAt),
		UpdatedAt:              timeFromString(it.UpdatedAt),
	}
}
