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

const defaultActualsTableName = "actuals"

type actualsItem struct {
	TenantID string `dynamodbav:"tenant_id"`
	JobID    string `dynamodbav:"job_id"`
	ID       string `dynamodbav:"id"`

	LaborHours      string `dynamodbav:"labor_hours"`
	LaborRate       string `dynamodbav:"labor_rate"`
	MaterialCost    string `dynamodbav:"material_cost"`
	MachineHours    string `dynamodbav:"machine_hours"`
	MachineRate     string `dynamodbav:"machine_rate"`
	OverheadPercent string `dynamodbav:"overhead_percent"`

	Revenue   string `dynamodbav:"revenue"`
	TotalCost string `dynamodbav:"total_cost"`

	Notes     string `dynamodbav:"notes,omitempty"`
	EnteredBy string `dynamodbav:"entered_by,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ActualsDynamoRepository persists ActualsRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: job_id (string)
//
// Same key design as estimates: one actuals record per job, Save is an
// upsert.

type ActualsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActualsRepository = (*ActualsDynamoRepository)(nil)

func NewActualsDynamoRepository(ddb *dynamodb.Client) *ActualsDynamoRepository {
	return &ActualsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTUALS_TABLE", defaultActualsTableName),
	}
}

func (r *ActualsDynamoRepository) GetByJobID(ctx context.Context, tenantID, jobID string) (entities.ActualsRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"job_id":    &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ActualsRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ActualsRecord{}, nil
	}

	var it actualsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ActualsRecord{}, err
	}
	return fromActualsItem(it), nil
}

func (r *ActualsDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.ActualsRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.ActualsRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it actualsItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromActualsItem(it))
	}
	return records, nil
}

func (r *ActualsDynamoRepository) Save(ctx context.Context, a entities.ActualsRecord) (entities.ActualsRecord, error) {
	it := toActualsItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ActualsRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ActualsRecord{}, err
	}
	return a, nil
}

func toActualsItem(a entities.ActualsRecord) actualsItem {
	return actualsItem{
		TenantID:        a.TenantID,
		JobID:           a.JobID,
		ID:              a.ID,
		LaborHours:      decToString(a.LaborHours),
		LaborRate:       decToString(a.LaborRate),
		MaterialCost:    decToString(a.MaterialCost),
		MachineHours:    decToString(a.MachineHours),
		MachineRate:     decToString(a.MachineRate),
		OverheadPercent: decToString(a.OverheadPercent),
		Revenue:         decToString(a.Revenue),
		TotalCost:       decToString(a.TotalCost),
		Notes:           a.Notes,
		EnteredBy:       a.EnteredBy,
		CreatedAt:       timeToString(a.CreatedAt),
		UpdatedAt:       timeToString(a.UpdatedAt),
	}
}

func fromActualsItem(it actualsItem) entities.ActualsRecord {
	return entities.ActualsRecord{
		TenantID:        it.TenantID,
		JobID:           it.JobID,
		ID:              it.ID,
		LaborHours:      decFromString(it.LaborHours),
		LaborRate:       decFromString(it.LaborRate),
		MaterialCost:    decFromString(it.MaterialCost),
		MachineHours:    decFromString(it.MachineHours),
		MachineRate:     decFromString(it.MachineRate),
		OverheadPercent: decFromString(it.OverheadPercent),
		Revenue:         decFromString(it.Revenue),
		TotalCost:       decFromString(it.TotalCost),
		Notes:           it.Notes,
		EnteredBy:       it.EnteredBy,
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}
