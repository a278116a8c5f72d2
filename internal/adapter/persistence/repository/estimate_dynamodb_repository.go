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

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	TenantID string `dynamodbav:"tenant_id"`
	JobID    string `dynamodbav:"job_id"`
	ID       string `dynamodbav:"id"`

	LaborHours      string `dynamodbav:"labor_hours"`
	LaborRate       string `dynamodbav:"labor_rate"`
	MaterialCost    string `dynamodbav:"material_cost"`
	MachineHours    string `dynamodbav:"machine_hours"`
	MachineRate     string `dynamodbav:"machine_rate"`
	OverheadPercent string `dynamodbav:"overhead_percent"`

	QuotePrice    string `dynamodbav:"quote_price"`
	TotalCost     string `dynamodbav:"total_cost"`
	MarginPercent string `dynamodbav:"margin_percent"`

	AIGenerated      bool   `dynamodbav:"ai_generated"`
	AIPromptSnapshot string `dynamodbav:"ai_prompt_snapshot,omitempty"`
	CreatedBy        string `dynamodbav:"created_by,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists CostEstimate entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: job_id (string)
//
// Keying on job_id rather than the estimate id enforces one estimate per
// job at the table level: Save is a natural upsert and GetByJobID is a
// single key lookup.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) GetByJobID(ctx context.Context, tenantID, jobID string) (entities.CostEstimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"job_id":    &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostEstimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostEstimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.CostEstimate, error) {
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

	estimates := make([]entities.CostEstimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		estimates = append(estimates, fromEstimateItem(it))
	}
	return estimates, nil
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CostEstimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.CostEstimate) estimateItem {
	return estimateItem{
		TenantID:         e.TenantID,
		JobID:            e.JobID,
		ID:               e.ID,
		LaborHours:       decToString(e.LaborHours),
		LaborRate:        decToString(e.LaborRate),
		MaterialCost:     decToString(e.MaterialCost),
		MachineHours:     decToString(e.MachineHours),
		MachineRate:      decToString(e.MachineRate),
		OverheadPercent:  decToString(e.OverheadPercent),
		QuotePrice:       decToString(e.QuotePrice),
		TotalCost:        decToString(e.TotalCost),
		MarginPercent:    decToString(e.MarginPercent),
		AIGenerated:      e.AIGenerated,
		AIPromptSnapshot: e.AIPromptSnapshot,
		CreatedBy:        e.CreatedBy,
		CreatedAt:        timeToString(e.CreatedAt),
		UpdatedAt:        timeToString(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.CostEstimate {
	return entities.CostEstimate{
		TenantID:         it.TenantID,
		JobID:            it.JobID,
		ID:               it.ID,
		LaborHours:       decFromString(it.LaborHours),
		LaborRate:        decFromString(it.LaborRate),
		MaterialCost:     decFromString(it.MaterialCost),
		MachineHours:     decFromString(it.MachineHours),
		MachineRate:      decFromString(it.MachineRate),
		OverheadPercent:  decFromString(it.OverheadPercent),
		QuotePrice:       decFromString(it.QuotePrice),
		TotalCost:        decFromString(it.TotalCost),
		MarginPercent:    decFromString(it.MarginPercent),
		AIGenerated:      it.AIGenerated,
		AIPromptSnapshot: it.AIPromptSnapshot,
		CreatedBy:        it.CreatedBy,
		CreatedAt:        timeFromString(it.CreatedAt),
		UpdatedAt:        timeFromString(it.UpdatedAt),
	}
}
