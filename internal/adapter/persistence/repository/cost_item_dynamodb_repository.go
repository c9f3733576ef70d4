package repository

import (
	"context"
	"errors"

	"finestra/internal/domain/entities"
	"finestra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCostItemsTableName = "cost_items"
	costItemsUserIDIndex      = "user_id-index"
	costItemsProjectIDIndex   = "project_id-index"
)

type costItemRecord struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id"`
	ProjectID         string `dynamodbav:"project_id,omitempty"`
	Name              string `dynamodbav:"name"`
	Category          string `dynamodbav:"category"`
	Status            string `dynamodbav:"status"`
	PlannedAmount     string `dynamodbav:"planned_amount"`
	ActualAmount      string `dynamodbav:"actual_amount"`
	TransactionDate   string `dynamodbav:"transaction_date"`
	IsInstallment     bool   `dynamodbav:"is_installment"`
	InstallmentNumber int    `dynamodbav:"installment_number,omitempty"`
	TotalInstallments int    `dynamodbav:"total_installments,omitempty"`
	IsRecurring       bool   `dynamodbav:"is_recurring"`
	Frequency         string `dynamodbav:"frequency,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// CostItemDynamoRepository persists CostItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: project_id-index (PK: project_id)
//
// project_id is omitted entirely for company-level costs, so they never
// appear in the project_id-index.

type CostItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostItemRepository = (*CostItemDynamoRepository)(nil)

func NewCostItemDynamoRepository(ddb *dynamodb.Client) *CostItemDynamoRepository {
	return &CostItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COST_ITEMS_TABLE", defaultCostItemsTableName),
	}
}

func (r *CostItemDynamoRepository) Create(ctx context.Context, item entities.CostItem) (entities.CostItem, error) {
	av, err := attributevalue.MarshalMap(toCostItemRecord(item))
	if err != nil {
		return entities.CostItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CostItem{}, err
	}
	return item, nil
}

// CreateBatch writes an installment plan in a single TransactWriteItems
// call. DynamoDB applies the whole transaction or none of it, so a plan
// can never land half-written.
func (r *CostItemDynamoRepository) CreateBatch(ctx context.Context, items []entities.CostItem) ([]entities.CostItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	writes := make([]types.TransactWriteItem, 0, len(items))
	for _, item := range items {
		av, err := attributevalue.MarshalMap(toCostItemRecord(item))
		if err != nil {
			return nil, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CostItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.CostItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostItem{}, nil
	}

	var it costItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostItem{}, err
	}
	return fromCostItemRecord(it), nil
}

func (r *CostItemDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.CostItem, error) {
	return r.queryIndex(ctx, costItemsUserIDIndex, "user_id = :v", userID)
}

func (r *CostItemDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.CostItem, error) {
	return r.queryIndex(ctx, costItemsProjectIDIndex, "project_id = :v", projectID)
}

func (r *CostItemDynamoRepository) queryIndex(ctx context.Context, index, keyExpr, value string) ([]entities.CostItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyExpr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CostItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it costItemRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCostItemRecord(it))
	}
	return items, nil
}

func (r *CostItemDynamoRepository) Update(ctx context.Context, item entities.CostItem) (entities.CostItem, error) {
	av, err := attributevalue.MarshalMap(toCostItemRecord(item))
	if err != nil {
		return entities.CostItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CostItem{}, nil
		}
		return entities.CostItem{}, err
	}
	return item, nil
}

func (r *CostItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCostItemRecord(item entities.CostItem) costItemRecord {
	return costItemRecord{
		ID:                item.ID,
		UserID:            item.UserID,
		ProjectID:         item.ProjectID,
		Name:              item.Name,
		Category:          item.Category,
		Status:            string(item.Status),
		PlannedAmount:     floatToString(item.PlannedAmount),
		ActualAmount:      floatToString(item.ActualAmount),
		TransactionDate:   dateToString(item.TransactionDate),
		IsInstallment:     item.IsInstallment,
		InstallmentNumber: item.InstallmentNumber,
		TotalInstallments: item.TotalInstallments,
		IsRecurring:       item.IsRecurring,
		Frequency:         string(item.Frequency),
		CreatedAt:         timestampToString(item.CreatedAt),
		UpdatedAt:         timestampToString(item.UpdatedAt),
	}
}

func fromCostItemRecord(it costItemRecord) entities.CostItem {
	return entities.CostItem{
		ID:                it.ID,
		UserID:            it.UserID,
		ProjectID:         it.ProjectID,
		Name:              it.Name,
		Category:          it.Category,
		Status:            entities.CostItemStatus(it.Status),
		PlannedAmount:     floatFromString(it.PlannedAmount),
		ActualAmount:      floatFromString(it.ActualAmount),
		TransactionDate:   dateFromString(it.TransactionDate),
		IsInstallment:     it.IsInstallment,
		InstallmentNumber: it.InstallmentNumber,
		TotalInstallments: it.TotalInstallments,
		IsRecurring:       it.IsRecurring,
		Frequency:         entities.Frequency(it.Frequency),
		CreatedAt:         timestampFromString(it.CreatedAt),
		UpdatedAt:         timestampFromString(it.UpdatedAt),
	}
}
