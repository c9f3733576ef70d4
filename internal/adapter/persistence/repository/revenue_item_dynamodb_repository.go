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
	defaultRevenueItemsTableName = "revenue_items"
	revenueItemsUserIDIndex      = "user_id-index"
	revenueItemsProjectIDIndex   = "project_id-index"
)

type revenueItemRecord struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id"`
	ProjectID         string `dynamodbav:"project_id"`
	Name              string `dynamodbav:"name"`
	PlannedAmount     string `dynamodbav:"planned_amount"`
	ReceivedAmount    string `dynamodbav:"received_amount"`
	TransactionDate   string `dynamodbav:"transaction_date"`
	IsInstallment     bool   `dynamodbav:"is_installment"`
	InstallmentNumber int    `dynamodbav:"installment_number,omitempty"`
	TotalInstallments int    `dynamodbav:"total_installments,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// RevenueItemDynamoRepository persists RevenueItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: project_id-index (PK: project_id)

type RevenueItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRevenueItemRepository = (*RevenueItemDynamoRepository)(nil)

func NewRevenueItemDynamoRepository(ddb *dynamodb.Client) *RevenueItemDynamoRepository {
	return &RevenueItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVENUE_ITEMS_TABLE", defaultRevenueItemsTableName),
	}
}

func (r *RevenueItemDynamoRepository) Create(ctx context.Context, item entities.RevenueItem) (entities.RevenueItem, error) {
	av, err := attributevalue.MarshalMap(toRevenueItemRecord(item))
	if err != nil {
		return entities.RevenueItem{}, err
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
		return entities.RevenueItem{}, err
	}
	return item, nil
}

// CreateBatch writes a receivable installment plan in a single
// TransactWriteItems call, all or nothing.
func (r *RevenueItemDynamoRepository) CreateBatch(ctx context.Context, items []entities.RevenueItem) ([]entities.RevenueItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	writes := make([]types.TransactWriteItem, 0, len(items))
	for _, item := range items {
		av, err := attributevalue.MarshalMap(toRevenueItemRecord(item))
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

func (r *RevenueItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.RevenueItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RevenueItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.RevenueItem{}, nil
	}

	var it revenueItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RevenueItem{}, err
	}
	return fromRevenueItemRecord(it), nil
}

func (r *RevenueItemDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.RevenueItem, error) {
	return r.queryIndex(ctx, revenueItemsUserIDIndex, "user_id = :v", userID)
}

func (r *RevenueItemDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.RevenueItem, error) {
	return r.queryIndex(ctx, revenueItemsProjectIDIndex, "project_id = :v", projectID)
}

func (r *RevenueItemDynamoRepository) queryIndex(ctx context.Context, index, keyExpr, value string) ([]entities.RevenueItem, error) {
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

	items := make([]entities.RevenueItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it revenueItemRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRevenueItemRecord(it))
	}
	return items, nil
}

func (r *RevenueItemDynamoRepository) Update(ctx context.Context, item entities.RevenueItem) (entities.RevenueItem, error) {
	av, err := attributevalue.MarshalMap(toRevenueItemRecord(item))
	if err != nil {
		return entities.RevenueItem{}, err
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
			return entities.RevenueItem{}, nil
		}
		return entities.RevenueItem{}, err
	}
	return item, nil
}

func (r *RevenueItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toRevenueItemRecord(item entities.RevenueItem) revenueItemRecord {
	return revenueItemRecord{
		ID:                item.ID,
		UserID:            item.UserID,
		ProjectID:         item.ProjectID,
		Name:              item.Name,
		PlannedAmount:     floatToString(item.PlannedAmount),
		ReceivedAmount:    floatToString(item.ReceivedAmount),
		TransactionDate:   dateToString(item.TransactionDate),
		IsInstallment:     item.IsInstallment,
		InstallmentNumber: item.InstallmentNumber,
		TotalInstallments: item.TotalInstallments,
		CreatedAt:         timestampToString(item.CreatedAt),
		UpdatedAt:         timestampToString(item.UpdatedAt),
	}
}

func fromRevenueItemRecord(it revenueItemRecord) entities.RevenueItem {
	return entities.RevenueItem{
		ID:                it.ID,
		UserID:            it.UserID,
		ProjectID:         it.ProjectID,
		Name:              it.Name,
		PlannedAmount:     floatFromString(it.PlannedAmount),
		ReceivedAmount:    floatFromString(it.ReceivedAmount),
		TransactionDate:   dateFromString(it.TransactionDate),
		IsInstallment:     it.IsInstallment,
		InstallmentNumber: it.InstallmentNumber,
		TotalInstallments: it.TotalInstallments,
		CreatedAt:         timestampFromString(it.CreatedAt),
		UpdatedAt:         timestampFromString(it.UpdatedAt),
	}
}
