package repository

import (
	"context"

	"finestra/internal/domain/entities"
	"finestra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCostCategoriesTableName = "cost_categories"
	costCategoriesUserIDIndex      = "user_id-index"
)

type costCategoryRecord struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CostCategoryDynamoRepository persists CostCategory entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type CostCategoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostCategoryRepository = (*CostCategoryDynamoRepository)(nil)

func NewCostCategoryDynamoRepository(ddb *dynamodb.Client) *CostCategoryDynamoRepository {
	return &CostCategoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COST_CATEGORIES_TABLE", defaultCostCategoriesTableName),
	}
}

func (r *CostCategoryDynamoRepository) Create(ctx context.Context, c entities.CostCategory) (entities.CostCategory, error) {
	av, err := attributevalue.MarshalMap(toCostCategoryRecord(c))
	if err != nil {
		return entities.CostCategory{}, err
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
		return entities.CostCategory{}, err
	}
	return c, nil
}

// CreateBatch writes the default category seed in a single
// TransactWriteItems call, so a user either gets the full set or none.
func (r *CostCategoryDynamoRepository) CreateBatch(ctx context.Context, categories []entities.CostCategory) ([]entities.CostCategory, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	writes := make([]types.TransactWriteItem, 0, len(categories))
	for _, c := range categories {
		av, err := attributevalue.MarshalMap(toCostCategoryRecord(c))
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
	return categories, nil
}

func (r *CostCategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.CostCategory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostCategory{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostCategory{}, nil
	}

	var it costCategoryRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostCategory{}, err
	}
	return fromCostCategoryRecord(it), nil
}

func (r *CostCategoryDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.CostCategory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(costCategoriesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	categories := make([]entities.CostCategory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it costCategoryRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		categories = append(categories, fromCostCategoryRecord(it))
	}
	return categories, nil
}

func (r *CostCategoryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCostCategoryRecord(c entities.CostCategory) costCategoryRecord {
	return costCategoryRecord{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		CreatedAt: timestampToString(c.CreatedAt),
	}
}

func fromCostCategoryRecord(it costCategoryRecord) entities.CostCategory {
	return entities.CostCategory{
		ID:        it.ID,
		UserID:    it.UserID,
		Name:      it.Name,
		CreatedAt: timestampFromString(it.CreatedAt),
	}
}
