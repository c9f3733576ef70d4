package repository

import (
	"context"
	"errors"
	"time"

	"finestra/internal/domain/entities"
	"finestra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFixedCostsTableName = "fixed_costs"
	fixedCostsUserIDIndex      = "user_id-index"
)

// ErrChargeAlreadyGenerated is returned when the rollover transaction
// finds the template's next_payment_date already moved past the date the
// charge was generated for. It means a concurrent or retried call won.
var ErrChargeAlreadyGenerated = errors.New("charge already generated for this period")

type fixedCostRecord struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	Name            string `dynamodbav:"name"`
	Category        string `dynamodbav:"category"`
	Amount          string `dynamodbav:"amount"`
	Frequency       string `dynamodbav:"frequency"`
	NextPaymentDate string `dynamodbav:"next_payment_date"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// FixedCostDynamoRepository persists FixedCost templates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// GenerateCharge also writes to the cost items table, so the repository
// carries both table names.

type FixedCostDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	costTableName string
}

var _ interfaces.IFixedCostRepository = (*FixedCostDynamoRepository)(nil)

func NewFixedCostDynamoRepository(ddb *dynamodb.Client) *FixedCostDynamoRepository {
	return &FixedCostDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("FIXED_COSTS_TABLE", defaultFixedCostsTableName),
		costTableName: getenvDefault("COST_ITEMS_TABLE", defaultCostItemsTableName),
	}
}

func (r *FixedCostDynamoRepository) Create(ctx context.Context, fc entities.FixedCost) (entities.FixedCost, error) {
	av, err := attributevalue.MarshalMap(toFixedCostRecord(fc))
	if err != nil {
		return entities.FixedCost{}, err
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
		return entities.FixedCost{}, err
	}
	return fc, nil
}

func (r *FixedCostDynamoRepository) GetByID(ctx context.Context, id string) (entities.FixedCost, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FixedCost{}, err
	}
	if len(out.Item) == 0 {
		return entities.FixedCost{}, nil
	}

	var it fixedCostRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FixedCost{}, err
	}
	return fromFixedCostRecord(it), nil
}

func (r *FixedCostDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.FixedCost, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(fixedCostsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	templates := make([]entities.FixedCost, 0, len(out.Items))
	for _, raw := range out.Items {
		var it fixedCostRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		templates = append(templates, fromFixedCostRecord(it))
	}
	return templates, nil
}

func (r *FixedCostDynamoRepository) Update(ctx context.Context, fc entities.FixedCost) (entities.FixedCost, error) {
	av, err := attributevalue.MarshalMap(toFixedCostRecord(fc))
	if err != nil {
		return entities.FixedCost{}, err
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
			return entities.FixedCost{}, nil
		}
		return entities.FixedCost{}, err
	}
	return fc, nil
}

func (r *FixedCostDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// GenerateCharge performs the monthly rollover as one transaction: it
// puts the generated cost item and advances the template's
// next_payment_date to nextDate. The update is conditioned on the
// template still holding the date the item was generated for, so a retry
// after a timeout cannot produce a duplicate charge.
func (r *FixedCostDynamoRepository) GenerateCharge(ctx context.Context, fc entities.FixedCost, item entities.CostItem, nextDate time.Time) (entities.FixedCost, error) {
	itemAV, err := attributevalue.MarshalMap(toCostItemRecord(item))
	if err != nil {
		return entities.FixedCost{}, err
	}

	now := time.Now().UTC()
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.costTableName),
					Item:                itemAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: fc.ID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #next = :prev"),
					UpdateExpression:    aws.String("SET #next = :next, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#next":       "next_payment_date",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":prev":       &types.AttributeValueMemberS{Value: dateToString(fc.NextPaymentDate)},
						":next":       &types.AttributeValueMemberS{Value: dateToString(nextDate)},
						":updated_at": &types.AttributeValueMemberS{Value: timestampToString(now)},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.FixedCost{}, ErrChargeAlreadyGenerated
				}
			}
		}
		return entities.FixedCost{}, err
	}

	updated := fc
	updated.NextPaymentDate = nextDate
	updated.UpdatedAt = now
	return updated, nil
}

func toFixedCostRecord(fc entities.FixedCost) fixedCostRecord {
	return fixedCostRecord{
		ID:              fc.ID,
		UserID:          fc.UserID,
		Name:            fc.Name,
		Category:        fc.Category,
		Amount:          floatToString(fc.Amount),
		Frequency:       string(fc.Frequency),
		NextPaymentDate: dateToString(fc.NextPaymentDate),
		CreatedAt:       timestampToString(fc.CreatedAt),
		UpdatedAt:       timestampToString(fc.UpdatedAt),
	}
}

func fromFixedCostRecord(it fixedCostRecord) entities.FixedCost {
	return entities.FixedCost{
		ID:              it.ID,
		UserID:          it.UserID,
		Name:            it.Name,
		Category:        it.Category,
		Amount:          floatFromString(it.Amount),
		Frequency:       entities.Frequency(it.Frequency),
		NextPaymentDate: dateFromString(it.NextPaymentDate),
		CreatedAt:       timestampFromString(it.CreatedAt),
		UpdatedAt:       timestampFromString(it.UpdatedAt),
	}
}
