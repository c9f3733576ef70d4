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
	defaultProjectsTableName = "projects"
	projectsUserIDIndex      = "user_id-index"
)

type projectItem struct {
	ID                  string `dynamodbav:"id"`
	UserID              string `dynamodbav:"user_id"`
	Name                string `dynamodbav:"name"`
	Client              string `dynamodbav:"client,omitempty"`
	StartDate           string `dynamodbav:"start_date,omitempty"`
	Status              string `dynamodbav:"status"`
	PlannedTotalRevenue string `dynamodbav:"planned_total_revenue"`
	PlannedTotalCost    string `dynamodbav:"planned_total_cost"`
	ActualTotalRevenue  string `dynamodbav:"actual_total_revenue"`
	ActualTotalCost     string `dynamodbav:"actual_total_cost"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		projects = append(projects, fromProjectItem(it))
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:                  p.ID,
		UserID:              p.UserID,
		Name:                p.Name,
		Client:              p.Client,
		StartDate:           dateToString(p.StartDate),
		Status:              string(p.Status),
		PlannedTotalRevenue: floatToString(p.PlannedTotalRevenue),
		PlannedTotalCost:    floatToString(p.PlannedTotalCost),
		ActualTotalRevenue:  floatToString(p.ActualTotalRevenue),
		ActualTotalCost:     floatToString(p.ActualTotalCost),
		CreatedAt:           timestampToString(p.CreatedAt),
		UpdatedAt:           timestampToString(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:                  it.ID,
		UserID:              it.UserID,
		Name:                it.Name,
		Client:              it.Client,
		StartDate:           dateFromString(it.StartDate),
		Status:              entities.ProjectStatus(it.Status),
		PlannedTotalRevenue: floatFromString(it.PlannedTotalRevenue),
		PlannedTotalCost:    floatFromString(it.PlannedTotalCost),
		ActualTotalRevenue:  floatFromString(it.ActualTotalRevenue),
		ActualTotalCost:     floatFromString(it.ActualTotalCost),
		CreatedAt:           timestampFromString(it.CreatedAt),
		UpdatedAt:           timestampFromString(it.UpdatedAt),
	}
}
