package interfaces

import (
	"context"

	"finestra/internal/domain/entities"
)

// IRevenueItemRepository abstracts DynamoDB persistence for RevenueItem.

type IRevenueItemRepository interface {
	Create(ctx context.Context, item entities.RevenueItem) (entities.RevenueItem, error)
	CreateBatch(ctx context.Context, items []entities.RevenueItem) ([]entities.RevenueItem, error)
	GetByID(ctx context.Context, id string) (entities.RevenueItem, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.RevenueItem, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.RevenueItem, error)
	Update(ctx context.Context, item entities.RevenueItem) (entities.RevenueItem, error)
	Delete(ctx context.Context, id string) error
}
