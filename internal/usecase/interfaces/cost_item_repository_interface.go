package interfaces

import (
	"context"

	"finestra/internal/domain/entities"
)

// ICostItemRepository abstracts DynamoDB persistence for CostItem.
//
// CreateBatch writes every item in a single TransactWriteItems call:
// an installment plan either lands completely or not at all.

type ICostItemRepository interface {
	Create(ctx context.Context, item entities.CostItem) (entities.CostItem, error)
	CreateBatch(ctx context.Context, items []entities.CostItem) ([]entities.CostItem, error)
	GetByID(ctx context.Context, id string) (entities.CostItem, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.CostItem, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.CostItem, error)
	Update(ctx context.Context, item entities.CostItem) (entities.CostItem, error)
	Delete(ctx context.Context, id string) error
}
