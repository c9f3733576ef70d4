package interfaces

import (
	"context"

	"finestra/internal/domain/entities"
)

// ICostCategoryRepository abstracts DynamoDB persistence for CostCategory.

type ICostCategoryRepository interface {
	Create(ctx context.Context, c entities.CostCategory) (entities.CostCategory, error)
	CreateBatch(ctx context.Context, categories []entities.CostCategory) ([]entities.CostCategory, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.CostCategory, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.CostCategory, error)
}
