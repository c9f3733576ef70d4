package interfaces

import (
	"context"
	"time"

	"finestra/internal/domain/entities"
)

// IFixedCostRepository abstracts DynamoDB persistence for FixedCost.
//
// GenerateCharge performs the rollover as one TransactWriteItems call:
// it puts the generated cost item and advances the template's
// next_payment_date to nextDate, conditioned on the template still
// holding the date the item was generated for. A retry after a partial
// failure therefore cannot double-generate.

type IFixedCostRepository interface {
	Create(ctx context.Context, fc entities.FixedCost) (entities.FixedCost, error)
	GetByID(ctx context.Context, id string) (entities.FixedCost, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.FixedCost, error)
	Update(ctx context.Context, fc entities.FixedCost) (entities.FixedCost, error)
	Delete(ctx context.Context, id string) error
	GenerateCharge(ctx context.Context, fc entities.FixedCost, item entities.CostItem, nextDate time.Time) (entities.FixedCost, error)
}
