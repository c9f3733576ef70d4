package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"finestra/internal/domain/entities"
	"finestra/internal/domain/finance"
	"finestra/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFixedCostNotFound  = errors.New("fixed cost not found")
	ErrInvalidFixedCostID = errors.New("invalid fixed cost id")
	ErrMissingNextPayment = errors.New("next payment date is required")
)

// CreateFixedCostInput carries the fields of a new recurring-cost
// template. Frequency is implied: only monthly exists.
type CreateFixedCostInput struct {
	Name            string
	Category        string
	Amount          float64
	NextPaymentDate time.Time
}

// IFixedCostUseCase exposes recurring-cost template operations.
//
// GenerateCharge is the rollover: it emits one concrete pending CostItem
// dated at the template's NextPaymentDate and advances that date by one
// calendar month, both inside a single store transaction.

type IFixedCostUseCase interface {
	Create(ctx context.Context, userID string, in CreateFixedCostInput) (entities.FixedCost, error)
	GetByID(ctx context.Context, userID, id string) (entities.FixedCost, error)
	List(ctx context.Context, userID string) ([]entities.FixedCost, error)
	Update(ctx context.Context, userID, id string, in CreateFixedCostInput) (entities.FixedCost, error)
	Delete(ctx context.Context, userID, id string) error
	GenerateCharge(ctx context.Context, userID, id string) (entities.CostItem, entities.FixedCost, error)
}

type FixedCostUseCase struct {
	repo interfaces.IFixedCostRepository
}

var _ IFixedCostUseCase = (*FixedCostUseCase)(nil)

func NewFixedCostUseCase(repo interfaces.IFixedCostRepository) *FixedCostUseCase {
	return &FixedCostUseCase{repo: repo}
}

func (u *FixedCostUseCase) Create(ctx context.Context, userID string, in CreateFixedCostInput) (entities.FixedCost, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.FixedCost{}, ErrInvalidUserID
	}
	if err := validateFixedCostInput(in); err != nil {
		return entities.FixedCost{}, err
	}

	now := time.Now().UTC()
	fc := entities.FixedCost{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            strings.TrimSpace(in.Name),
		Category:        strings.TrimSpace(in.Category),
		Amount:          in.Amount,
		Frequency:       entities.FrequencyMonthly,
		NextPaymentDate: finance.DateOnly(in.NextPaymentDate),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, fc)
}

func (u *FixedCostUseCase) GetByID(ctx context.Context, userID, id string) (entities.FixedCost, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *FixedCostUseCase) List(ctx context.Context, userID string) ([]entities.FixedCost, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *FixedCostUseCase) Update(ctx context.Context, userID, id string, in CreateFixedCostInput) (entities.FixedCost, error) {
	fc, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.FixedCost{}, err
	}
	if err := validateFixedCostInput(in); err != nil {
		return entities.FixedCost{}, err
	}

	fc.Name = strings.TrimSpace(in.Name)
	fc.Category = strings.TrimSpace(in.Category)
	fc.Amount = in.Amount
	fc.NextPaymentDate = finance.DateOnly(in.NextPaymentDate)
	fc.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, fc)
	if err != nil {
		return entities.FixedCost{}, err
	}
	if updated.ID == "" {
		// Deleted between the read and the conditional write.
		return entities.FixedCost{}, ErrFixedCostNotFound
	}
	return updated, nil
}

func (u *FixedCostUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *FixedCostUseCase) GenerateCharge(ctx context.Context, userID, id string) (entities.CostItem, entities.FixedCost, error) {
	fc, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.CostItem{}, entities.FixedCost{}, err
	}

	now := time.Now().UTC()
	item := entities.CostItem{
		ID:              uuid.NewString(),
		UserID:          fc.UserID,
		Name:            fc.Name,
		Category:        fc.Category,
		Status:          entities.CostItemStatusPendente,
		PlannedAmount:   fc.Amount,
		ActualAmount:    0,
		TransactionDate: finance.DateOnly(fc.NextPaymentDate),
		IsRecurring:     true,
		Frequency:       entities.FrequencyMonthly,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	next := finance.NextOccurrence(fc)

	log.Printf("[fixedcost][usecase] generate start fixed_cost_id=%s due=%s next=%s",
		fc.ID, item.TransactionDate.Format(time.DateOnly), next.Format(time.DateOnly))

	updated, err := u.repo.GenerateCharge(ctx, fc, item, next)
	if err != nil {
		log.Printf("[fixedcost][usecase] generate failed fixed_cost_id=%s err=%v", fc.ID, err)
		return entities.CostItem{}, entities.FixedCost{}, err
	}
	return item, updated, nil
}

func (u *FixedCostUseCase) getOwned(ctx context.Context, userID, id string) (entities.FixedCost, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.FixedCost{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FixedCost{}, ErrInvalidFixedCostID
	}

	fc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FixedCost{}, err
	}
	if fc.ID == "" || fc.UserID != userID {
		return entities.FixedCost{}, ErrFixedCostNotFound
	}
	return fc, nil
}

func validateFixedCostInput(in CreateFixedCostInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidItemName
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrInvalidCategory
	}
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if in.NextPaymentDate.IsZero() {
		return ErrMissingNextPayment
	}
	return nil
}
