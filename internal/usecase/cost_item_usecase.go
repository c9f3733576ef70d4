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
	ErrCostItemNotFound       = errors.New("cost item not found")
	ErrInvalidCostItemID      = errors.New("invalid cost item id")
	ErrInvalidItemName        = errors.New("invalid item name")
	ErrInvalidCategory        = errors.New("category is required")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrMissingTransactionDate = errors.New("transaction date is required")
	ErrConflictingRecurrence  = errors.New("cost item cannot be both installment and recurring")
)

// CreateCostItemInput carries the fields of a new payable. Installments
// >= 2 turns the create into an installment plan: the planned amount is
// split and one item per installment is persisted atomically.
type CreateCostItemInput struct {
	ProjectID       string // empty means a company-level cost
	Name            string
	Category        string
	PlannedAmount   float64
	TransactionDate time.Time
	IsRecurring     bool
	Installments    int
}

// UpdateCostItemInput carries the editable fields of an existing payable.
type UpdateCostItemInput struct {
	Name            string
	Category        string
	PlannedAmount   float64
	TransactionDate time.Time
}

// ICostItemUseCase exposes payable operations, all scoped to the calling
// user.

type ICostItemUseCase interface {
	Create(ctx context.Context, userID string, in CreateCostItemInput) ([]entities.CostItem, error)
	GetByID(ctx context.Context, userID, id string) (entities.CostItem, error)
	List(ctx context.Context, userID string) ([]entities.CostItem, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]entities.CostItem, error)
	Update(ctx context.Context, userID, id string, in UpdateCostItemInput) (entities.CostItem, error)
	MarkPaid(ctx context.Context, userID, id string, amount float64) (entities.CostItem, error)
	Delete(ctx context.Context, userID, id string) error
}

type CostItemUseCase struct {
	repo        interfaces.ICostItemRepository
	projectRepo interfaces.IProjectRepository
}

var _ ICostItemUseCase = (*CostItemUseCase)(nil)

func NewCostItemUseCase(repo interfaces.ICostItemRepository, projectRepo interfaces.IProjectRepository) *CostItemUseCase {
	return &CostItemUseCase{repo: repo, projectRepo: projectRepo}
}

func (u *CostItemUseCase) Create(ctx context.Context, userID string, in CreateCostItemInput) ([]entities.CostItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if err := validateItemInput(in.Name, in.PlannedAmount, in.TransactionDate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, ErrInvalidCategory
	}
	if in.IsRecurring && in.Installments >= 2 {
		return nil, ErrConflictingRecurrence
	}

	projectID := strings.TrimSpace(in.ProjectID)
	if projectID != "" {
		if _, err := u.ownedProject(ctx, userID, projectID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	base := entities.CostItem{
		UserID:          userID,
		ProjectID:       projectID,
		Name:            strings.TrimSpace(in.Name),
		Category:        strings.TrimSpace(in.Category),
		Status:          entities.CostItemStatusPendente,
		PlannedAmount:   in.PlannedAmount,
		TransactionDate: finance.DateOnly(in.TransactionDate),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.IsRecurring {
		base.IsRecurring = true
		base.Frequency = entities.FrequencyMonthly
	}

	if in.Installments >= 2 {
		plan, err := finance.SplitInstallments(base.Name, in.PlannedAmount, in.Installments, in.TransactionDate)
		if err != nil {
			return nil, err
		}
		items := make([]entities.CostItem, 0, len(plan))
		for _, p := range plan {
			it := base
			it.ID = uuid.NewString()
			it.Name = p.Name
			it.PlannedAmount = p.Amount
			it.TransactionDate = p.DueDate
			it.IsInstallment = true
			it.InstallmentNumber = p.Number
			it.TotalInstallments = p.Total
			items = append(items, it)
		}
		return u.repo.CreateBatch(ctx, items)
	}

	base.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, base)
	if err != nil {
		return nil, err
	}
	return []entities.CostItem{created}, nil
}

func (u *CostItemUseCase) GetByID(ctx context.Context, userID, id string) (entities.CostItem, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *CostItemUseCase) List(ctx context.Context, userID string) ([]entities.CostItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *CostItemUseCase) ListByProject(ctx context.Context, userID, projectID string) ([]entities.CostItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	items, err := u.repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return ownedCostItems(items, userID), nil
}

// ownedCostItems keeps only the caller's rows. The project index is keyed
// by project_id alone, so its results are never trusted as already scoped.
func ownedCostItems(items []entities.CostItem, userID string) []entities.CostItem {
	owned := make([]entities.CostItem, 0, len(items))
	for _, it := range items {
		if it.UserID == userID {
			owned = append(owned, it)
		}
	}
	return owned
}

func (u *CostItemUseCase) Update(ctx context.Context, userID, id string, in UpdateCostItemInput) (entities.CostItem, error) {
	item, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.CostItem{}, err
	}
	if err := validateItemInput(in.Name, in.PlannedAmount, in.TransactionDate); err != nil {
		return entities.CostItem{}, err
	}
	if strings.TrimSpace(in.Category) == "" {
		return entities.CostItem{}, ErrInvalidCategory
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Category = strings.TrimSpace(in.Category)
	item.PlannedAmount = in.PlannedAmount
	item.TransactionDate = finance.DateOnly(in.TransactionDate)
	item.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, item)
	if err != nil {
		return entities.CostItem{}, err
	}
	if updated.ID == "" {
		// Deleted between the read and the conditional write.
		return entities.CostItem{}, ErrCostItemNotFound
	}
	return updated, nil
}

// MarkPaid records the realized amount and flips the persisted status to
// Pago. The owning project's denormalized actual total is advanced
// best-effort afterwards: a failure there is logged, not returned, and
// the dashboards recompute authoritative sums from the items anyway.
func (u *CostItemUseCase) MarkPaid(ctx context.Context, userID, id string, amount float64) (entities.CostItem, error) {
	item, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.CostItem{}, err
	}
	if amount <= 0 {
		return entities.CostItem{}, ErrInvalidAmount
	}

	item.Status = entities.CostItemStatusPago
	item.ActualAmount = amount
	item.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, item)
	if err != nil {
		return entities.CostItem{}, err
	}
	if updated.ID == "" {
		return entities.CostItem{}, ErrCostItemNotFound
	}

	u.advanceProjectCostTotal(ctx, updated.ProjectID, amount)
	return updated, nil
}

func (u *CostItemUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *CostItemUseCase) ownedProject(ctx context.Context, userID, projectID string) (entities.Project, error) {
	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" || p.UserID != userID {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *CostItemUseCase) getOwned(ctx context.Context, userID, id string) (entities.CostItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CostItem{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CostItem{}, ErrInvalidCostItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CostItem{}, err
	}
	if item.ID == "" || item.UserID != userID {
		return entities.CostItem{}, ErrCostItemNotFound
	}
	return item, nil
}

func (u *CostItemUseCase) advanceProjectCostTotal(ctx context.Context, projectID string, amount float64) {
	if projectID == "" || u.projectRepo == nil {
		return
	}
	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil || p.ID == "" {
		log.Printf("[cost][usecase] project total skipped project_id=%s err=%v", projectID, err)
		return
	}
	p.ActualTotalCost += amount
	p.UpdatedAt = time.Now().UTC()
	if _, err := u.projectRepo.Update(ctx, p); err != nil {
		log.Printf("[cost][usecase] project total update failed project_id=%s err=%v", projectID, err)
	}
}

func validateItemInput(name string, amount float64, transactionDate time.Time) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidItemName
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if transactionDate.IsZero() {
		return ErrMissingTransactionDate
	}
	return nil
}
