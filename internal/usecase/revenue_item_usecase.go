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
	ErrRevenueItemNotFound  = errors.New("revenue item not found")
	ErrInvalidRevenueItemID = errors.New("invalid revenue item id")
)

// CreateRevenueItemInput carries the fields of a new receivable. Revenue
// is always project-scoped. Installments >= 2 splits the planned amount
// into an atomically persisted installment plan, like costs.
type CreateRevenueItemInput struct {
	Name            string
	PlannedAmount   float64
	TransactionDate time.Time
	Installments    int
}

// UpdateRevenueItemInput carries the editable fields of a receivable.
type UpdateRevenueItemInput struct {
	Name            string
	PlannedAmount   float64
	TransactionDate time.Time
}

// IRevenueItemUseCase exposes receivable operations under a project, all
// scoped to the calling user.

type IRevenueItemUseCase interface {
	Create(ctx context.Context, userID, projectID string, in CreateRevenueItemInput) ([]entities.RevenueItem, error)
	GetByID(ctx context.Context, userID, id string) (entities.RevenueItem, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]entities.RevenueItem, error)
	ListAll(ctx context.Context, userID string) ([]entities.RevenueItem, error)
	Update(ctx context.Context, userID, id string, in UpdateRevenueItemInput) (entities.RevenueItem, error)
	MarkReceived(ctx context.Context, userID, id string, amount float64) (entities.RevenueItem, error)
	Delete(ctx context.Context, userID, id string) error
}

type RevenueItemUseCase struct {
	repo        interfaces.IRevenueItemRepository
	projectRepo interfaces.IProjectRepository
}

var _ IRevenueItemUseCase = (*RevenueItemUseCase)(nil)

func NewRevenueItemUseCase(repo interfaces.IRevenueItemRepository, projectRepo interfaces.IProjectRepository) *RevenueItemUseCase {
	return &RevenueItemUseCase{repo: repo, projectRepo: projectRepo}
}

func (u *RevenueItemUseCase) Create(ctx context.Context, userID, projectID string, in CreateRevenueItemInput) ([]entities.RevenueItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if err := validateItemInput(in.Name, in.PlannedAmount, in.TransactionDate); err != nil {
		return nil, err
	}

	project, err := u.ownedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	base := entities.RevenueItem{
		UserID:          userID,
		ProjectID:       project.ID,
		Name:            strings.TrimSpace(in.Name),
		PlannedAmount:   in.PlannedAmount,
		TransactionDate: finance.DateOnly(in.TransactionDate),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if in.Installments >= 2 {
		plan, err := finance.SplitInstallments(base.Name, in.PlannedAmount, in.Installments, in.TransactionDate)
		if err != nil {
			return nil, err
		}
		items := make([]entities.RevenueItem, 0, len(plan))
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
	return []entities.RevenueItem{created}, nil
}

func (u *RevenueItemUseCase) GetByID(ctx context.Context, userID, id string) (entities.RevenueItem, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *RevenueItemUseCase) ListByProject(ctx context.Context, userID, projectID string) ([]entities.RevenueItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if _, err := u.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	items, err := u.repo.ListByProjectID(ctx, strings.TrimSpace(projectID))
	if err != nil {
		return nil, err
	}
	return ownedRevenueItems(items, userID), nil
}

// ownedRevenueItems keeps only the caller's rows, mirroring ownedCostItems.
func ownedRevenueItems(items []entities.RevenueItem, userID string) []entities.RevenueItem {
	owned := make([]entities.RevenueItem, 0, len(items))
	for _, it := range items {
		if it.UserID == userID {
			owned = append(owned, it)
		}
	}
	return owned
}

func (u *RevenueItemUseCase) ListAll(ctx context.Context, userID string) ([]entities.RevenueItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *RevenueItemUseCase) Update(ctx context.Context, userID, id string, in UpdateRevenueItemInput) (entities.RevenueItem, error) {
	item, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.RevenueItem{}, err
	}
	if err := validateItemInput(in.Name, in.PlannedAmount, in.TransactionDate); err != nil {
		return entities.RevenueItem{}, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.PlannedAmount = in.PlannedAmount
	item.TransactionDate = finance.DateOnly(in.TransactionDate)
	item.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, item)
	if err != nil {
		return entities.RevenueItem{}, err
	}
	if updated.ID == "" {
		// Deleted between the read and the conditional write.
		return entities.RevenueItem{}, ErrRevenueItemNotFound
	}
	return updated, nil
}

// MarkReceived records the realized amount. There is no persisted status
// for revenue; the Recebido label is derived from this amount at read
// time. The project's denormalized revenue total is advanced best-effort.
func (u *RevenueItemUseCase) MarkReceived(ctx context.Context, userID, id string, amount float64) (entities.RevenueItem, error) {
	item, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.RevenueItem{}, err
	}
	if amount <= 0 {
		return entities.RevenueItem{}, ErrInvalidAmount
	}

	item.ReceivedAmount = amount
	item.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, item)
	if err != nil {
		return entities.RevenueItem{}, err
	}
	if updated.ID == "" {
		return entities.RevenueItem{}, ErrRevenueItemNotFound
	}

	u.advanceProjectRevenueTotal(ctx, updated.ProjectID, amount)
	return updated, nil
}

func (u *RevenueItemUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *RevenueItemUseCase) getOwned(ctx context.Context, userID, id string) (entities.RevenueItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.RevenueItem{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RevenueItem{}, ErrInvalidRevenueItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RevenueItem{}, err
	}
	if item.ID == "" || item.UserID != userID {
		return entities.RevenueItem{}, ErrRevenueItemNotFound
	}
	return item, nil
}

func (u *RevenueItemUseCase) ownedProject(ctx context.Context, userID, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" || p.UserID != userID {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *RevenueItemUseCase) advanceProjectRevenueTotal(ctx context.Context, projectID string, amount float64) {
	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil || p.ID == "" {
		log.Printf("[revenue][usecase] project total skipped project_id=%s err=%v", projectID, err)
		return
	}
	p.ActualTotalRevenue += amount
	p.UpdatedAt = time.Now().UTC()
	if _, err := u.projectRepo.Update(ctx, p); err != nil {
		log.Printf("[revenue][usecase] project total update failed project_id=%s err=%v", projectID, err)
	}
}
