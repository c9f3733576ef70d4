package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"finestra/internal/domain/entities"
	"finestra/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound    = errors.New("cost category not found")
	ErrInvalidCategoryID   = errors.New("invalid category id")
	ErrInvalidCategoryName = errors.New("invalid category name")
)

// ICostCategoryUseCase exposes the user-managed category list. List seeds
// the five default categories on a user's first access, so the cost form
// is never empty.

type ICostCategoryUseCase interface {
	List(ctx context.Context, userID string) ([]entities.CostCategory, error)
	Create(ctx context.Context, userID, name string) (entities.CostCategory, error)
	Delete(ctx context.Context, userID, id string) error
}

type CostCategoryUseCase struct {
	repo interfaces.ICostCategoryRepository
}

var _ ICostCategoryUseCase = (*CostCategoryUseCase)(nil)

func NewCostCategoryUseCase(repo interfaces.ICostCategoryRepository) *CostCategoryUseCase {
	return &CostCategoryUseCase{repo: repo}
}

func (u *CostCategoryUseCase) List(ctx context.Context, userID string) ([]entities.CostCategory, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	categories, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	log.Printf("[category][usecase] seeding defaults user_id=%s", userID)
	now := time.Now().UTC()
	defaults := make([]entities.CostCategory, 0, len(entities.DefaultCostCategoryNames()))
	for _, name := range entities.DefaultCostCategoryNames() {
		defaults = append(defaults, entities.CostCategory{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      name,
			CreatedAt: now,
		})
	}
	return u.repo.CreateBatch(ctx, defaults)
}

func (u *CostCategoryUseCase) Create(ctx context.Context, userID, name string) (entities.CostCategory, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CostCategory{}, ErrInvalidUserID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.CostCategory{}, ErrInvalidCategoryName
	}

	c := entities.CostCategory{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CostCategoryUseCase) Delete(ctx context.Context, userID, id string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCategoryID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" || c.UserID != userID {
		return ErrCategoryNotFound
	}
	return u.repo.Delete(ctx, id)
}
