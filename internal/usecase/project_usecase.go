package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"finestra/internal/domain/entities"
	"finestra/internal/domain/finance"
	"finestra/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidProjectName   = errors.New("invalid project name")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrNegativeAmount       = errors.New("amounts must be non-negative")
)

// CreateProjectInput carries the user-entered fields of a new project.
type CreateProjectInput struct {
	Name                string
	Client              string
	StartDate           time.Time
	Status              entities.ProjectStatus
	PlannedTotalRevenue float64
	PlannedTotalCost    float64
}

// UpdateProjectInput carries the editable fields of an existing project.
// The denormalized actual totals are not editable here; they are advanced
// by the item write paths.
type UpdateProjectInput struct {
	Name                string
	Client              string
	StartDate           time.Time
	Status              entities.ProjectStatus
	PlannedTotalRevenue float64
	PlannedTotalCost    float64
}

// IProjectUseCase exposes project operations. Every operation is scoped to
// the calling user; a project owned by someone else behaves exactly like a
// missing one.

type IProjectUseCase interface {
	Create(ctx context.Context, userID string, in CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, userID, id string) (entities.Project, error)
	List(ctx context.Context, userID string) ([]entities.Project, error)
	Update(ctx context.Context, userID, id string, in UpdateProjectInput) (entities.Project, error)
	Delete(ctx context.Context, userID, id string) error
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, userID string, in CreateProjectInput) (entities.Project, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Project{}, ErrInvalidUserID
	}
	if err := validateProjectInput(in.Name, in.Status, in.PlannedTotalRevenue, in.PlannedTotalCost); err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Name:                strings.TrimSpace(in.Name),
		Client:              strings.TrimSpace(in.Client),
		StartDate:           finance.DateOnly(in.StartDate),
		Status:              in.Status,
		PlannedTotalRevenue: in.PlannedTotalRevenue,
		PlannedTotalCost:    in.PlannedTotalCost,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, userID, id string) (entities.Project, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *ProjectUseCase) List(ctx context.Context, userID string) ([]entities.Project, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *ProjectUseCase) Update(ctx context.Context, userID, id string, in UpdateProjectInput) (entities.Project, error) {
	p, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Project{}, err
	}
	if err := validateProjectInput(in.Name, in.Status, in.PlannedTotalRevenue, in.PlannedTotalCost); err != nil {
		return entities.Project{}, err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Client = strings.TrimSpace(in.Client)
	p.StartDate = finance.DateOnly(in.StartDate)
	p.Status = in.Status
	p.PlannedTotalRevenue = in.PlannedTotalRevenue
	p.PlannedTotalCost = in.PlannedTotalCost
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		// Deleted between the read and the conditional write.
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

// Delete removes the project record only. Cost and revenue items that
// reference it are intentionally left in place (no cascade).
func (u *ProjectUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *ProjectUseCase) getOwned(ctx context.Context, userID, id string) (entities.Project, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Project{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" || p.UserID != userID {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func validateProjectInput(name string, status entities.ProjectStatus, plannedRevenue, plannedCost float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidProjectName
	}
	if !entities.ValidProjectStatus(status) {
		return ErrInvalidProjectStatus
	}
	if plannedRevenue < 0 || plannedCost < 0 {
		return ErrNegativeAmount
	}
	return nil
}
