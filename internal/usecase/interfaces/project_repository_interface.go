package interfaces

import (
	"context"

	"finestra/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Deleting a project does not cascade to its cost or revenue items; the
// orphaned items keep their project_id and stay visible in company-level
// listings.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}
