package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"finestra/internal/domain/entities"
	mock_interfaces "finestra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("valid project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" || p.UserID != "user-1" || p.Name != "Reforma Casa X" {
					t.Fatalf("unexpected project: %+v", p)
				}
				if p.ActualTotalRevenue != 0 || p.ActualTotalCost != 0 {
					t.Fatalf("actual totals must start at zero: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.Create(context.Background(), "user-1", CreateProjectInput{
			Name:                "  Reforma Casa X  ",
			Client:              "Maria",
			StartDate:           testDate(2024, time.July, 1),
			Status:              entities.ProjectStatusEmAndamento,
			PlannedTotalRevenue: 10000,
			PlannedTotalCost:    6000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProjectStatusEmAndamento {
			t.Fatalf("unexpected status: %s", p.Status)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Create(context.Background(), "user-1", CreateProjectInput{
			Name:   "Reforma",
			Status: entities.ProjectStatus("arquivado"),
		})
		if !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("negative planned amounts", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Create(context.Background(), "user-1", CreateProjectInput{
			Name:             "Reforma",
			Status:           entities.ProjectStatusPendente,
			PlannedTotalCost: -1,
		})
		if !errors.Is(err, ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
	})
}

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("other user's project behaves as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", UserID: "user-2"}, nil)

		_, err := uc.GetByID(context.Background(), "user-1", "proj-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.GetByID(context.Background(), "user-1", "   ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	t.Run("project deleted mid-flight behaves as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{
			ID: "proj-1", UserID: "user-1", Name: "Reforma",
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		_, err := uc.Update(context.Background(), "user-1", "proj-1", UpdateProjectInput{
			Name:                "Reforma",
			Status:              entities.ProjectStatusEmAndamento,
			StartDate:           testDate(2024, time.July, 1),
			PlannedTotalRevenue: 10000,
			PlannedTotalCost:    6000,
		})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	t.Run("deletes only the project record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", UserID: "user-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "proj-1").Return(nil)

		if err := uc.Delete(context.Background(), "user-1", "proj-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{}, nil)

		err := uc.Delete(context.Background(), "user-1", "proj-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}
