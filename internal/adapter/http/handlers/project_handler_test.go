package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finestra/internal/adapter/http/handlers/mocks"
	"finestra/internal/adapter/http/middleware"
	"finestra/internal/domain/entities"
	"finestra/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProjectRouter(h *ProjectHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.FirebaseAuth(nil))
	r.POST("/v1/projects", h.CreateProject)
	r.GET("/v1/projects", h.ListProjects)
	r.GET("/v1/projects/:id", h.GetProject)
	r.PUT("/v1/projects/:id", h.UpdateProject)
	r.DELETE("/v1/projects/:id", h.DeleteProject)
	return r
}

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing auth header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Reforma","status":"Pendente"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Reforma","status":"Pendente","start_date":"15/07/2024"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		now := time.Now().UTC()
		in := usecase.CreateProjectInput{
			Name:             "Reforma Cozinha",
			Client:           "Dona Maria",
			Status:           entities.ProjectStatusEmAndamento,
			PlannedTotalCost: 5000,
		}
		uc.EXPECT().Create(gomock.Any(), "user-1", in).Return(entities.Project{
			ID: "proj-1", UserID: "user-1", Name: "Reforma Cozinha", Client: "Dona Maria",
			Status: entities.ProjectStatusEmAndamento, PlannedTotalCost: 5000,
			CreatedAt: now, UpdatedAt: now,
		}, nil)

		body := `{"name":"Reforma Cozinha","client":"Dona Maria","status":"Em andamento","planned_total_cost":5000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "proj-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, ok := resp["user_id"]; ok {
			t.Fatalf("user_id must not be exposed: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "proj-x").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-x", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "proj-1").Return(entities.Project{ID: "proj-1", Name: "Reforma"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(NewProjectHandler(uc))

	uc.EXPECT().Delete(gomock.Any(), "user-1", "proj-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/projects/proj-1", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapProjectError(t *testing.T) {
	if got := mapProjectError(usecase.ErrInvalidUserID); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapProjectError(usecase.ErrInvalidProjectName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrInvalidProjectStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
