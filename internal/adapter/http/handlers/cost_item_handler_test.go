package handlers

import (
	"bytes"
	"encoding/json"
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

func newCostItemRouter(h *CostItemHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.FirebaseAuth(nil))
	r.POST("/v1/costs", h.CreateCostItem)
	r.GET("/v1/costs", h.ListCostItems)
	r.GET("/v1/costs/:id", h.GetCostItem)
	r.PATCH("/v1/costs/:id/pay", h.MarkCostItemPaid)
	r.GET("/v1/projects/:id/costs", h.ListProjectCostItems)
	return r
}

func TestCostItemHandler_CreateCostItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemUseCase(ctrl)
		r := newCostItemRouter(NewCostItemHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/costs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("installment plan returns every emitted item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemUseCase(ctrl)
		r := newCostItemRouter(NewCostItemHandler(uc))

		in := usecase.CreateCostItemInput{
			ProjectID:       "proj-1",
			Name:            "Cimento",
			Category:        "Materiais",
			PlannedAmount:   100,
			TransactionDate: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			Installments:    2,
		}
		uc.EXPECT().Create(gomock.Any(), "user-1", in).Return([]entities.CostItem{
			{ID: "ci-1", Name: "Cimento - Parcela 1/2", PlannedAmount: 50, TransactionDate: in.TransactionDate},
			{ID: "ci-2", Name: "Cimento - Parcela 2/2", PlannedAmount: 50, TransactionDate: in.TransactionDate.AddDate(0, 1, 0)},
		}, nil)

		body := `{"project_id":"proj-1","name":"Cimento","category":"Materiais","planned_amount":100,"transaction_date":"2024-07-01","installments":2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var items []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &items)
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %s", w.Body.String())
		}
		if items[1]["name"] != "Cimento - Parcela 2/2" {
			t.Fatalf("unexpected second installment: %v", items[1])
		}
	})

	t.Run("usecase validation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemUseCase(ctrl)
		r := newCostItemRouter(NewCostItemHandler(uc))

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(nil, usecase.ErrConflictingRecurrence)

		body := `{"name":"Aluguel","category":"Escritório","planned_amount":10,"is_recurring":true,"installments":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCostItemHandler_MarkCostItemPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemUseCase(ctrl)
		r := newCostItemRouter(NewCostItemHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/costs/ci-1/pay", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemUseCase(ctrl)
		r := newCostItemRouter(NewCostItemHandler(uc))

		uc.EXPECT().MarkPaid(gomock.Any(), "user-1", "ci-x", 80.0).Return(entities.CostItem{}, usecase.ErrCostItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/costs/ci-x/pay", bytes.NewBufferString(`{"amount":80}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success carries the derived status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemUseCase(ctrl)
		r := newCostItemRouter(NewCostItemHandler(uc))

		uc.EXPECT().MarkPaid(gomock.Any(), "user-1", "ci-1", 80.0).Return(entities.CostItem{
			ID: "ci-1", Name: "Cimento", ActualAmount: 80,
			TransactionDate: time.Now().UTC().AddDate(0, 0, -3),
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/costs/ci-1/pay", bytes.NewBufferString(`{"amount":80}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "Pago" {
			t.Fatalf("a settled item must read Pago: %s", w.Body.String())
		}
	})
}

func TestCostItemHandler_ListProjectCostItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICostItemUseCase(ctrl)
	r := newCostItemRouter(NewCostItemHandler(uc))

	uc.EXPECT().ListByProject(gomock.Any(), "user-1", "proj-1").Return([]entities.CostItem{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/costs", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("an empty list must encode as [], got %s", w.Body.String())
	}
}
