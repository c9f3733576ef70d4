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

func TestFixedCostUseCase_Create(t *testing.T) {
	t.Run("valid template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFixedCostRepository(ctrl)
		uc := NewFixedCostUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fc entities.FixedCost) (entities.FixedCost, error) {
				if fc.ID == "" || fc.UserID != "user-1" || fc.Frequency != entities.FrequencyMonthly {
					t.Fatalf("unexpected template: %+v", fc)
				}
				if !fc.NextPaymentDate.Equal(testDate(2024, time.July, 5)) {
					t.Fatalf("unexpected next payment date: %v", fc.NextPaymentDate)
				}
				return fc, nil
			},
		)

		fc, err := uc.Create(context.Background(), "user-1", CreateFixedCostInput{
			Name:            "Aluguel",
			Category:        "Outros",
			Amount:          2500,
			NextPaymentDate: time.Date(2024, time.July, 5, 14, 30, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fc.Name != "Aluguel" {
			t.Fatalf("unexpected result: %+v", fc)
		}
	})

	t.Run("missing next payment date", func(t *testing.T) {
		uc := NewFixedCostUseCase(nil)
		_, err := uc.Create(context.Background(), "user-1", CreateFixedCostInput{
			Name:     "Aluguel",
			Category: "Outros",
			Amount:   2500,
		})
		if !errors.Is(err, ErrMissingNextPayment) {
			t.Fatalf("expected ErrMissingNextPayment, got %v", err)
		}
	})
}

func TestFixedCostUseCase_Update(t *testing.T) {
	t.Run("template deleted mid-flight behaves as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFixedCostRepository(ctrl)
		uc := NewFixedCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "fc-1").Return(entities.FixedCost{
			ID: "fc-1", UserID: "user-1", Name: "Aluguel", Category: "Outros", Amount: 2500,
		}, nil)
		// A zero template with a nil error is the store's signal that the
		// conditional write found no row.
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.FixedCost{}, nil)

		_, err := uc.Update(context.Background(), "user-1", "fc-1", CreateFixedCostInput{
			Name:            "Aluguel",
			Category:        "Outros",
			Amount:          2600,
			NextPaymentDate: testDate(2024, time.August, 5),
		})
		if !errors.Is(err, ErrFixedCostNotFound) {
			t.Fatalf("expected ErrFixedCostNotFound, got %v", err)
		}
	})

	t.Run("persists the edited template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFixedCostRepository(ctrl)
		uc := NewFixedCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "fc-1").Return(entities.FixedCost{
			ID: "fc-1", UserID: "user-1", Name: "Aluguel", Category: "Outros", Amount: 2500,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fc entities.FixedCost) (entities.FixedCost, error) {
				if fc.Amount != 2600 {
					t.Fatalf("unexpected update: %+v", fc)
				}
				return fc, nil
			},
		)

		fc, err := uc.Update(context.Background(), "user-1", "fc-1", CreateFixedCostInput{
			Name:            "Aluguel",
			Category:        "Outros",
			Amount:          2600,
			NextPaymentDate: testDate(2024, time.August, 5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fc.Amount != 2600 {
			t.Fatalf("unexpected result: %+v", fc)
		}
	})
}

func TestFixedCostUseCase_GenerateCharge(t *testing.T) {
	t.Run("emits a pending item and advances one month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFixedCostRepository(ctrl)
		uc := NewFixedCostUseCase(repo)

		fc := entities.FixedCost{
			ID:              "fc-1",
			UserID:          "user-1",
			Name:            "Aluguel",
			Category:        "Outros",
			Amount:          2500,
			Frequency:       entities.FrequencyMonthly,
			NextPaymentDate: testDate(2024, time.January, 31),
		}
		repo.EXPECT().GetByID(gomock.Any(), "fc-1").Return(fc, nil)
		repo.EXPECT().GenerateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.FixedCost, item entities.CostItem, next time.Time) (entities.FixedCost, error) {
				if got.ID != "fc-1" {
					t.Fatalf("unexpected template: %+v", got)
				}
				if item.Status != entities.CostItemStatusPendente || item.PlannedAmount != 2500 || item.ActualAmount != 0 {
					t.Fatalf("unexpected generated item: %+v", item)
				}
				if !item.TransactionDate.Equal(testDate(2024, time.January, 31)) {
					t.Fatalf("item must be due on the template date, got %v", item.TransactionDate)
				}
				if !item.IsRecurring || item.Frequency != entities.FrequencyMonthly {
					t.Fatalf("generated item must carry the recurrence, got %+v", item)
				}
				if !next.Equal(testDate(2024, time.February, 29)) {
					t.Fatalf("expected month-end clamp to Feb 29, got %v", next)
				}
				got.NextPaymentDate = next
				return got, nil
			},
		)

		item, updated, err := uc.GenerateCharge(context.Background(), "user-1", "fc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != "Aluguel" || item.ID == "" {
			t.Fatalf("unexpected item: %+v", item)
		}
		if !updated.NextPaymentDate.Equal(testDate(2024, time.February, 29)) {
			t.Fatalf("template not advanced: %v", updated.NextPaymentDate)
		}
	})

	t.Run("cross-user template behaves as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFixedCostRepository(ctrl)
		uc := NewFixedCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "fc-1").Return(entities.FixedCost{ID: "fc-1", UserID: "someone-else"}, nil)

		_, _, err := uc.GenerateCharge(context.Background(), "user-1", "fc-1")
		if !errors.Is(err, ErrFixedCostNotFound) {
			t.Fatalf("expected ErrFixedCostNotFound, got %v", err)
		}
	})

	t.Run("transaction failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFixedCostRepository(ctrl)
		uc := NewFixedCostUseCase(repo)

		fc := entities.FixedCost{ID: "fc-1", UserID: "user-1", Name: "Aluguel", Amount: 2500, NextPaymentDate: testDate(2024, time.July, 5)}
		repo.EXPECT().GetByID(gomock.Any(), "fc-1").Return(fc, nil)
		storeErr := errors.New("conditional check failed")
		repo.EXPECT().GenerateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.FixedCost{}, storeErr)

		_, _, err := uc.GenerateCharge(context.Background(), "user-1", "fc-1")
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
