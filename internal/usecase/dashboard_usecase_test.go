package usecase

import (
	"context"
	"testing"
	"time"

	"finestra/internal/domain/entities"
	mock_interfaces "finestra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func dashboardFixtures(ctrl *gomock.Controller) (*mock_interfaces.MockIProjectRepository, *mock_interfaces.MockICostItemRepository, *mock_interfaces.MockIRevenueItemRepository, *DashboardUseCase) {
	projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
	costRepo := mock_interfaces.NewMockICostItemRepository(ctrl)
	revenueRepo := mock_interfaces.NewMockIRevenueItemRepository(ctrl)
	uc := NewDashboardUseCase(projectRepo, costRepo, revenueRepo)
	uc.now = func() time.Time { return testDate(2024, time.July, 10) }
	return projectRepo, costRepo, revenueRepo, uc
}

func TestDashboardUseCase_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projectRepo, costRepo, revenueRepo, uc := dashboardFixtures(ctrl)

	projectRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Project{
		{ID: "p1", Status: entities.ProjectStatusEmAndamento, PlannedTotalRevenue: 10000, PlannedTotalCost: 6000},
		{ID: "p2", Status: entities.ProjectStatusConcluido, PlannedTotalRevenue: 5000, PlannedTotalCost: 3000},
		{ID: "p3", Status: entities.ProjectStatusInstalado, PlannedTotalRevenue: 2000, PlannedTotalCost: 1000},
	}, nil)
	costRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.CostItem{
		{Category: "Materiais", PlannedAmount: 600, ActualAmount: 150},
		{Category: "Marketing", PlannedAmount: 1000, ActualAmount: 500},
	}, nil)
	revenueRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.RevenueItem{
		{PlannedAmount: 1000, ReceivedAmount: 1300},
	}, nil)

	out, err := uc.Overview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ProjectCount != 3 || out.ActiveProjectCount != 2 {
		t.Fatalf("unexpected project counts: %+v", out)
	}
	if out.PlannedTotalRevenue != 17000 || out.PlannedTotalCost != 10000 {
		t.Fatalf("unexpected planned totals: %+v", out)
	}
	if out.Metrics.ActualTotalRevenue != 1300 || out.Metrics.ActualTotalCost != 650 {
		t.Fatalf("unexpected metrics: %+v", out.Metrics)
	}
	if out.Metrics.MarginPercentage != 50 {
		t.Fatalf("expected 50%% margin, got %v", out.Metrics.MarginPercentage)
	}
	if len(out.Categories) != 2 || out.Categories[0].Category != "Marketing" {
		t.Fatalf("unexpected category breakdown: %+v", out.Categories)
	}
}

func TestDashboardUseCase_ProjectOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projectRepo, costRepo, revenueRepo, uc := dashboardFixtures(ctrl)

	project := entities.Project{ID: "proj-1", UserID: "user-1", Name: "Reforma"}
	projectRepo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(project, nil)
	costRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.CostItem{
		{ID: "paid", UserID: "user-1", Status: entities.CostItemStatusPago, ActualAmount: 100, TransactionDate: testDate(2024, time.July, 1)},
		{ID: "overdue", UserID: "user-1", Status: entities.CostItemStatusPendente, PlannedAmount: 50, TransactionDate: testDate(2024, time.July, 5)},
		{ID: "pending", UserID: "user-1", Status: entities.CostItemStatusPendente, PlannedAmount: 80, TransactionDate: testDate(2024, time.July, 20)},
	}, nil)
	revenueRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.RevenueItem{
		{ID: "r1", UserID: "user-1", PlannedAmount: 500, TransactionDate: testDate(2024, time.July, 15)},
	}, nil)

	out, err := uc.ProjectOverview(context.Background(), "user-1", "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order := []string{out.Costs[0].ID, out.Costs[1].ID, out.Costs[2].ID}
	want := []string{"overdue", "pending", "paid"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected cost order: %v", order)
		}
	}
	if out.Metrics.ActualTotalCost != 100 {
		t.Fatalf("unexpected metrics: %+v", out.Metrics)
	}
}

func TestDashboardUseCase_ProjectOverviewIgnoresOtherUsersItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projectRepo, costRepo, revenueRepo, uc := dashboardFixtures(ctrl)

	project := entities.Project{ID: "proj-1", UserID: "user-1", Name: "Reforma"}
	projectRepo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(project, nil)
	costRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.CostItem{
		{ID: "foreign", UserID: "user-2", Category: "Outros", Status: entities.CostItemStatusPago, ActualAmount: 999, TransactionDate: testDate(2024, time.July, 2)},
		{ID: "own", UserID: "user-1", Category: "Materiais", Status: entities.CostItemStatusPago, ActualAmount: 100, TransactionDate: testDate(2024, time.July, 1)},
	}, nil)
	revenueRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.RevenueItem{
		{ID: "r-foreign", UserID: "user-2", ReceivedAmount: 500, TransactionDate: testDate(2024, time.July, 3)},
	}, nil)

	out, err := uc.ProjectOverview(context.Background(), "user-1", "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Costs) != 1 || out.Costs[0].ID != "own" {
		t.Fatalf("expected only the caller's costs, got %+v", out.Costs)
	}
	if len(out.Revenues) != 0 {
		t.Fatalf("expected no revenues, got %+v", out.Revenues)
	}
	if out.Metrics.ActualTotalCost != 100 || out.Metrics.ActualTotalRevenue != 0 || out.Metrics.ActualProfit != -100 {
		t.Fatalf("unexpected metrics: %+v", out.Metrics)
	}
	for _, c := range out.Categories {
		if c.Category == "Outros" {
			t.Fatalf("foreign category leaked: %+v", out.Categories)
		}
	}
}

func TestDashboardUseCase_CashFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, costRepo, revenueRepo, uc := dashboardFixtures(ctrl)

	costRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.CostItem{
		{PlannedAmount: 100, TransactionDate: testDate(2024, time.May, 15)},
	}, nil)
	revenueRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return(nil, nil)

	out, err := uc.CashFlow(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Costs) != 6 || len(out.Revenues) != 6 {
		t.Fatalf("expected six-month series, got %d/%d", len(out.Costs), len(out.Revenues))
	}
	if out.Costs[0].Month != "2024-02" || out.Costs[5].Month != "2024-07" {
		t.Fatalf("unexpected window: %s .. %s", out.Costs[0].Month, out.Costs[5].Month)
	}
	if out.Costs[3].Planned != 100 {
		t.Fatalf("expected May planned 100, got %+v", out.Costs[3])
	}
}

func TestDashboardUseCase_Agenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, costRepo, revenueRepo, uc := dashboardFixtures(ctrl)

	// Week of 2024-07-08 .. 2024-07-14.
	costRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.CostItem{
		{ID: "week", Status: entities.CostItemStatusPendente, TransactionDate: testDate(2024, time.July, 12)},
		{ID: "overdue", Status: entities.CostItemStatusPendente, TransactionDate: testDate(2024, time.June, 20)},
		{ID: "paid-week", Status: entities.CostItemStatusPago, ActualAmount: 10, TransactionDate: testDate(2024, time.July, 9)},
		{ID: "next-week", Status: entities.CostItemStatusPendente, TransactionDate: testDate(2024, time.July, 16)},
	}, nil)
	revenueRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.RevenueItem{
		{ID: "r-week", PlannedAmount: 100, TransactionDate: testDate(2024, time.July, 14)},
	}, nil)

	out, err := uc.Agenda(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.CostsThisWeek) != 2 {
		t.Fatalf("expected 2 costs this week, got %+v", out.CostsThisWeek)
	}
	if len(out.OverdueCosts) != 1 || out.OverdueCosts[0].ID != "overdue" {
		t.Fatalf("unexpected overdue costs: %+v", out.OverdueCosts)
	}
	if len(out.RevenuesThisWeek) != 1 || out.RevenuesThisWeek[0].ID != "r-week" {
		t.Fatalf("unexpected revenues this week: %+v", out.RevenuesThisWeek)
	}
}
