package usecase

import (
	"context"
	"strings"
	"time"

	"finestra/internal/domain/entities"
	"finestra/internal/domain/finance"
	"finestra/internal/usecase/interfaces"
)

// cashFlowMonths is the trailing window of the monthly charts.
const cashFlowMonths = 6

// DashboardOverview feeds the portfolio-wide overview cards and the
// category chart. Metrics are authoritative sums over the user's items;
// the planned totals come from the project budgets.
type DashboardOverview struct {
	Metrics             finance.Metrics         `json:"metrics"`
	PlannedTotalRevenue float64                 `json:"planned_total_revenue"`
	PlannedTotalCost    float64                 `json:"planned_total_cost"`
	ProjectCount        int                     `json:"project_count"`
	ActiveProjectCount  int                     `json:"active_project_count"`
	Categories          []finance.CategoryTotal `json:"categories"`
}

// ProjectOverview feeds a single project's dashboard tab: metrics plus the
// sorted payable/receivable lists.
type ProjectOverview struct {
	Project    entities.Project        `json:"project"`
	Metrics    finance.Metrics         `json:"metrics"`
	Categories []finance.CategoryTotal `json:"categories"`
	Costs      []entities.CostItem     `json:"costs"`
	Revenues   []entities.RevenueItem  `json:"revenues"`
}

// CashFlow is the pair of six-month planned-vs-actual series behind the
// cost and revenue charts.
type CashFlow struct {
	Costs    []finance.MonthlyPoint `json:"costs"`
	Revenues []finance.MonthlyPoint `json:"revenues"`
}

// Agenda is the this-week/overdue bucketing shown on the home screen.
// Week membership and overdueness are independent: a paid item dated this
// week stays in the week bucket, and an overdue item from last month
// appears only in the overdue bucket.
type Agenda struct {
	CostsThisWeek    []entities.CostItem    `json:"costs_this_week"`
	OverdueCosts     []entities.CostItem    `json:"overdue_costs"`
	RevenuesThisWeek []entities.RevenueItem `json:"revenues_this_week"`
	OverdueRevenues  []entities.RevenueItem `json:"overdue_revenues"`
}

// IDashboardUseCase exposes the read-only aggregations. Every call loads a
// fresh snapshot and recomputes; nothing here is cached or persisted.

type IDashboardUseCase interface {
	Overview(ctx context.Context, userID string) (DashboardOverview, error)
	ProjectOverview(ctx context.Context, userID, projectID string) (ProjectOverview, error)
	CashFlow(ctx context.Context, userID string) (CashFlow, error)
	Agenda(ctx context.Context, userID string) (Agenda, error)
}

type DashboardUseCase struct {
	projectRepo interfaces.IProjectRepository
	costRepo    interfaces.ICostItemRepository
	revenueRepo interfaces.IRevenueItemRepository

	now func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	projectRepo interfaces.IProjectRepository,
	costRepo interfaces.ICostItemRepository,
	revenueRepo interfaces.IRevenueItemRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		projectRepo: projectRepo,
		costRepo:    costRepo,
		revenueRepo: revenueRepo,
		now:         time.Now,
	}
}

func (u *DashboardUseCase) Overview(ctx context.Context, userID string) (DashboardOverview, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DashboardOverview{}, ErrInvalidUserID
	}

	projects, err := u.projectRepo.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardOverview{}, err
	}
	costs, err := u.costRepo.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardOverview{}, err
	}
	revenues, err := u.revenueRepo.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardOverview{}, err
	}

	out := DashboardOverview{
		Metrics:      finance.ComputeMetrics(revenues, costs),
		ProjectCount: len(projects),
		Categories:   finance.CategoryBreakdown(costs),
	}
	for _, p := range projects {
		out.PlannedTotalRevenue += p.PlannedTotalRevenue
		out.PlannedTotalCost += p.PlannedTotalCost
		if p.Status == entities.ProjectStatusEmAndamento || p.Status == entities.ProjectStatusInstalado {
			out.ActiveProjectCount++
		}
	}
	return out, nil
}

func (u *DashboardUseCase) ProjectOverview(ctx context.Context, userID, projectID string) (ProjectOverview, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ProjectOverview{}, ErrInvalidUserID
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ProjectOverview{}, ErrInvalidProjectID
	}

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return ProjectOverview{}, err
	}
	if project.ID == "" || project.UserID != userID {
		return ProjectOverview{}, ErrProjectNotFound
	}

	costs, err := u.costRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return ProjectOverview{}, err
	}
	costs = ownedCostItems(costs, userID)
	revenues, err := u.revenueRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return ProjectOverview{}, err
	}
	revenues = ownedRevenueItems(revenues, userID)

	today := u.now()
	finance.SortCostItems(costs, today)
	finance.SortRevenueItems(revenues, today)

	return ProjectOverview{
		Project:    project,
		Metrics:    finance.ComputeMetrics(revenues, costs),
		Categories: finance.CategoryBreakdown(costs),
		Costs:      costs,
		Revenues:   revenues,
	}, nil
}

func (u *DashboardUseCase) CashFlow(ctx context.Context, userID string) (CashFlow, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return CashFlow{}, ErrInvalidUserID
	}

	costs, err := u.costRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CashFlow{}, err
	}
	revenues, err := u.revenueRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CashFlow{}, err
	}

	today := u.now()
	return CashFlow{
		Costs:    finance.MonthlyCostSeries(costs, today, cashFlowMonths),
		Revenues: finance.MonthlyRevenueSeries(revenues, today, cashFlowMonths),
	}, nil
}

func (u *DashboardUseCase) Agenda(ctx context.Context, userID string) (Agenda, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Agenda{}, ErrInvalidUserID
	}

	costs, err := u.costRepo.ListByUserID(ctx, userID)
	if err != nil {
		return Agenda{}, err
	}
	revenues, err := u.revenueRepo.ListByUserID(ctx, userID)
	if err != nil {
		return Agenda{}, err
	}

	today := u.now()
	agenda := Agenda{
		CostsThisWeek:    finance.CostsDueThisWeek(costs, today),
		OverdueCosts:     finance.OverdueCosts(costs, today),
		RevenuesThisWeek: finance.RevenuesDueThisWeek(revenues, today),
		OverdueRevenues:  finance.OverdueRevenues(revenues, today),
	}
	finance.SortCostItems(agenda.CostsThisWeek, today)
	finance.SortCostItems(agenda.OverdueCosts, today)
	finance.SortRevenueItems(agenda.RevenuesThisWeek, today)
	finance.SortRevenueItems(agenda.OverdueRevenues, today)
	return agenda, nil
}
