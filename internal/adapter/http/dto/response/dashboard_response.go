package response

import (
	"time"

	"finestra/internal/domain/finance"
	"finestra/internal/usecase"
)

// ProjectOverviewResponse is a project dashboard tab: metrics plus the
// sorted item lists with derived statuses.
type ProjectOverviewResponse struct {
	Project    ProjectResponse         `json:"project"`
	Metrics    finance.Metrics         `json:"metrics"`
	Categories []finance.CategoryTotal `json:"categories"`
	Costs      []CostItemResponse      `json:"costs"`
	Revenues   []RevenueItemResponse   `json:"revenues"`
}

func FromProjectOverview(o usecase.ProjectOverview, today time.Time) ProjectOverviewResponse {
	return ProjectOverviewResponse{
		Project:    FromProject(o.Project),
		Metrics:    o.Metrics,
		Categories: o.Categories,
		Costs:      FromCostItems(o.Costs, today),
		Revenues:   FromRevenueItems(o.Revenues, today),
	}
}

// AgendaResponse is the this-week/overdue home screen payload.
type AgendaResponse struct {
	CostsThisWeek    []CostItemResponse    `json:"costs_this_week"`
	OverdueCosts     []CostItemResponse    `json:"overdue_costs"`
	RevenuesThisWeek []RevenueItemResponse `json:"revenues_this_week"`
	OverdueRevenues  []RevenueItemResponse `json:"overdue_revenues"`
}

func FromAgenda(a usecase.Agenda, today time.Time) AgendaResponse {
	return AgendaResponse{
		CostsThisWeek:    FromCostItems(a.CostsThisWeek, today),
		OverdueCosts:     FromCostItems(a.OverdueCosts, today),
		RevenuesThisWeek: FromRevenueItems(a.RevenuesThisWeek, today),
		OverdueRevenues:  FromRevenueItems(a.OverdueRevenues, today),
	}
}
