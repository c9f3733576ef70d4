package entities

import "time"

// ProjectStatus represents the lifecycle of an installation project.
//
// Values are the Portuguese labels shown in the dashboard; they are stored
// verbatim so the UI never needs a translation table.

type ProjectStatus string

const (
	ProjectStatusPendente    ProjectStatus = "Pendente"
	ProjectStatusEmAndamento ProjectStatus = "Em andamento"
	ProjectStatusInstalado   ProjectStatus = "Instalado"
	ProjectStatusConcluido   ProjectStatus = "Concluído"
	ProjectStatusCancelado   ProjectStatus = "Cancelado"
)

// ValidProjectStatus reports whether s is one of the known lifecycle values.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPendente, ProjectStatusEmAndamento, ProjectStatusInstalado,
		ProjectStatusConcluido, ProjectStatusCancelado:
		return true
	}
	return false
}

// Project is a customer project persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Monetary representation:
//   - PlannedTotalRevenue/PlannedTotalCost are budgets entered by the user.
//   - ActualTotalRevenue/ActualTotalCost are denormalized running totals
//     maintained by the item write paths. They may drift from the item
//     sums; readers that need an authoritative figure must sum the child
//     items instead of trusting these fields.
//
// StartDate is a calendar date (no time-of-day).

type Project struct {
	ID                  string        `json:"id"`
	UserID              string        `json:"user_id"`
	Name                string        `json:"name"`
	Client              string        `json:"client"`
	StartDate           time.Time     `json:"start_date"`
	Status              ProjectStatus `json:"status"`
	PlannedTotalRevenue float64       `json:"planned_total_revenue"`
	PlannedTotalCost    float64       `json:"planned_total_cost"`
	ActualTotalRevenue  float64       `json:"actual_total_revenue"`
	ActualTotalCost     float64       `json:"actual_total_cost"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
