package response

import (
	"time"

	"finestra/internal/domain/entities"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

type ProjectResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Client              string    `json:"client,omitempty"`
	StartDate           string    `json:"start_date,omitempty"`
	Status              string    `json:"status"`
	PlannedTotalRevenue float64   `json:"planned_total_revenue"`
	PlannedTotalCost    float64   `json:"planned_total_cost"`
	ActualTotalRevenue  float64   `json:"actual_total_revenue"`
	ActualTotalCost     float64   `json:"actual_total_cost"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Client:              p.Client,
		StartDate:           formatDate(p.StartDate),
		Status:              string(p.Status),
		PlannedTotalRevenue: p.PlannedTotalRevenue,
		PlannedTotalCost:    p.PlannedTotalCost,
		ActualTotalRevenue:  p.ActualTotalRevenue,
		ActualTotalCost:     p.ActualTotalCost,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
