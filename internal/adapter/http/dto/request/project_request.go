package request

import (
	"errors"
	"time"

	"finestra/internal/domain/entities"
	"finestra/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// parseDate parses the calendar-date fields of the API. Empty is allowed;
// the use cases decide whether a date is required.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ProjectRequest is the payload for creating and updating projects.
// Dates travel as "YYYY-MM-DD" strings.
type ProjectRequest struct {
	Name                string  `json:"name" binding:"required"`
	Client              string  `json:"client"`
	StartDate           string  `json:"start_date"`
	Status              string  `json:"status" binding:"required"`
	PlannedTotalRevenue float64 `json:"planned_total_revenue"`
	PlannedTotalCost    float64 `json:"planned_total_cost"`
}

func (r ProjectRequest) ToCreateInput() (usecase.CreateProjectInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return usecase.CreateProjectInput{}, err
	}
	return usecase.CreateProjectInput{
		Name:                r.Name,
		Client:              r.Client,
		StartDate:           start,
		Status:              entities.ProjectStatus(r.Status),
		PlannedTotalRevenue: r.PlannedTotalRevenue,
		PlannedTotalCost:    r.PlannedTotalCost,
	}, nil
}

func (r ProjectRequest) ToUpdateInput() (usecase.UpdateProjectInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return usecase.UpdateProjectInput{}, err
	}
	return usecase.UpdateProjectInput{
		Name:                r.Name,
		Client:              r.Client,
		StartDate:           start,
		Status:              entities.ProjectStatus(r.Status),
		PlannedTotalRevenue: r.PlannedTotalRevenue,
		PlannedTotalCost:    r.PlannedTotalCost,
	}, nil
}
