package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"finestra/internal/domain/finance"
	"finestra/internal/usecase/interfaces"
)

// ErrMissingPredictedCost is returned when a project has no planned cost
// to measure against; the analysis is skipped rather than dividing by
// zero.
var ErrMissingPredictedCost = errors.New("project has no planned cost to compare against")

// DeviationAnalysis is the result of comparing a project's realized cost
// against its budget. Explanation is free text from the external AI
// service, attached verbatim; it is empty when the deviation is not
// significant or when the service was unavailable.
type DeviationAnalysis struct {
	ProjectID     string            `json:"project_id"`
	ProjectName   string            `json:"project_name"`
	PredictedCost float64           `json:"predicted_cost"`
	ActualCost    float64           `json:"actual_cost"`
	Deviation     finance.Deviation `json:"deviation"`
	Explanation   string            `json:"explanation,omitempty"`
}

// IDeviationUseCase runs the cost-deviation assistant for one project.

type IDeviationUseCase interface {
	AnalyzeProject(ctx context.Context, userID, projectID string, thresholdPct float64) (DeviationAnalysis, error)
}

type DeviationUseCase struct {
	projectRepo interfaces.IProjectRepository
	costRepo    interfaces.ICostItemRepository
	gateway     interfaces.IExplanationGateway
}

var _ IDeviationUseCase = (*DeviationUseCase)(nil)

func NewDeviationUseCase(
	projectRepo interfaces.IProjectRepository,
	costRepo interfaces.ICostItemRepository,
	gateway interfaces.IExplanationGateway,
) *DeviationUseCase {
	return &DeviationUseCase{projectRepo: projectRepo, costRepo: costRepo, gateway: gateway}
}

// AnalyzeProject compares the project's planned cost against the sum of
// its items' realized amounts. The denormalized ActualTotalCost on the
// project is deliberately ignored: the item sum is authoritative and the
// denormalized field may drift.
func (u *DeviationUseCase) AnalyzeProject(ctx context.Context, userID, projectID string, thresholdPct float64) (DeviationAnalysis, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DeviationAnalysis{}, ErrInvalidUserID
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return DeviationAnalysis{}, ErrInvalidProjectID
	}

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return DeviationAnalysis{}, err
	}
	if project.ID == "" || project.UserID != userID {
		return DeviationAnalysis{}, ErrProjectNotFound
	}

	costs, err := u.costRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return DeviationAnalysis{}, err
	}
	costs = ownedCostItems(costs, userID)

	actual := 0.0
	predictedByCategory := make(map[string]float64)
	actualByCategory := make(map[string]float64)
	for _, c := range costs {
		actual += c.ActualAmount
		predictedByCategory[c.Category] += c.PlannedAmount
		actualByCategory[c.Category] += c.ActualAmount
	}

	dev, err := finance.EvaluateDeviation(project.PlannedTotalCost, actual, thresholdPct)
	if err != nil {
		if errors.Is(err, finance.ErrZeroPredictedCost) {
			return DeviationAnalysis{}, ErrMissingPredictedCost
		}
		return DeviationAnalysis{}, err
	}

	result := DeviationAnalysis{
		ProjectID:     project.ID,
		ProjectName:   project.Name,
		PredictedCost: project.PlannedTotalCost,
		ActualCost:    actual,
		Deviation:     dev,
	}
	if !dev.IsSignificant || u.gateway == nil {
		return result, nil
	}

	input := interfaces.DeviationExplanationInput{
		ProjectName:         project.Name,
		ProjectDescription:  project.Client,
		PredictedCost:       project.PlannedTotalCost,
		ActualCost:          actual,
		DeviationAmount:     dev.Amount,
		DeviationPercentage: dev.Percentage,
		Categories:          categoryDeviations(predictedByCategory, actualByCategory),
	}

	log.Printf("[deviation][usecase] requesting explanation project_id=%s pct=%.2f", project.ID, dev.Percentage)
	explanation, err := u.gateway.ExplainDeviation(ctx, input)
	if err != nil {
		// The numbers still stand without the narrative.
		log.Printf("[deviation][usecase] explanation unavailable project_id=%s err=%v", project.ID, err)
		return result, nil
	}
	result.Explanation = explanation
	return result, nil
}

func categoryDeviations(predicted, actual map[string]float64) []interfaces.CategoryDeviation {
	names := make([]string, 0, len(predicted))
	seen := make(map[string]bool, len(predicted))
	for name := range predicted {
		names = append(names, name)
		seen[name] = true
	}
	for name := range actual {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]interfaces.CategoryDeviation, 0, len(names))
	for _, name := range names {
		out = append(out, interfaces.CategoryDeviation{
			Category:  name,
			Predicted: predicted[name],
			Actual:    actual[name],
		})
	}
	return out
}
