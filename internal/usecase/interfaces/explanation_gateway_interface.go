package interfaces

import "context"

// CategoryDeviation is one predicted-vs-actual line of the per-category
// breakdown handed to the explanation service.
type CategoryDeviation struct {
	Category  string  `json:"category"`
	Predicted float64 `json:"predicted"`
	Actual    float64 `json:"actual"`
}

// DeviationExplanationInput is everything the external AI service is told
// about a significant cost deviation.
type DeviationExplanationInput struct {
	ProjectName         string              `json:"project_name"`
	ProjectDescription  string              `json:"project_description,omitempty"`
	PredictedCost       float64             `json:"predicted_cost"`
	ActualCost          float64             `json:"actual_cost"`
	DeviationAmount     float64             `json:"deviation_amount"`
	DeviationPercentage float64             `json:"deviation_percentage"`
	Categories          []CategoryDeviation `json:"categories,omitempty"`
}

// IExplanationGateway abstracts the external AI explanation service.
//
// The returned text is attached verbatim to the analysis result and never
// parsed. Callers treat a failure as "no explanation available", not as a
// hard error.
type IExplanationGateway interface {
	ExplainDeviation(ctx context.Context, input DeviationExplanationInput) (string, error)
}
