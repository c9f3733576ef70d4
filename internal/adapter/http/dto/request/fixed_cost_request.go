package request

import "finestra/internal/usecase"

// FixedCostRequest is the payload for creating and updating recurring-cost
// templates.
type FixedCostRequest struct {
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Amount          float64 `json:"amount"`
	NextPaymentDate string  `json:"next_payment_date"`
}

func (r FixedCostRequest) ToInput() (usecase.CreateFixedCostInput, error) {
	date, err := parseDate(r.NextPaymentDate)
	if err != nil {
		return usecase.CreateFixedCostInput{}, err
	}
	return usecase.CreateFixedCostInput{
		Name:            r.Name,
		Category:        r.Category,
		Amount:          r.Amount,
		NextPaymentDate: date,
	}, nil
}

// CostCategoryRequest is the payload for creating a cost category.
type CostCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// DeviationRequest carries the optional significance threshold of a
// deviation analysis. Zero means "use the default".
type DeviationRequest struct {
	ThresholdPct float64 `json:"threshold_pct"`
}
