package request

import "finestra/internal/usecase"

// RevenueItemRequest is the payload for creating and updating revenue
// items. The owning project comes from the URL, not the body.
type RevenueItemRequest struct {
	Name            string  `json:"name" binding:"required"`
	PlannedAmount   float64 `json:"planned_amount"`
	TransactionDate string  `json:"transaction_date"`
	Installments    int     `json:"installments"`
}

func (r RevenueItemRequest) ToCreateInput() (usecase.CreateRevenueItemInput, error) {
	date, err := parseDate(r.TransactionDate)
	if err != nil {
		return usecase.CreateRevenueItemInput{}, err
	}
	return usecase.CreateRevenueItemInput{
		Name:            r.Name,
		PlannedAmount:   r.PlannedAmount,
		TransactionDate: date,
		Installments:    r.Installments,
	}, nil
}

func (r RevenueItemRequest) ToUpdateInput() (usecase.UpdateRevenueItemInput, error) {
	date, err := parseDate(r.TransactionDate)
	if err != nil {
		return usecase.UpdateRevenueItemInput{}, err
	}
	return usecase.UpdateRevenueItemInput{
		Name:            r.Name,
		PlannedAmount:   r.PlannedAmount,
		TransactionDate: date,
	}, nil
}
