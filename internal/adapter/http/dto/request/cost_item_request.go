package request

import "finestra/internal/usecase"

// CostItemRequest is the payload for creating and updating cost items.
// Installments >= 2 on create turns the payload into an installment plan;
// the field is ignored on update.
type CostItemRequest struct {
	ProjectID       string  `json:"project_id"`
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	PlannedAmount   float64 `json:"planned_amount"`
	TransactionDate string  `json:"transaction_date"`
	IsRecurring     bool    `json:"is_recurring"`
	Installments    int     `json:"installments"`
}

func (r CostItemRequest) ToCreateInput() (usecase.CreateCostItemInput, error) {
	date, err := parseDate(r.TransactionDate)
	if err != nil {
		return usecase.CreateCostItemInput{}, err
	}
	return usecase.CreateCostItemInput{
		ProjectID:       r.ProjectID,
		Name:            r.Name,
		Category:        r.Category,
		PlannedAmount:   r.PlannedAmount,
		TransactionDate: date,
		IsRecurring:     r.IsRecurring,
		Installments:    r.Installments,
	}, nil
}

func (r CostItemRequest) ToUpdateInput() (usecase.UpdateCostItemInput, error) {
	date, err := parseDate(r.TransactionDate)
	if err != nil {
		return usecase.UpdateCostItemInput{}, err
	}
	return usecase.UpdateCostItemInput{
		Name:            r.Name,
		Category:        r.Category,
		PlannedAmount:   r.PlannedAmount,
		TransactionDate: date,
	}, nil
}

// MarkPaidRequest carries the realized amount of a payment or receipt.
type MarkPaidRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}
