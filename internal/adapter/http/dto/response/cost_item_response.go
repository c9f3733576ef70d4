package response

import (
	"time"

	"finestra/internal/domain/entities"
	"finestra/internal/domain/finance"
)

// CostItemResponse carries a payable plus its derived label. Status is
// the display value (Pago/Pendente/Atrasado) computed against today, not
// the persisted flag.
type CostItemResponse struct {
	ID                string    `json:"id"`
	ProjectID         string    `json:"project_id,omitempty"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Status            string    `json:"status"`
	PlannedAmount     float64   `json:"planned_amount"`
	ActualAmount      float64   `json:"actual_amount"`
	TransactionDate   string    `json:"transaction_date"`
	IsInstallment     bool      `json:"is_installment"`
	InstallmentNumber int       `json:"installment_number,omitempty"`
	TotalInstallments int       `json:"total_installments,omitempty"`
	IsRecurring       bool      `json:"is_recurring"`
	Frequency         string    `json:"frequency,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromCostItem(it entities.CostItem, today time.Time) CostItemResponse {
	return CostItemResponse{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		Name:              it.Name,
		Category:          it.Category,
		Status:            string(finance.CostStatus(it, today)),
		PlannedAmount:     it.PlannedAmount,
		ActualAmount:      it.ActualAmount,
		TransactionDate:   formatDate(it.TransactionDate),
		IsInstallment:     it.IsInstallment,
		InstallmentNumber: it.InstallmentNumber,
		TotalInstallments: it.TotalInstallments,
		IsRecurring:       it.IsRecurring,
		Frequency:         string(it.Frequency),
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

func FromCostItems(items []entities.CostItem, today time.Time) []CostItemResponse {
	out := make([]CostItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCostItem(it, today))
	}
	return out
}
