package response

import (
	"time"

	"finestra/internal/domain/entities"
	"finestra/internal/domain/finance"
)

// RevenueItemResponse carries a receivable plus its derived label
// (Recebido/Pendente/Atrasado), computed against today.
type RevenueItemResponse struct {
	ID                string    `json:"id"`
	ProjectID         string    `json:"project_id"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	PlannedAmount     float64   `json:"planned_amount"`
	ReceivedAmount    float64   `json:"received_amount"`
	TransactionDate   string    `json:"transaction_date"`
	IsInstallment     bool      `json:"is_installment"`
	InstallmentNumber int       `json:"installment_number,omitempty"`
	TotalInstallments int       `json:"total_installments,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromRevenueItem(it entities.RevenueItem, today time.Time) RevenueItemResponse {
	return RevenueItemResponse{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		Name:              it.Name,
		Status:            string(finance.RevenueStatus(it, today)),
		PlannedAmount:     it.PlannedAmount,
		ReceivedAmount:    it.ReceivedAmount,
		TransactionDate:   formatDate(it.TransactionDate),
		IsInstallment:     it.IsInstallment,
		InstallmentNumber: it.InstallmentNumber,
		TotalInstallments: it.TotalInstallments,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

func FromRevenueItems(items []entities.RevenueItem, today time.Time) []RevenueItemResponse {
	out := make([]RevenueItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromRevenueItem(it, today))
	}
	return out
}
