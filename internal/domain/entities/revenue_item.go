package entities

import "time"

// RevenueItem is a receivable persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//   - GSI2 (user_id-index): user_id
//
// Revenue is always project-scoped: ProjectID is required. There is no
// persisted status flag; the Recebido/Pendente/Atrasado label is derived
// at read time from ReceivedAmount and TransactionDate.

type RevenueItem struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	ProjectID         string    `json:"project_id"`
	Name              string    `json:"name"`
	PlannedAmount     float64   `json:"planned_amount"`
	ReceivedAmount    float64   `json:"received_amount"`
	TransactionDate   time.Time `json:"transaction_date"`
	IsInstallment     bool      `json:"is_installment"`
	InstallmentNumber int       `json:"installment_number,omitempty"`
	TotalInstallments int       `json:"total_installments,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
