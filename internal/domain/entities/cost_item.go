package entities

import "time"

// CostItemStatus is the persisted payment flag of a cost item.
//
// The label shown in lists (Pago/Pendente/Atrasado) is derived at read
// time by the finance package from this flag, the realized amount and the
// transaction date; only Pendente/Pago are ever stored.

type CostItemStatus string

const (
	CostItemStatusPendente CostItemStatus = "Pendente"
	CostItemStatusPago     CostItemStatus = "Pago"
)

// Frequency of a recurring cost. Only monthly recurrence is supported.

type Frequency string

const FrequencyMonthly Frequency = "monthly"

// CostItem is a payable persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (project_id-index): project_id
//
// ProjectID is optional: an empty value marks a company-level cost that is
// not tied to any project.
//
// Invariant: an item is never both an installment and a recurring charge.
// TransactionDate is a calendar date (no time-of-day).

type CostItem struct {
	ID                string         `json:"id"`
	UserID            string         `json:"user_id"`
	ProjectID         string         `json:"project_id,omitempty"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	Status            CostItemStatus `json:"status"`
	PlannedAmount     float64        `json:"planned_amount"`
	ActualAmount      float64        `json:"actual_amount"`
	TransactionDate   time.Time      `json:"transaction_date"`
	IsInstallment     bool           `json:"is_installment"`
	InstallmentNumber int            `json:"installment_number,omitempty"`
	TotalInstallments int            `json:"total_installments,omitempty"`
	IsRecurring       bool           `json:"is_recurring"`
	Frequency         Frequency      `json:"frequency,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
