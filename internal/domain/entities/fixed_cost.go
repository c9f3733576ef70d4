package entities

import "time"

// FixedCost is a recurring-cost template persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// A FixedCost is a generator, not a ledger entry: each "generate" action
// emits one concrete CostItem dated at NextPaymentDate and rolls
// NextPaymentDate forward by one calendar month. The template itself is
// never marked paid.

type FixedCost struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Amount          float64   `json:"amount"`
	Frequency       Frequency `json:"frequency"`
	NextPaymentDate time.Time `json:"next_payment_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
