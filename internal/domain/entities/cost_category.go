package entities

import "time"

// CostCategory is a user-scoped label for grouping costs.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type CostCategory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultCostCategoryNames are seeded for every user on first access.
func DefaultCostCategoryNames() []string {
	return []string{"Mão de obra", "Materiais", "Marketing", "Software", "Outros"}
}
