package response

import (
	"time"

	"finestra/internal/domain/entities"
)

type FixedCostResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Amount          float64   `json:"amount"`
	Frequency       string    `json:"frequency"`
	NextPaymentDate string    `json:"next_payment_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromFixedCost(fc entities.FixedCost) FixedCostResponse {
	return FixedCostResponse{
		ID:              fc.ID,
		Name:            fc.Name,
		Category:        fc.Category,
		Amount:          fc.Amount,
		Frequency:       string(fc.Frequency),
		NextPaymentDate: formatDate(fc.NextPaymentDate),
		CreatedAt:       fc.CreatedAt,
		UpdatedAt:       fc.UpdatedAt,
	}
}

func FromFixedCosts(templates []entities.FixedCost) []FixedCostResponse {
	out := make([]FixedCostResponse, 0, len(templates))
	for _, fc := range templates {
		out = append(out, FromFixedCost(fc))
	}
	return out
}

// GeneratedChargeResponse is the result of a fixed-cost rollover: the
// concrete item that was emitted and the template with its advanced date.
type GeneratedChargeResponse struct {
	Item      CostItemResponse  `json:"item"`
	FixedCost FixedCostResponse `json:"fixed_cost"`
}

type CostCategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCostCategory(c entities.CostCategory) CostCategoryResponse {
	return CostCategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func FromCostCategories(categories []entities.CostCategory) []CostCategoryResponse {
	out := make([]CostCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, FromCostCategory(c))
	}
	return out
}
