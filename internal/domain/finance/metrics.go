package finance

import (
	"sort"
	"time"

	"finestra/internal/domain/entities"
)

// Metrics are the realized totals shown on the overview cards. They are
// always recomputed from the item collections, never read from the
// denormalized project totals.
type Metrics struct {
	ActualTotalRevenue float64 `json:"actual_total_revenue"`
	ActualTotalCost    float64 `json:"actual_total_cost"`
	ActualProfit       float64 `json:"actual_profit"`
	MarginPercentage   float64 `json:"margin_percentage"`
}

// ComputeMetrics reduces the given receivables and payables into realized
// totals. Margin is 0 when no revenue has been received; a zero
// denominator is an expected state, not an error.
func ComputeMetrics(revenues []entities.RevenueItem, costs []entities.CostItem) Metrics {
	var m Metrics
	for _, r := range revenues {
		m.ActualTotalRevenue += r.ReceivedAmount
	}
	for _, c := range costs {
		m.ActualTotalCost += c.ActualAmount
	}
	m.ActualProfit = m.ActualTotalRevenue - m.ActualTotalCost
	if m.ActualTotalRevenue > 0 {
		m.MarginPercentage = m.ActualProfit / m.ActualTotalRevenue * 100
	}
	return m
}

// MonthlyPoint is one month of a planned-vs-actual time series. Month is
// formatted "YYYY-MM".
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
}

// MonthlyCostSeries buckets payables by transaction month over the
// trailing window ending at today's month, oldest month first.
func MonthlyCostSeries(items []entities.CostItem, today time.Time, months int) []MonthlyPoint {
	series, index := emptySeries(today, months)
	for _, it := range items {
		if i, ok := index[monthKey(it.TransactionDate)]; ok {
			series[i].Planned += it.PlannedAmount
			series[i].Actual += it.ActualAmount
		}
	}
	return series
}

// MonthlyRevenueSeries buckets receivables by transaction month over the
// trailing window ending at today's month, oldest month first.
func MonthlyRevenueSeries(items []entities.RevenueItem, today time.Time, months int) []MonthlyPoint {
	series, index := emptySeries(today, months)
	for _, it := range items {
		if i, ok := index[monthKey(it.TransactionDate)]; ok {
			series[i].Planned += it.PlannedAmount
			series[i].Actual += it.ReceivedAmount
		}
	}
	return series
}

func emptySeries(today time.Time, months int) ([]MonthlyPoint, map[string]int) {
	if months < 1 {
		months = 1
	}
	series := make([]MonthlyPoint, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := AddMonths(firstOfMonth(today), i-months+1)
		key := monthKey(m)
		series[i] = MonthlyPoint{Month: key}
		index[key] = i
	}
	return series, index
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// CategoryTotal is one slice of the category breakdown chart.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategoryBreakdown groups payables by category using the best known
// value per item: the realized amount when there is one, the planned
// amount otherwise. Categories are ordered by amount descending, name
// ascending on ties, so the chart is deterministic.
func CategoryBreakdown(costs []entities.CostItem) []CategoryTotal {
	totals := make(map[string]float64)
	for _, c := range costs {
		v := c.ActualAmount
		if v <= 0 {
			v = c.PlannedAmount
		}
		totals[c.Category] += v
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, amount := range totals {
		out = append(out, CategoryTotal{Category: cat, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}
