package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finestra/internal/domain/entities"
)

func TestComputeMetrics(t *testing.T) {
	revenues := []entities.RevenueItem{
		{ReceivedAmount: 1000},
		{ReceivedAmount: 500},
		{ReceivedAmount: 0, PlannedAmount: 300}, // planned only, not realized
	}
	costs := []entities.CostItem{
		{ActualAmount: 600},
		{ActualAmount: 150},
	}

	m := ComputeMetrics(revenues, costs)

	assert.Equal(t, 1500.0, m.ActualTotalRevenue)
	assert.Equal(t, 750.0, m.ActualTotalCost)
	assert.Equal(t, 750.0, m.ActualProfit)
	assert.Equal(t, 50.0, m.MarginPercentage)
}

func TestComputeMetrics_MarginGuard(t *testing.T) {
	costs := []entities.CostItem{{ActualAmount: 400}}

	m := ComputeMetrics(nil, costs)

	assert.Equal(t, 0.0, m.ActualTotalRevenue)
	assert.Equal(t, -400.0, m.ActualProfit)
	assert.Equal(t, 0.0, m.MarginPercentage)
}

func TestMonthlyCostSeries(t *testing.T) {
	today := date(2024, time.July, 10)
	items := []entities.CostItem{
		{TransactionDate: date(2024, time.July, 2), PlannedAmount: 100, ActualAmount: 90},
		{TransactionDate: date(2024, time.July, 25), PlannedAmount: 50},
		{TransactionDate: date(2024, time.February, 1), PlannedAmount: 10, ActualAmount: 10},
		{TransactionDate: date(2024, time.January, 31), PlannedAmount: 999}, // before the window
		{TransactionDate: date(2024, time.August, 1), PlannedAmount: 999},   // after the window
	}

	series := MonthlyCostSeries(items, today, 6)

	require.Len(t, series, 6)
	assert.Equal(t, "2024-02", series[0].Month)
	assert.Equal(t, "2024-07", series[5].Month)

	assert.Equal(t, 10.0, series[0].Planned)
	assert.Equal(t, 10.0, series[0].Actual)
	assert.Equal(t, 150.0, series[5].Planned)
	assert.Equal(t, 90.0, series[5].Actual)

	// Months with no items are present with zero values.
	assert.Equal(t, MonthlyPoint{Month: "2024-04"}, series[2])
}

func TestMonthlyRevenueSeries(t *testing.T) {
	today := date(2024, time.December, 31)
	items := []entities.RevenueItem{
		{TransactionDate: date(2024, time.December, 10), PlannedAmount: 200, ReceivedAmount: 180},
		{TransactionDate: date(2024, time.June, 1), PlannedAmount: 999}, // before the window
	}

	series := MonthlyRevenueSeries(items, today, 6)

	require.Len(t, series, 6)
	assert.Equal(t, "2024-07", series[0].Month)
	assert.Equal(t, "2024-12", series[5].Month)
	assert.Equal(t, 200.0, series[5].Planned)
	assert.Equal(t, 180.0, series[5].Actual)
}

func TestCategoryBreakdown_PrefersRealizedAmount(t *testing.T) {
	costs := []entities.CostItem{
		{Category: "Materiais", PlannedAmount: 100, ActualAmount: 80},
		{Category: "Materiais", PlannedAmount: 60},
		{Category: "Marketing", PlannedAmount: 200},
		{Category: "Software", PlannedAmount: 50, ActualAmount: 55},
	}

	breakdown := CategoryBreakdown(costs)

	require.Len(t, breakdown, 3)
	assert.Equal(t, CategoryTotal{Category: "Marketing", Amount: 200}, breakdown[0])
	assert.Equal(t, CategoryTotal{Category: "Materiais", Amount: 140}, breakdown[1])
	assert.Equal(t, CategoryTotal{Category: "Software", Amount: 55}, breakdown[2])
}
