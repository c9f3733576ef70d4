package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"finestra/internal/domain/entities"
)

func TestCostStatus(t *testing.T) {
	today := date(2024, time.July, 10)

	cases := []struct {
		name string
		item entities.CostItem
		want PaymentStatus
	}{
		{
			"past due and unpaid",
			entities.CostItem{Status: entities.CostItemStatusPendente, TransactionDate: date(2024, time.July, 1)},
			StatusAtrasado,
		},
		{
			"future and unpaid",
			entities.CostItem{Status: entities.CostItemStatusPendente, TransactionDate: date(2024, time.July, 20)},
			StatusPendente,
		},
		{
			"due today is not overdue",
			entities.CostItem{Status: entities.CostItemStatusPendente, TransactionDate: date(2024, time.July, 10)},
			StatusPendente,
		},
		{
			"persisted flag wins",
			entities.CostItem{Status: entities.CostItemStatusPago, TransactionDate: date(2024, time.July, 1)},
			StatusPago,
		},
		{
			"realized amount wins even with pending flag",
			entities.CostItem{Status: entities.CostItemStatusPendente, ActualAmount: 50, TransactionDate: date(2024, time.July, 1)},
			StatusPago,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CostStatus(tc.item, today))
		})
	}
}

func TestRevenueStatus(t *testing.T) {
	today := date(2024, time.July, 10)

	assert.Equal(t, StatusRecebido, RevenueStatus(entities.RevenueItem{ReceivedAmount: 10, TransactionDate: date(2024, time.July, 1)}, today))
	assert.Equal(t, StatusAtrasado, RevenueStatus(entities.RevenueItem{TransactionDate: date(2024, time.July, 9)}, today))
	assert.Equal(t, StatusPendente, RevenueStatus(entities.RevenueItem{TransactionDate: date(2024, time.July, 11)}, today))
}

func TestSortCostItems(t *testing.T) {
	today := date(2024, time.July, 10)
	items := []entities.CostItem{
		{Name: "paid june", Status: entities.CostItemStatusPago, TransactionDate: date(2024, time.June, 15)},
		{Name: "pending", TransactionDate: date(2024, time.July, 20)},
		{Name: "paid july", Status: entities.CostItemStatusPago, TransactionDate: date(2024, time.July, 5)},
		{Name: "overdue", TransactionDate: date(2024, time.July, 1)},
	}

	SortCostItems(items, today)

	got := []string{items[0].Name, items[1].Name, items[2].Name, items[3].Name}
	assert.Equal(t, []string{"overdue", "pending", "paid july", "paid june"}, got)
}

func TestSortCostItems_UnpaidAscending(t *testing.T) {
	today := date(2024, time.July, 10)
	items := []entities.CostItem{
		{Name: "late b", TransactionDate: date(2024, time.July, 5)},
		{Name: "late a", TransactionDate: date(2024, time.July, 2)},
	}

	SortCostItems(items, today)

	assert.Equal(t, "late a", items[0].Name)
	assert.Equal(t, "late b", items[1].Name)
}

func TestWeekBounds(t *testing.T) {
	// 2024-07-10 is a Wednesday.
	monday, sunday := WeekBounds(date(2024, time.July, 10))
	assert.Equal(t, date(2024, time.July, 8), monday)
	assert.Equal(t, date(2024, time.July, 14), sunday)

	// A Monday is the start of its own week.
	monday, sunday = WeekBounds(date(2024, time.July, 8))
	assert.Equal(t, date(2024, time.July, 8), monday)
	assert.Equal(t, date(2024, time.July, 14), sunday)

	// A Sunday still belongs to the week that started the previous Monday.
	monday, sunday = WeekBounds(date(2024, time.July, 14))
	assert.Equal(t, date(2024, time.July, 8), monday)
	assert.Equal(t, date(2024, time.July, 14), sunday)
}

func TestCostsDueThisWeek_Boundaries(t *testing.T) {
	today := date(2024, time.July, 10)
	items := []entities.CostItem{
		{Name: "sunday in", TransactionDate: date(2024, time.July, 14)},
		{Name: "next monday out", TransactionDate: date(2024, time.July, 15)},
		{Name: "monday in", TransactionDate: date(2024, time.July, 8)},
		{Name: "previous sunday out", TransactionDate: date(2024, time.July, 7)},
		{Name: "paid still in", Status: entities.CostItemStatusPago, TransactionDate: date(2024, time.July, 9)},
	}

	week := CostsDueThisWeek(items, today)

	names := make([]string, 0, len(week))
	for _, it := range week {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"sunday in", "monday in", "paid still in"}, names)
}

func TestOverdueCosts_IgnoresWeek(t *testing.T) {
	today := date(2024, time.July, 10)
	items := []entities.CostItem{
		{Name: "old overdue", TransactionDate: date(2024, time.May, 1)},
		{Name: "this week overdue", TransactionDate: date(2024, time.July, 9)},
		{Name: "paid", ActualAmount: 5, TransactionDate: date(2024, time.May, 1)},
		{Name: "future", TransactionDate: date(2024, time.August, 1)},
	}

	overdue := OverdueCosts(items, today)

	names := make([]string, 0, len(overdue))
	for _, it := range overdue {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"old overdue", "this week overdue"}, names)
}
