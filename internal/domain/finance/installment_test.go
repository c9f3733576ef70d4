package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSplitInstallments_RemainderOnLast(t *testing.T) {
	items, err := SplitInstallments("Materiais", 100.00, 3, date(2024, time.July, 15))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 33.33, items[0].Amount)
	assert.Equal(t, 33.33, items[1].Amount)
	assert.Equal(t, 33.34, items[2].Amount)

	assert.Equal(t, "Materiais - Parcela 1/3", items[0].Name)
	assert.Equal(t, "Materiais - Parcela 2/3", items[1].Name)
	assert.Equal(t, "Materiais - Parcela 3/3", items[2].Name)

	assert.Equal(t, date(2024, time.July, 15), items[0].DueDate)
	assert.Equal(t, date(2024, time.August, 15), items[1].DueDate)
	assert.Equal(t, date(2024, time.September, 15), items[2].DueDate)
}

func TestSplitInstallments_SumInvariant(t *testing.T) {
	cases := []struct {
		total float64
		count int
	}{
		{100.00, 3},
		{999.99, 7},
		{0.05, 2},
		{1234.56, 12},
		{10.00, 6},
	}
	for _, tc := range cases {
		items, err := SplitInstallments("x", tc.total, tc.count, date(2024, time.January, 1))
		require.NoError(t, err)
		require.Len(t, items, tc.count)

		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(decimal.NewFromFloat(it.Amount))
		}
		assert.True(t, sum.Equal(decimal.NewFromFloat(tc.total)),
			"total=%v count=%d sum=%s", tc.total, tc.count, sum)
	}
}

func TestSplitInstallments_MonthEndClamping(t *testing.T) {
	items, err := SplitInstallments("Aluguel", 300, 3, date(2024, time.January, 31))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 31), items[0].DueDate)
	assert.Equal(t, date(2024, time.February, 29), items[1].DueDate)
	// Clamping does not stick: March recovers the original day-of-month.
	assert.Equal(t, date(2024, time.March, 31), items[2].DueDate)
}

func TestSplitInstallments_Validation(t *testing.T) {
	_, err := SplitInstallments("x", 100, 1, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrInvalidInstallmentCount)

	_, err = SplitInstallments("x", 0, 3, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrInvalidTotalAmount)

	_, err = SplitInstallments("x", -5, 3, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrInvalidTotalAmount)

	_, err = SplitInstallments("x", 100, 3, time.Time{})
	assert.ErrorIs(t, err, ErrMissingFirstDate)
}

func TestSplitInstallments_NumberingIsOneBased(t *testing.T) {
	items, err := SplitInstallments("x", 50, 2, date(2024, time.May, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, items[0].Number)
	assert.Equal(t, 2, items[1].Number)
	assert.Equal(t, 2, items[0].Total)
	assert.Equal(t, 2, items[1].Total)
}
