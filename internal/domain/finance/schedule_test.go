package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"finestra/internal/domain/entities"
)

func TestAddMonths_Clamping(t *testing.T) {
	cases := []struct {
		name   string
		in     time.Time
		months int
		want   time.Time
	}{
		{"leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"plain february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"thirty day month", date(2024, time.August, 31), 1, date(2024, time.September, 30)},
		{"no clamp needed", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"year boundary", date(2024, time.December, 31), 1, date(2025, time.January, 31)},
		{"multiple months", date(2024, time.January, 31), 3, date(2024, time.April, 30)},
		{"zero months", date(2024, time.June, 5), 0, date(2024, time.June, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddMonths(tc.in, tc.months))
		})
	}
}

func TestAddMonths_DropsTimeOfDay(t *testing.T) {
	in := time.Date(2024, time.March, 10, 17, 45, 3, 0, time.UTC)
	assert.Equal(t, date(2024, time.April, 10), AddMonths(in, 1))
}

func TestNextOccurrence(t *testing.T) {
	fc := entities.FixedCost{
		Frequency:       entities.FrequencyMonthly,
		NextPaymentDate: date(2024, time.January, 31),
	}
	assert.Equal(t, date(2024, time.February, 29), NextOccurrence(fc))
}
