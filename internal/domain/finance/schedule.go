// Package finance holds the derivation rules shared by the dashboards and
// the payable/receivable tabs: installment splitting, recurring-cost
// rollover, status derivation and the aggregate formulas. Everything in
// this package is a pure function over entity snapshots plus an explicit
// reference date; callers decide when to recompute.
package finance

import (
	"time"

	"finestra/internal/domain/entities"
)

// DateOnly truncates t to a calendar date in UTC. All comparisons in this
// package are date-only; time-of-day never participates.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths advances d by the given number of calendar months, clamping
// the day to the last day of the target month. This is a calendar add,
// not a 30-day add: Jan 31 + 1 month is Feb 28 (29 in leap years).
func AddMonths(d time.Time, months int) time.Time {
	d = DateOnly(d)
	target := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := d.Day()
	if last := lastDayOfMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(t time.Time) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NextOccurrence returns the payment date that follows the template's
// current NextPaymentDate. Only monthly frequency exists today; unknown
// values are treated as monthly rather than failing a rollover.
func NextOccurrence(fc entities.FixedCost) time.Time {
	return AddMonths(fc.NextPaymentDate, 1)
}
