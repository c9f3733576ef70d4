package finance

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 2")
	ErrInvalidTotalAmount      = errors.New("total amount must be positive")
	ErrMissingFirstDate        = errors.New("first installment date is required")
)

// Installment is one line of a generated installment plan. The caller maps
// it onto a CostItem or RevenueItem.
type Installment struct {
	Name    string
	Amount  float64
	DueDate time.Time
	Number  int
	Total   int
}

// SplitInstallments divides totalAmount into count monthly installments
// starting at firstDate.
//
// Every installment carries totalAmount/count floored to 2 decimal places,
// except the last, which absorbs the rounding remainder so the emitted
// amounts always sum to totalAmount exactly. Dates advance one calendar
// month at a time from firstDate, clamping at month end. Names are the
// base name suffixed with " - Parcela i/N".
//
// Validation failures return an error and no items; the plan is never
// partially emitted.
func SplitInstallments(baseName string, totalAmount float64, count int, firstDate time.Time) ([]Installment, error) {
	if count < 2 {
		return nil, ErrInvalidInstallmentCount
	}
	if totalAmount <= 0 {
		return nil, ErrInvalidTotalAmount
	}
	if firstDate.IsZero() {
		return nil, ErrMissingFirstDate
	}

	total := decimal.NewFromFloat(totalAmount)
	per := total.Div(decimal.NewFromInt(int64(count))).RoundDown(2)
	last := total.Sub(per.Mul(decimal.NewFromInt(int64(count - 1))))

	items := make([]Installment, 0, count)
	for i := 0; i < count; i++ {
		amount := per
		if i == count-1 {
			amount = last
		}
		items = append(items, Installment{
			Name:    fmt.Sprintf("%s - Parcela %d/%d", baseName, i+1, count),
			Amount:  amount.InexactFloat64(),
			DueDate: AddMonths(firstDate, i),
			Number:  i + 1,
			Total:   count,
		})
	}
	return items, nil
}
