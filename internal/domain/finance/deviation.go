package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultDeviationThresholdPct is the significance threshold applied when
// the caller does not supply one.
const DefaultDeviationThresholdPct = 10.0

var ErrZeroPredictedCost = errors.New("predicted cost must be non-zero")

// Deviation is the outcome of comparing a project's actual cost against
// its predicted cost.
type Deviation struct {
	Amount        float64 `json:"amount"`
	Percentage    float64 `json:"percentage"`
	ThresholdPct  float64 `json:"threshold_pct"`
	IsSignificant bool    `json:"is_significant"`
}

// EvaluateDeviation computes the signed cost deviation and whether it
// crosses the threshold. A zero predicted cost is rejected up front:
// there is no percentage to compute, so the analysis is skipped rather
// than producing NaN. thresholdPct values <= 0 fall back to the default.
func EvaluateDeviation(predictedCost, actualCost, thresholdPct float64) (Deviation, error) {
	if predictedCost == 0 {
		return Deviation{}, ErrZeroPredictedCost
	}
	if thresholdPct <= 0 {
		thresholdPct = DefaultDeviationThresholdPct
	}

	predicted := decimal.NewFromFloat(predictedCost)
	amount := decimal.NewFromFloat(actualCost).Sub(predicted)
	pct := amount.Div(predicted).Mul(decimal.NewFromInt(100))

	d := Deviation{
		Amount:       amount.InexactFloat64(),
		Percentage:   pct.InexactFloat64(),
		ThresholdPct: thresholdPct,
	}
	d.IsSignificant = pct.Abs().GreaterThanOrEqual(decimal.NewFromFloat(thresholdPct))
	return d, nil
}
