package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateDeviation(t *testing.T) {
	d, err := EvaluateDeviation(1000, 1150, 10)
	require.NoError(t, err)
	assert.Equal(t, 150.0, d.Amount)
	assert.Equal(t, 15.0, d.Percentage)
	assert.True(t, d.IsSignificant)

	d, err = EvaluateDeviation(1000, 1050, 10)
	require.NoError(t, err)
	assert.Equal(t, 50.0, d.Amount)
	assert.Equal(t, 5.0, d.Percentage)
	assert.False(t, d.IsSignificant)
}

func TestEvaluateDeviation_ThresholdIsInclusive(t *testing.T) {
	d, err := EvaluateDeviation(1000, 1100, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, d.Percentage)
	assert.True(t, d.IsSignificant)
}

func TestEvaluateDeviation_UnderrunCountsToo(t *testing.T) {
	d, err := EvaluateDeviation(1000, 800, 10)
	require.NoError(t, err)
	assert.Equal(t, -200.0, d.Amount)
	assert.Equal(t, -20.0, d.Percentage)
	assert.True(t, d.IsSignificant)
}

func TestEvaluateDeviation_ZeroPredicted(t *testing.T) {
	_, err := EvaluateDeviation(0, 500, 10)
	assert.ErrorIs(t, err, ErrZeroPredictedCost)
}

func TestEvaluateDeviation_DefaultThreshold(t *testing.T) {
	d, err := EvaluateDeviation(1000, 1100, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDeviationThresholdPct, d.ThresholdPct)
	assert.True(t, d.IsSignificant)
}
