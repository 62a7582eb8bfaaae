package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMeanStd(t *testing.T) {
	mean, std := CalculateMeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-9)
	assert.InDelta(t, 2.0, std, 1e-9)

	mean, std = CalculateMeanStd(nil)
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.0, std)

	mean, std = CalculateMeanStd([]float64{3.5})
	assert.Equal(t, 3.5, mean)
	assert.Equal(t, 0.0, std)
}

func TestCalculateCorrelationPerfect(t *testing.T) {
	x := []float64{0.01, -0.02, 0.03, 0.005, -0.015}
	y := make([]float64, len(x))
	copy(y, x)

	r, defined := CalculateCorrelation(x, y)
	require.True(t, defined)
	assert.InDelta(t, 1.0, r, 1e-9)
}

func TestCalculateCorrelationInverse(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{5, 4, 3, 2, 1}

	r, defined := CalculateCorrelation(x, y)
	require.True(t, defined)
	assert.InDelta(t, -1.0, r, 1e-9)
}

func TestCalculateCorrelationUndefined(t *testing.T) {
	// Zero variance in one series must report undefined, not 0.
	_, defined := CalculateCorrelation([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.False(t, defined)

	_, defined = CalculateCorrelation([]float64{1, 2, 3}, []float64{0, 0, 0})
	assert.False(t, defined)

	// Too small or mismatched samples.
	_, defined = CalculateCorrelation([]float64{1}, []float64{2})
	assert.False(t, defined)
	_, defined = CalculateCorrelation([]float64{1, 2}, []float64{1, 2, 3})
	assert.False(t, defined)
}

func TestCalculateCorrelationRange(t *testing.T) {
	x := []float64{0.4, -0.1, 0.2, 0.9, -0.5, 0.0}
	y := []float64{0.01, 0.02, -0.01, 0.03, -0.02, 0.005}

	r, defined := CalculateCorrelation(x, y)
	require.True(t, defined)
	assert.LessOrEqual(t, r, 1.0)
	assert.GreaterOrEqual(t, r, -1.0)
}

func TestCalculatePValue(t *testing.T) {
	_, defined := CalculatePValue(0.5, 2)
	assert.False(t, defined)

	p, defined := CalculatePValue(1.0, 10)
	require.True(t, defined)
	assert.Equal(t, 0.0, p)

	// No association: the p-value is 1 (t statistic is 0).
	p, defined = CalculatePValue(0.0, 10)
	require.True(t, defined)
	assert.InDelta(t, 1.0, p, 1e-9)

	// Strong association over a decent sample is significant.
	p, defined = CalculatePValue(0.9, 30)
	require.True(t, defined)
	assert.Less(t, p, 0.001)
	assert.False(t, math.IsNaN(p))
}

func TestCalculateZScore(t *testing.T) {
	assert.Equal(t, 2.0, CalculateZScore(9, 5, 2))
	assert.Equal(t, 0.0, CalculateZScore(9, 5, 0))
}
