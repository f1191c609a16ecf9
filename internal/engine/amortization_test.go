package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment_ReferenceFigures(t *testing.T) {
	// Reference figures from published mortgage calculators.
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		expected  float64
	}{
		{"200k at 4% for 25 years", 200000, 0.04, 25, 1055.67},
		{"300k at 5% for 30 years", 300000, 0.05, 30, 1610.46},
		{"150k at 3.5% for 20 years", 150000, 0.035, 20, 869.94},
		{"500k at 6% for 25 years", 500000, 0.06, 25, 3221.51},
		{"280k at 7% for 30 years", 280000, 0.07, 30, 1862.85},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, MonthlyPayment(tc.principal, tc.rate, tc.years), 0.01)
		})
	}
}

func TestMonthlyPayment_ZeroRateIsStraightLine(t *testing.T) {
	require.Equal(t, 100000.0/120.0, MonthlyPayment(100000, 0, 10))
	require.Equal(t, 360000.0/360.0, MonthlyPayment(360000, 0, 30))
}

func TestMonthlyPayment_NoLoan(t *testing.T) {
	assert.Zero(t, MonthlyPayment(0, 0.07, 30))
	assert.Zero(t, MonthlyPayment(-5000, 0.07, 30))
	assert.Zero(t, MonthlyPayment(100000, 0.07, 0))
}

func TestMonthlyPayment_StableAcrossRange(t *testing.T) {
	for rate := 0.0; rate <= 0.20; rate += 0.02 {
		for years := 1; years <= 40; years++ {
			p := MonthlyPayment(250000, rate, years)
			require.False(t, math.IsNaN(p) || math.IsInf(p, 0), "rate=%.2f years=%d", rate, years)
			require.Greater(t, p, 0.0, "rate=%.2f years=%d", rate, years)
		}
	}
}
