package engine

import "math"

// MonthlyPayment computes the level payment for a fixed-rate loan using
// the standard formula P*r*(1+r)^n / ((1+r)^n - 1). A non-positive
// principal means a cash purchase and returns 0; a zero rate falls back to
// a straight-line split of the principal over the term.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	if principal <= 0 {
		return 0
	}
	months := float64(years) * 12
	if months <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / months
	}
	r := annualRate / 12
	factor := math.Pow(1+r, months)
	return principal * r * factor / (factor - 1)
}
