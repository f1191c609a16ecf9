package engine

import (
	"fmt"
	"math"

	"github.com/cameronehrlich/deals-sub001/internal/models"
)

// ValidateFinancing rejects financing inputs the engine must never see:
// non-finite numbers, a non-positive price, negative rent or rate, or a
// down payment outside [0, 1]. This is the hard-failure boundary; past it
// the engine only degrades to sentinel values.
func ValidateFinancing(f models.FinancingInput) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"purchase_price", f.PurchasePrice},
		{"monthly_rent", f.MonthlyRent},
		{"down_payment_pct", f.DownPaymentPct},
		{"interest_rate", f.InterestRate},
	}
	for _, fld := range fields {
		if math.IsNaN(fld.value) || math.IsInf(fld.value, 0) {
			return fmt.Errorf("%s must be a finite number", fld.name)
		}
	}
	if f.PurchasePrice <= 0 {
		return fmt.Errorf("purchase_price must be positive, got %.2f", f.PurchasePrice)
	}
	if f.MonthlyRent < 0 {
		return fmt.Errorf("monthly_rent must not be negative, got %.2f", f.MonthlyRent)
	}
	if f.DownPaymentPct < 0 || f.DownPaymentPct > 1 {
		return fmt.Errorf("down_payment_pct must be between 0 and 1, got %.4f", f.DownPaymentPct)
	}
	if f.InterestRate < 0 {
		return fmt.Errorf("interest_rate must not be negative, got %.4f", f.InterestRate)
	}
	if f.LoanTermYears < 0 {
		return fmt.Errorf("loan_term_years must not be negative, got %d", f.LoanTermYears)
	}
	return nil
}

// ValidateAssumptions rejects expense assumptions with negative or
// non-finite rates. A rate of exactly zero is valid and zeroes out its
// line item.
func ValidateAssumptions(a models.ExpenseAssumptions) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"tax_rate", a.TaxRate},
		{"insurance_rate", a.InsuranceRate},
		{"vacancy_rate", a.VacancyRate},
		{"maintenance_rate", a.MaintenanceRate},
		{"capex_rate", a.CapExRate},
		{"management_rate", a.ManagementRate},
		{"monthly_hoa", a.MonthlyHOA},
	}
	for _, fld := range fields {
		if math.IsNaN(fld.value) || math.IsInf(fld.value, 0) {
			return fmt.Errorf("%s must be a finite number", fld.name)
		}
		if fld.value < 0 {
			return fmt.Errorf("%s must not be negative, got %.4f", fld.name, fld.value)
		}
	}
	return nil
}
