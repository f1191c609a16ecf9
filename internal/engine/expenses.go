package engine

import "github.com/cameronehrlich/deals-sub001/internal/models"

// EstimateExpenses derives the monthly operating cost line items from the
// purchase price, the expected rent, and the configured assumptions.
// Price-denominated rates are annual and divided by 12; vacancy and
// management scale with rent and vanish when rent is zero.
func EstimateExpenses(price, rent float64, a models.ExpenseAssumptions) models.ExpenseBreakdown {
	b := models.ExpenseBreakdown{
		Taxes:       price * a.TaxRate / 12,
		Insurance:   price * a.InsuranceRate / 12,
		Vacancy:     rent * a.VacancyRate,
		Maintenance: price * a.MaintenanceRate / 12,
		CapEx:       price * a.CapExRate / 12,
		Management:  rent * a.ManagementRate,
		HOA:         a.MonthlyHOA,
	}
	b.Total = b.Taxes + b.Insurance + b.Vacancy + b.Maintenance + b.CapEx + b.Management + b.HOA
	return b
}
