package models

// ExpenseAssumptions holds the percentage and fixed parameters behind the
// recurring operating-cost estimate. Tax, insurance, maintenance, and capex
// are annual rates on the purchase price; vacancy and management are rates
// on the monthly rent; HOA is a fixed monthly amount. A rate of zero simply
// zeroes out that line item.
type ExpenseAssumptions struct {
	TaxRate         float64 `json:"tax_rate"`
	InsuranceRate   float64 `json:"insurance_rate"`
	VacancyRate     float64 `json:"vacancy_rate"`
	MaintenanceRate float64 `json:"maintenance_rate"`
	CapExRate       float64 `json:"capex_rate"`
	ManagementRate  float64 `json:"management_rate"`
	MonthlyHOA      float64 `json:"monthly_hoa"`
}

// DefaultAssumptions returns the documented default expense assumptions:
// tax 1.2%, insurance 0.5%, vacancy 8%, maintenance 1%, capex 1%,
// management 10%, no HOA.
func DefaultAssumptions() ExpenseAssumptions {
	return ExpenseAssumptions{
		TaxRate:         0.012,
		InsuranceRate:   0.005,
		VacancyRate:     0.08,
		MaintenanceRate: 0.01,
		CapExRate:       0.01,
		ManagementRate:  0.10,
		MonthlyHOA:      0,
	}
}
