package models

// ExpenseBreakdown lists the monthly operating cost line items.
type ExpenseBreakdown struct {
	Taxes       float64 `json:"taxes"`
	Insurance   float64 `json:"insurance"`
	Vacancy     float64 `json:"vacancy"`
	Maintenance float64 `json:"maintenance"`
	CapEx       float64 `json:"capex"`
	Management  float64 `json:"management"`
	HOA         float64 `json:"hoa"`
	Total       float64 `json:"total"`
}

// ReturnMetrics is the complete cash-flow and return profile for a single
// purchase scenario. It is derived, immutable, and recomputed fresh for
// every input combination.
//
// BreakEvenOccupancy is reported raw: a value above 1 means the property
// cannot break even at full occupancy. GrossRentMultiplier and
// BreakEvenOccupancy report 0 when rent is zero; CashOnCashReturn reports
// 0 when no cash is invested. DSCR and MeetsLenderMinimum are set only
// when a lender qualification check was requested.
type ReturnMetrics struct {
	PurchasePrice        float64          `json:"purchase_price"`
	MonthlyRent          float64          `json:"monthly_rent"`
	DownPayment          float64          `json:"down_payment"`
	ClosingCosts         float64          `json:"closing_costs"`
	TotalCashInvested    float64          `json:"total_cash_invested"`
	LoanAmount           float64          `json:"loan_amount"`
	MonthlyMortgage      float64          `json:"monthly_mortgage"`
	Expenses             ExpenseBreakdown `json:"expenses"`
	TotalMonthlyExpenses float64          `json:"total_monthly_expenses"`
	MonthlyCashFlow      float64          `json:"monthly_cash_flow"`
	AnnualCashFlow       float64          `json:"annual_cash_flow"`
	NetOperatingIncome   float64          `json:"net_operating_income"`
	CashOnCashReturn     float64          `json:"cash_on_cash_return"`
	CapRate              float64          `json:"cap_rate"`
	RentToPrice          float64          `json:"rent_to_price"`
	GrossRentMultiplier  float64          `json:"gross_rent_multiplier"`
	BreakEvenOccupancy   float64          `json:"break_even_occupancy"`
	DSCR                 *float64         `json:"dscr,omitempty"`
	MeetsLenderMinimum   *bool            `json:"meets_lender_minimum,omitempty"`
}
