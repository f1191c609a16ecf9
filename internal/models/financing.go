package models

// FinancingInput describes the purchase and loan terms for one evaluation.
// Inputs are immutable; the engine copies before perturbing them.
type FinancingInput struct {
	PurchasePrice  float64 `json:"purchase_price"`
	MonthlyRent    float64 `json:"monthly_rent"`
	DownPaymentPct float64 `json:"down_payment_pct"`
	InterestRate   float64 `json:"interest_rate"`
	LoanTermYears  int     `json:"loan_term_years"`
}
