package models

// Risk ratings assigned by the stress-test engine.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ScenarioOutcome is the cash-flow result of one named stress scenario.
type ScenarioOutcome struct {
	Name            string  `json:"name"`
	Label           string  `json:"label"`
	MonthlyCashFlow float64 `json:"monthly_cash_flow"`
	AnnualCashFlow  float64 `json:"annual_cash_flow"`
	CashOnCash      float64 `json:"cash_on_cash"`
}

// SensitivityResult holds the base case, the named single-factor shocks,
// the two composite stress scenarios, and derived resilience figures.
// Break-even fields are nil when no crossing exists inside the search
// range; that is an answer, not a failure.
type SensitivityResult struct {
	Base                  ScenarioOutcome   `json:"base"`
	Scenarios             []ScenarioOutcome `json:"scenarios"`
	Moderate              ScenarioOutcome   `json:"moderate"`
	Severe                ScenarioOutcome   `json:"severe"`
	SurvivesModerate      bool              `json:"survives_moderate"`
	SurvivesSevere        bool              `json:"survives_severe"`
	RiskRating            string            `json:"risk_rating"`
	BreakEvenInterestRate *float64          `json:"break_even_interest_rate,omitempty"`
	BreakEvenVacancyRate  *float64          `json:"break_even_vacancy_rate,omitempty"`
	BreakEvenMonthlyRent  *float64          `json:"break_even_monthly_rent,omitempty"`
}
