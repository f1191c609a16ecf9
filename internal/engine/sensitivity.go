package engine

import (
	"math"

	"github.com/cameronehrlich/deals-sub001/internal/models"
)

const (
	// searchIterations bounds every breakeven bisection.
	searchIterations = 20

	// maxSearchRate caps the break-even interest-rate search.
	maxSearchRate = 0.30
)

// shock describes one stress scenario as deltas on the base inputs.
// vacancy is an absolute replacement rate; a negative value keeps the
// base assumption.
type shock struct {
	name     string
	label    string
	rateAdd  float64
	vacancy  float64
	rentMult float64
}

// Scenario parameters are engine constants so that results stay
// comparable across evaluations.
var singleFactorShocks = []shock{
	{name: "rate_plus_1", label: "Rate +1%", rateAdd: 0.01, vacancy: -1, rentMult: 1},
	{name: "rate_plus_2", label: "Rate +2%", rateAdd: 0.02, vacancy: -1, rentMult: 1},
	{name: "vacancy_10", label: "Vacancy 10%", vacancy: 0.10, rentMult: 1},
	{name: "vacancy_15", label: "Vacancy 15%", vacancy: 0.15, rentMult: 1},
	{name: "rent_minus_5", label: "Rent -5%", vacancy: -1, rentMult: 0.95},
	{name: "rent_minus_10", label: "Rent -10%", vacancy: -1, rentMult: 0.90},
}

var (
	moderateShock = shock{name: "moderate", label: "Moderate stress", rateAdd: 0.01, vacancy: 0.10, rentMult: 0.97}
	severeShock   = shock{name: "severe", label: "Severe stress", rateAdd: 0.02, vacancy: 0.15, rentMult: 0.90}
)

// RunSensitivity re-runs the return calculation under each named shock and
// the two composite stress scenarios, derives a risk rating, and searches
// for the breakeven thresholds at which cash flow crosses zero. The base
// inputs are never mutated; every scenario works on a copy.
func RunSensitivity(f models.FinancingInput, a models.ExpenseAssumptions) models.SensitivityResult {
	base := ComputeReturns(f, a)

	res := models.SensitivityResult{
		Base:      outcome("base", "Base case", base),
		Scenarios: make([]models.ScenarioOutcome, 0, len(singleFactorShocks)),
	}
	for _, s := range singleFactorShocks {
		res.Scenarios = append(res.Scenarios, runShock(f, a, s))
	}

	res.Moderate = runShock(f, a, moderateShock)
	res.Severe = runShock(f, a, severeShock)
	res.SurvivesModerate = res.Moderate.MonthlyCashFlow >= 0
	res.SurvivesSevere = res.Severe.MonthlyCashFlow >= 0
	res.RiskRating = classifyRisk(base.MonthlyCashFlow, res.Moderate.MonthlyCashFlow, res.Severe.MonthlyCashFlow)

	res.BreakEvenInterestRate = breakEvenRate(f, a)
	res.BreakEvenVacancyRate = breakEvenVacancy(f, a)
	res.BreakEvenMonthlyRent = breakEvenRent(f, a)
	return res
}

// classifyRisk is a pure function of the base, moderate-shock, and
// severe-shock monthly cash flows.
func classifyRisk(base, moderate, severe float64) string {
	switch {
	case severe < -500 || base < 0:
		return models.RiskHigh
	case moderate < 0 || base < 200:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func runShock(f models.FinancingInput, a models.ExpenseAssumptions, s shock) models.ScenarioOutcome {
	sf, sa := applyShock(f, a, s)
	return outcome(s.name, s.label, ComputeReturns(sf, sa))
}

func applyShock(f models.FinancingInput, a models.ExpenseAssumptions, s shock) (models.FinancingInput, models.ExpenseAssumptions) {
	f.InterestRate += s.rateAdd
	f.MonthlyRent *= s.rentMult
	if s.vacancy >= 0 {
		a.VacancyRate = s.vacancy
	}
	return f, a
}

func outcome(name, label string, m models.ReturnMetrics) models.ScenarioOutcome {
	return models.ScenarioOutcome{
		Name:            name,
		Label:           label,
		MonthlyCashFlow: m.MonthlyCashFlow,
		AnnualCashFlow:  m.AnnualCashFlow,
		CashOnCash:      m.CashOnCashReturn,
	}
}

// breakEvenRate finds the interest rate in [0, maxSearchRate] at which
// monthly cash flow crosses zero. Cash flow is monotone decreasing in the
// rate; nil means no crossing exists in range.
func breakEvenRate(f models.FinancingInput, a models.ExpenseAssumptions) *float64 {
	cashFlowAt := func(rate float64) float64 {
		g := f
		g.InterestRate = rate
		return ComputeReturns(g, a).MonthlyCashFlow
	}
	v, ok := bisect(cashFlowAt, 0, maxSearchRate, searchIterations)
	if !ok {
		return nil
	}
	return &v
}

// breakEvenVacancy finds the vacancy rate in [0, 1] at which monthly cash
// flow crosses zero.
func breakEvenVacancy(f models.FinancingInput, a models.ExpenseAssumptions) *float64 {
	cashFlowAt := func(vacancy float64) float64 {
		b := a
		b.VacancyRate = vacancy
		return ComputeReturns(f, b).MonthlyCashFlow
	}
	v, ok := bisect(cashFlowAt, 0, 1, searchIterations)
	if !ok {
		return nil
	}
	return &v
}

// breakEvenRent finds the monthly rent at which cash flow crosses zero,
// searching up from zero rent to well above the current estimate.
func breakEvenRent(f models.FinancingInput, a models.ExpenseAssumptions) *float64 {
	upper := math.Max(4*f.MonthlyRent, 10000)
	cashFlowAt := func(rent float64) float64 {
		g := f
		g.MonthlyRent = rent
		return ComputeReturns(g, a).MonthlyCashFlow
	}
	v, ok := bisect(cashFlowAt, 0, upper, searchIterations)
	if !ok {
		return nil
	}
	return &v
}
