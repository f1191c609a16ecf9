// Package engine implements the deal-analysis calculation core: mortgage
// amortization, operating-expense estimation, cash-flow and return
// metrics, stress testing, composite scoring, and the offer-price solver.
//
// Every function is a pure, deterministic computation over explicit
// inputs. Callers validate at the boundary with ValidateFinancing and
// ValidateAssumptions; past that point degenerate arithmetic degrades to
// documented sentinel values instead of errors so that tables and charts
// always have something to render.
package engine

import "github.com/cameronehrlich/deals-sub001/internal/models"

const (
	// closingCostRate is the fixed closing-cost estimate as a share of
	// the purchase price.
	closingCostRate = 0.03

	// defaultTermYears is used when the financing input leaves the loan
	// term unset.
	defaultTermYears = 30
)

// ComputeReturns produces the full cash-flow and return profile for one
// purchase scenario.
//
// Ratios that lose their denominator report 0: cash-on-cash with nothing
// invested, GRM and break-even occupancy with zero rent. Break-even
// occupancy is otherwise reported raw; a value above 1 signals a property
// that cannot break even at full occupancy and is surfaced, not clamped.
func ComputeReturns(f models.FinancingInput, a models.ExpenseAssumptions) models.ReturnMetrics {
	term := f.LoanTermYears
	if term <= 0 {
		term = defaultTermYears
	}

	downPayment := f.PurchasePrice * f.DownPaymentPct
	closingCosts := f.PurchasePrice * closingCostRate
	cashInvested := downPayment + closingCosts
	loanAmount := f.PurchasePrice - downPayment
	mortgage := MonthlyPayment(loanAmount, f.InterestRate, term)

	expenses := EstimateExpenses(f.PurchasePrice, f.MonthlyRent, a)
	totalMonthly := mortgage + expenses.Total
	monthlyCashFlow := f.MonthlyRent - totalMonthly
	annualCashFlow := monthlyCashFlow * 12

	// Operating income excludes debt service.
	noi := (f.MonthlyRent - expenses.Total) * 12

	m := models.ReturnMetrics{
		PurchasePrice:        f.PurchasePrice,
		MonthlyRent:          f.MonthlyRent,
		DownPayment:          downPayment,
		ClosingCosts:         closingCosts,
		TotalCashInvested:    cashInvested,
		LoanAmount:           loanAmount,
		MonthlyMortgage:      mortgage,
		Expenses:             expenses,
		TotalMonthlyExpenses: totalMonthly,
		MonthlyCashFlow:      monthlyCashFlow,
		AnnualCashFlow:       annualCashFlow,
		NetOperatingIncome:   noi,
	}

	if cashInvested > 0 {
		m.CashOnCashReturn = annualCashFlow / cashInvested
	}
	if f.PurchasePrice > 0 {
		m.CapRate = noi / f.PurchasePrice
		m.RentToPrice = f.MonthlyRent / f.PurchasePrice
	}
	if f.MonthlyRent > 0 {
		m.GrossRentMultiplier = f.PurchasePrice / (f.MonthlyRent * 12)
		m.BreakEvenOccupancy = (totalMonthly - expenses.Vacancy) / f.MonthlyRent
	}
	return m
}

// ComputeReturnsWithLenderCheck runs ComputeReturns and additionally
// reports the debt-service coverage ratio against a lender's minimum.
// A cash purchase has no debt service; the ratio is omitted and the check
// passes.
func ComputeReturnsWithLenderCheck(f models.FinancingInput, a models.ExpenseAssumptions, minDSCR float64) models.ReturnMetrics {
	m := ComputeReturns(f, a)
	annualDebtService := m.MonthlyMortgage * 12
	if annualDebtService == 0 {
		meets := true
		m.MeetsLenderMinimum = &meets
		return m
	}
	dscr := m.NetOperatingIncome / annualDebtService
	meets := dscr >= minDSCR
	m.DSCR = &dscr
	m.MeetsLenderMinimum = &meets
	return m
}
