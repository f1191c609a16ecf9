package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronehrlich/deals-sub001/internal/models"
)

func requireFinite(t *testing.T, m models.ReturnMetrics) {
	t.Helper()
	fields := map[string]float64{
		"down_payment":           m.DownPayment,
		"closing_costs":          m.ClosingCosts,
		"total_cash_invested":    m.TotalCashInvested,
		"loan_amount":            m.LoanAmount,
		"monthly_mortgage":       m.MonthlyMortgage,
		"total_monthly_expenses": m.TotalMonthlyExpenses,
		"monthly_cash_flow":      m.MonthlyCashFlow,
		"annual_cash_flow":       m.AnnualCashFlow,
		"net_operating_income":   m.NetOperatingIncome,
		"cash_on_cash_return":    m.CashOnCashReturn,
		"cap_rate":               m.CapRate,
		"rent_to_price":          m.RentToPrice,
		"gross_rent_multiplier":  m.GrossRentMultiplier,
		"break_even_occupancy":   m.BreakEvenOccupancy,
	}
	for name, v := range fields {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s is not finite: %v", name, v)
	}
}

func TestComputeReturns_WorkedExample(t *testing.T) {
	f := models.FinancingInput{
		PurchasePrice:  350000,
		MonthlyRent:    2000,
		DownPaymentPct: 0.20,
		InterestRate:   0.07,
		LoanTermYears:  30,
	}
	m := ComputeReturns(f, models.DefaultAssumptions())

	assert.Equal(t, 70000.0, m.DownPayment)
	assert.Equal(t, 10500.0, m.ClosingCosts)
	assert.Equal(t, 80500.0, m.TotalCashInvested)
	assert.Equal(t, 280000.0, m.LoanAmount)
	assert.InDelta(t, 1862.85, m.MonthlyMortgage, 0.01)
	assert.InDelta(t, 3302.02, m.TotalMonthlyExpenses, 0.02)
	assert.InDelta(t, -1302.02, m.MonthlyCashFlow, 0.02)
	assert.InDelta(t, -15624.22, m.AnnualCashFlow, 0.25)

	// At this price/rent ratio the property cannot break even even at
	// full occupancy; the raw value must be surfaced, not clamped.
	assert.Greater(t, m.BreakEvenOccupancy, 1.0)
	requireFinite(t, m)
}

func TestComputeReturns_RatiosAndGRM(t *testing.T) {
	f := models.FinancingInput{
		PurchasePrice:  200000,
		MonthlyRent:    1800,
		DownPaymentPct: 0.25,
		InterestRate:   0.07,
		LoanTermYears:  30,
	}
	m := ComputeReturns(f, models.DefaultAssumptions())

	assert.InDelta(t, 0.009, m.RentToPrice, 1e-9)
	assert.InDelta(t, 200000.0/(1800*12), m.GrossRentMultiplier, 1e-9)
	assert.InDelta(t, m.NetOperatingIncome/200000, m.CapRate, 1e-9)
	requireFinite(t, m)
}

func TestComputeReturns_ZeroRentSentinels(t *testing.T) {
	f := models.FinancingInput{
		PurchasePrice:  200000,
		MonthlyRent:    0,
		DownPaymentPct: 0.25,
		InterestRate:   0.07,
	}
	m := ComputeReturns(f, models.DefaultAssumptions())

	assert.Zero(t, m.GrossRentMultiplier)
	assert.Zero(t, m.BreakEvenOccupancy)
	assert.Zero(t, m.RentToPrice)
	requireFinite(t, m)
}

func TestComputeReturns_DegenerateInputsNeverDivideByZero(t *testing.T) {
	// The validated boundary rejects a zero price, but the computation
	// itself must still degrade to sentinels rather than NaN.
	m := ComputeReturns(models.FinancingInput{}, models.ExpenseAssumptions{})
	assert.Zero(t, m.CashOnCashReturn)
	assert.Zero(t, m.CapRate)
	assert.Zero(t, m.GrossRentMultiplier)
	requireFinite(t, m)
}

func TestComputeReturns_NeverNaNAcrossGrid(t *testing.T) {
	a := models.DefaultAssumptions()
	for price := 50000.0; price <= 1000000; price += 95000 {
		for rent := 0.0; rent <= 5000; rent += 500 {
			m := ComputeReturns(models.FinancingInput{
				PurchasePrice:  price,
				MonthlyRent:    rent,
				DownPaymentPct: 0.20,
				InterestRate:   0.07,
			}, a)
			requireFinite(t, m)
		}
	}
}

func TestComputeReturns_CashOnCashStrictlyDecreasesWithPrice(t *testing.T) {
	// Monotonicity is the correctness precondition for the offer solver.
	a := models.DefaultAssumptions()
	prev := math.Inf(1)
	for price := 100000.0; price <= 600000; price += 25000 {
		m := ComputeReturns(models.FinancingInput{
			PurchasePrice:  price,
			MonthlyRent:    2200,
			DownPaymentPct: 0.20,
			InterestRate:   0.07,
		}, a)
		require.Less(t, m.CashOnCashReturn, prev, "price=%.0f", price)
		prev = m.CashOnCashReturn
	}
}

func TestComputeReturnsWithLenderCheck(t *testing.T) {
	f := models.FinancingInput{
		PurchasePrice:  200000,
		MonthlyRent:    1800,
		DownPaymentPct: 0.25,
		InterestRate:   0.07,
		LoanTermYears:  30,
	}
	a := models.DefaultAssumptions()

	t.Run("financed purchase reports DSCR", func(t *testing.T) {
		m := ComputeReturnsWithLenderCheck(f, a, 1.2)
		require.NotNil(t, m.DSCR)
		require.NotNil(t, m.MeetsLenderMinimum)
		assert.InDelta(t, m.NetOperatingIncome/(m.MonthlyMortgage*12), *m.DSCR, 1e-9)
		assert.Equal(t, *m.DSCR >= 1.2, *m.MeetsLenderMinimum)
	})

	t.Run("cash purchase has no debt service", func(t *testing.T) {
		g := f
		g.DownPaymentPct = 1.0
		m := ComputeReturnsWithLenderCheck(g, a, 1.2)
		assert.Nil(t, m.DSCR)
		require.NotNil(t, m.MeetsLenderMinimum)
		assert.True(t, *m.MeetsLenderMinimum)
	})

	t.Run("plain compute leaves lender fields unset", func(t *testing.T) {
		m := ComputeReturns(f, a)
		assert.Nil(t, m.DSCR)
		assert.Nil(t, m.MeetsLenderMinimum)
	})
}

func TestValidateFinancing(t *testing.T) {
	valid := models.FinancingInput{PurchasePrice: 200000, MonthlyRent: 1800, DownPaymentPct: 0.25, InterestRate: 0.07}
	require.NoError(t, ValidateFinancing(valid))

	tests := []struct {
		name   string
		mutate func(*models.FinancingInput)
	}{
		{"zero price", func(f *models.FinancingInput) { f.PurchasePrice = 0 }},
		{"negative price", func(f *models.FinancingInput) { f.PurchasePrice = -1 }},
		{"NaN price", func(f *models.FinancingInput) { f.PurchasePrice = math.NaN() }},
		{"infinite rent", func(f *models.FinancingInput) { f.MonthlyRent = math.Inf(1) }},
		{"negative rent", func(f *models.FinancingInput) { f.MonthlyRent = -100 }},
		{"negative rate", func(f *models.FinancingInput) { f.InterestRate = -0.01 }},
		{"over-leveraged down payment", func(f *models.FinancingInput) { f.DownPaymentPct = 1.5 }},
		{"negative term", func(f *models.FinancingInput) { f.LoanTermYears = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.mutate(&f)
			assert.Error(t, ValidateFinancing(f))
		})
	}
}

func TestValidateAssumptions(t *testing.T) {
	require.NoError(t, ValidateAssumptions(models.DefaultAssumptions()))
	require.NoError(t, ValidateAssumptions(models.ExpenseAssumptions{}), "all-zero rates are valid")

	a := models.DefaultAssumptions()
	a.VacancyRate = -0.05
	assert.Error(t, ValidateAssumptions(a))

	b := models.DefaultAssumptions()
	b.TaxRate = math.NaN()
	assert.Error(t, ValidateAssumptions(b))
}
