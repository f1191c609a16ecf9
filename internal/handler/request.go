package handler

import (
	"github.com/cameronehrlich/deals-sub001/internal/models"
	"github.com/cameronehrlich/deals-sub001/internal/utils"
)

// Defaults applied when a presentation surface omits a financing field.
const (
	defaultDownPaymentPct = 0.20
	defaultLoanTermYears  = 30
)

// analyzeRequest carries the raw evaluation inputs from a presentation
// surface. Numeric fields accept JSON numbers or numeric strings; missing
// financing fields fall back to documented defaults, with the interest
// rate defaulting to the current market rate.
type analyzeRequest struct {
	Price            utils.FlexFloat       `json:"price"`
	Rent             utils.FlexFloat       `json:"rent"`
	DownPaymentPct   *utils.FlexFloat      `json:"down_payment_pct"`
	InterestRate     *utils.FlexFloat      `json:"interest_rate"`
	LoanTermYears    *int                  `json:"loan_term_years"`
	Assumptions      *assumptionOverrides  `json:"assumptions"`
	TargetCashOnCash *utils.FlexFloat      `json:"target_cash_on_cash"`
	OfferFloor       *utils.FlexFloat      `json:"offer_floor"`
	MinDSCR          *utils.FlexFloat      `json:"min_dscr"`
	Context          *models.MarketContext `json:"context"`
}

// assumptionOverrides lets a single request override any expense rate
// without touching the configured defaults.
type assumptionOverrides struct {
	TaxRate         *utils.FlexFloat `json:"tax_rate"`
	InsuranceRate   *utils.FlexFloat `json:"insurance_rate"`
	VacancyRate     *utils.FlexFloat `json:"vacancy_rate"`
	MaintenanceRate *utils.FlexFloat `json:"maintenance_rate"`
	CapExRate       *utils.FlexFloat `json:"capex_rate"`
	ManagementRate  *utils.FlexFloat `json:"management_rate"`
	MonthlyHOA      *utils.FlexFloat `json:"monthly_hoa"`
}

func (r *analyzeRequest) financing(marketRate float64) models.FinancingInput {
	f := models.FinancingInput{
		PurchasePrice:  float64(r.Price),
		MonthlyRent:    float64(r.Rent),
		DownPaymentPct: r.DownPaymentPct.Float(defaultDownPaymentPct),
		InterestRate:   r.InterestRate.Float(marketRate),
		LoanTermYears:  defaultLoanTermYears,
	}
	if r.LoanTermYears != nil {
		f.LoanTermYears = *r.LoanTermYears
	}
	return f
}

func (r *analyzeRequest) assumptions(defaults models.ExpenseAssumptions) models.ExpenseAssumptions {
	a := defaults
	o := r.Assumptions
	if o == nil {
		return a
	}
	a.TaxRate = o.TaxRate.Float(a.TaxRate)
	a.InsuranceRate = o.InsuranceRate.Float(a.InsuranceRate)
	a.VacancyRate = o.VacancyRate.Float(a.VacancyRate)
	a.MaintenanceRate = o.MaintenanceRate.Float(a.MaintenanceRate)
	a.CapExRate = o.CapExRate.Float(a.CapExRate)
	a.ManagementRate = o.ManagementRate.Float(a.ManagementRate)
	a.MonthlyHOA = o.MonthlyHOA.Float(a.MonthlyHOA)
	return a
}
