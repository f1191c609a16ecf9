package engine

import (
	"math"

	"github.com/cameronehrlich/deals-sub001/internal/models"
)

// Blend weights for collaborator-supplied sub-scores. Missing components
// renormalize over what is present, so a metrics-only call degrades to
// the pure financial score.
const (
	weightFinancial = 0.5
	weightMarket    = 0.2
	weightRisk      = 0.2
	weightLiquidity = 0.1
)

// Score maps a return profile (and optional market/risk context) to a
// 0-100 composite score, a verdict, and 1-4 supporting recommendations.
// ctx may be nil. The function is deterministic and holds no state.
func Score(m models.ReturnMetrics, ctx *models.MarketContext) models.DealScore {
	financial := financialScore(m)

	score := models.DealScore{FinancialScore: financial}
	weighted := financial * weightFinancial
	total := weightFinancial
	if ctx != nil {
		if ctx.MarketScore != nil {
			v := clampScore(*ctx.MarketScore)
			score.MarketScore = &v
			weighted += v * weightMarket
			total += weightMarket
		}
		if ctx.RiskScore != nil {
			v := clampScore(*ctx.RiskScore)
			score.RiskScore = &v
			weighted += v * weightRisk
			total += weightRisk
		}
		if ctx.LiquidityScore != nil {
			v := clampScore(*ctx.LiquidityScore)
			score.LiquidityScore = &v
			weighted += v * weightLiquidity
			total += weightLiquidity
		}
	}
	score.Overall = clampScore(weighted / total)

	risk := riskRatingFor(m, ctx)
	score.RiskRating = risk
	score.Verdict = verdictFor(score.Overall, risk)
	score.Recommendations = recommendations(m, risk)
	return score
}

// financialScore starts at 50 and applies independent additive deltas
// keyed on cash-on-cash return, cap rate, rent-to-price ratio, and
// absolute monthly cash flow.
func financialScore(m models.ReturnMetrics) float64 {
	s := 50.0

	switch {
	case m.CashOnCashReturn >= 0.12:
		s += 15
	case m.CashOnCashReturn >= 0.08:
		s += 10
	case m.CashOnCashReturn >= 0.05:
		s += 5
	case m.CashOnCashReturn < 0:
		s -= 15
	}

	switch {
	case m.CapRate >= 0.08:
		s += 10
	case m.CapRate >= 0.06:
		s += 6
	case m.CapRate >= 0.045:
		s += 3
	case m.CapRate < 0.03:
		s -= 10
	}

	switch {
	case m.RentToPrice >= 0.010:
		s += 10
	case m.RentToPrice >= 0.008:
		s += 5
	case m.RentToPrice < 0.005:
		s -= 10
	}

	switch {
	case m.MonthlyCashFlow >= 500:
		s += 10
	case m.MonthlyCashFlow >= 300:
		s += 6
	case m.MonthlyCashFlow >= 100:
		s += 3
	case m.MonthlyCashFlow < 0:
		s -= 15
	}

	return clampScore(s)
}

// riskRatingFor prefers a rating supplied by a sensitivity run; without
// one it falls back to the base-cash-flow clauses of the stress-test
// policy.
func riskRatingFor(m models.ReturnMetrics, ctx *models.MarketContext) string {
	if ctx != nil && ctx.RiskRating != "" {
		return ctx.RiskRating
	}
	switch {
	case m.MonthlyCashFlow < 0:
		return models.RiskHigh
	case m.MonthlyCashFlow < 200:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func verdictFor(score float64, risk string) string {
	switch {
	case score >= 75 && risk == models.RiskLow:
		return models.VerdictStrongBuy
	case score >= 60 && risk != models.RiskHigh:
		return models.VerdictBuy
	case score >= 40:
		return models.VerdictCaution
	default:
		return models.VerdictAvoid
	}
}

// recommendations assembles short guidance strings from the same
// thresholds that drive the score. Always returns between 1 and 4 items.
func recommendations(m models.ReturnMetrics, risk string) []string {
	var recs []string
	if m.MonthlyCashFlow < 0 {
		recs = append(recs, "Negative cash flow at asking terms; negotiate the price down or re-verify the rent estimate.")
	}
	switch {
	case m.CashOnCashReturn >= 0.12:
		recs = append(recs, "Cash-on-cash return clears 12%; the deal works at asking terms.")
	case m.CashOnCashReturn < 0.05 && m.MonthlyCashFlow >= 0:
		recs = append(recs, "Thin cash-on-cash return; a larger down payment or a lower offer would improve it.")
	}
	if m.RentToPrice < 0.007 {
		recs = append(recs, "Rent-to-price ratio is weak; comparable rents deserve a second look.")
	}
	if m.BreakEvenOccupancy > 1 {
		recs = append(recs, "Expenses exceed rent even at full occupancy; the property cannot break even as priced.")
	}
	if risk == models.RiskHigh && m.MonthlyCashFlow >= 0 {
		recs = append(recs, "Cash flow does not survive a severe stress scenario; hold extra reserves.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Returns are close to market averages; results hinge on the rent estimate.")
	}
	if len(recs) > 4 {
		recs = recs[:4]
	}
	return recs
}

func clampScore(s float64) float64 {
	return math.Min(100, math.Max(0, s))
}
