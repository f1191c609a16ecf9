package models

// Verdict labels produced by the scoring engine.
const (
	VerdictStrongBuy = "strong-buy"
	VerdictBuy       = "buy"
	VerdictCaution   = "caution"
	VerdictAvoid     = "avoid"
)

// MarketContext carries optional collaborator-supplied context for score
// blending: 0-100 sub-scores and a risk rating from a sensitivity run.
// Any of them may be absent.
type MarketContext struct {
	MarketScore    *float64 `json:"market_score,omitempty"`
	RiskScore      *float64 `json:"risk_score,omitempty"`
	LiquidityScore *float64 `json:"liquidity_score,omitempty"`
	RiskRating     string   `json:"risk_rating,omitempty"`
}

// DealScore is the headline evaluation of a deal: a 0-100 composite score,
// its sub-scores, a verdict, and 1-4 supporting recommendations.
type DealScore struct {
	Overall         float64  `json:"overall"`
	FinancialScore  float64  `json:"financial_score"`
	MarketScore     *float64 `json:"market_score,omitempty"`
	RiskScore       *float64 `json:"risk_score,omitempty"`
	LiquidityScore  *float64 `json:"liquidity_score,omitempty"`
	RiskRating      string   `json:"risk_rating"`
	Verdict         string   `json:"verdict"`
	Recommendations []string `json:"recommendations"`
}
