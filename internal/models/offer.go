package models

// OfferSolution is the result of inverting the return pipeline: the
// purchase price that achieves a target cash-on-cash return, the discount
// from list it implies, and the full metrics recomputed at that price.
// When the target cannot be reached inside the search bounds the nearer
// bound is returned and TargetAchievable is false.
type OfferSolution struct {
	OfferPrice         float64       `json:"offer_price"`
	ListPrice          float64       `json:"list_price"`
	DiscountPercent    float64       `json:"discount_percent"`
	TargetCashOnCash   float64       `json:"target_cash_on_cash"`
	AchievedCashOnCash float64       `json:"achieved_cash_on_cash"`
	TargetAchievable   bool          `json:"target_achievable"`
	Metrics            ReturnMetrics `json:"metrics"`
}
