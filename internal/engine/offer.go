package engine

import (
	"fmt"
	"math"

	"github.com/cameronehrlich/deals-sub001/internal/models"
)

const (
	// offerIterations bounds the price bisection; 20 halvings reach
	// roughly $1 resolution at typical price scales.
	offerIterations = 20

	// Default lower search bound when the caller supplies none.
	defaultFloorPrice    = 50000
	defaultFloorFraction = 0.70

	// offerRounding snaps the solved price for presentation.
	offerRounding = 1000
)

// SolveOfferPrice finds the purchase price that achieves the target
// cash-on-cash return, holding rent and all other terms fixed. The list
// price is taken from f.PurchasePrice and the search runs on
// [floor, list]; pass floor <= 0 for the default of $50,000 or 70% of
// list, whichever is greater.
//
// Cash-on-cash strictly decreases as price increases for positive rent,
// so the search is a plain bisection. When the target cannot be reached
// the nearer bound is returned with TargetAchievable false; the achieved
// return is reported so callers can show the gap. The solved price is
// rounded to the nearest $1,000.
func SolveOfferPrice(targetCoC float64, f models.FinancingInput, a models.ExpenseAssumptions, floor float64) (models.OfferSolution, error) {
	if err := ValidateFinancing(f); err != nil {
		return models.OfferSolution{}, err
	}
	if err := ValidateAssumptions(a); err != nil {
		return models.OfferSolution{}, err
	}
	if math.IsNaN(targetCoC) || math.IsInf(targetCoC, 0) {
		return models.OfferSolution{}, fmt.Errorf("target cash-on-cash must be a finite number")
	}
	if f.MonthlyRent <= 0 {
		return models.OfferSolution{}, fmt.Errorf("offer solver requires positive rent, got %.2f", f.MonthlyRent)
	}

	list := f.PurchasePrice
	if floor <= 0 {
		floor = math.Max(defaultFloorPrice, defaultFloorFraction*list)
	}
	if floor > list {
		floor = list
	}

	cocAt := func(price float64) float64 {
		g := f
		g.PurchasePrice = price
		return ComputeReturns(g, a).CashOnCashReturn
	}

	price := list
	achievable := true
	switch {
	case cocAt(list) >= targetCoC:
		// The asking price already meets the target; never offer above list.
		price = list
	case cocAt(floor) < targetCoC:
		// Even the floor price cannot reach the target.
		price = floor
		achievable = false
	default:
		gap := func(p float64) float64 { return cocAt(p) - targetCoC }
		p, ok := bisect(gap, floor, list, offerIterations)
		if !ok {
			p = floor
			achievable = false
		}
		price = p
	}

	rounded := math.Round(price/offerRounding) * offerRounding
	if rounded > list {
		rounded = list
	}

	g := f
	g.PurchasePrice = rounded
	metrics := ComputeReturns(g, a)

	return models.OfferSolution{
		OfferPrice:         rounded,
		ListPrice:          list,
		DiscountPercent:    (list - rounded) / list * 100,
		TargetCashOnCash:   targetCoC,
		AchievedCashOnCash: metrics.CashOnCashReturn,
		TargetAchievable:   achievable,
		Metrics:            metrics,
	}, nil
}
