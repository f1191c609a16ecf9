package engine

// bisect locates a zero crossing of the monotone function f on [lo, hi]
// with a fixed iteration budget. It reports false when f does not change
// sign across the interval, meaning no crossing exists in range. Both the
// breakeven searches and the offer-price solver run through here.
func bisect(f func(float64) float64, lo, hi float64, iterations int) (float64, bool) {
	flo := f(lo)
	fhi := f(hi)
	if flo == 0 {
		return lo, true
	}
	if fhi == 0 {
		return hi, true
	}
	if (flo > 0) == (fhi > 0) {
		return 0, false
	}
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if fmid == 0 {
			return mid, true
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}
