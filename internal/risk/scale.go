package risk

import "math"

// Impact scaling. Every factor's contribution is a function of how far the
// measured value overshoots its threshold, expressed as ratio = value/threshold,
// and is always capped at the factor's maximum so no single input can dominate
// the score. Impacts truncate toward zero: the worked numbers in the factor
// catalog (e.g. three stores scoring 12, not 13) depend on truncation, so do
// not swap this for rounding.

type impactFn func(value float64) int

// fixedImpact ignores the measured value.
func fixedImpact(points int) impactFn {
	return func(float64) int { return points }
}

// linearRatio grows linearly with the overshoot ratio and reaches the maximum
// at ratioCap times the threshold.
func linearRatio(maxImpact int, threshold, ratioCap float64) impactFn {
	return func(value float64) int {
		ratio := math.Min(value/threshold, ratioCap)
		return int(float64(maxImpact) * ratio / ratioCap)
	}
}

// linearAboveOne grows linearly in (ratio - 1): zero impact right at the
// threshold, maximum at twice the threshold.
func linearAboveOne(maxImpact int, threshold float64) impactFn {
	return func(value float64) int {
		ratio := value / threshold
		return int(math.Min(float64(maxImpact)*(ratio-1), float64(maxImpact)))
	}
}

// log2Ratio grows with the logarithm of the overshoot ratio. Used for inputs
// with unbounded extremes (bulk quantities) so a quantity of 500 does not
// drown out every other signal; the cap is reached at twice the threshold.
func log2Ratio(maxImpact int, threshold float64) impactFn {
	return func(value float64) int {
		ratio := value / threshold
		scaled := float64(maxImpact) * math.Log2(ratio)
		return int(math.Min(math.Max(scaled, 0), float64(maxImpact)))
	}
}
