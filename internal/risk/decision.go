package risk

import (
	"math"
	"time"
)

// Decision is the three-way output of the engine.
type Decision string

const (
	DecisionAllow Decision = "allow"
	DecisionWarn  Decision = "warn"
	DecisionDeny  Decision = "deny"
)

// Score thresholds, inclusive on both ends:
// 0..20 allow, 21..50 warn, 51..100 deny.
const (
	allowMaxScore = 20
	warnMaxScore  = 50
)

// Assessment is the reduced output of one scoring run.
type Assessment struct {
	Score      int
	Decision   Decision
	Confidence float64
	Factors    []Factor
	ComputedAt time.Time
}

// Reduce sums factor impacts, clamps to [0,100], and maps the total onto the
// decision bands. Negative factors reduce the total before clamping.
//
// Confidence is a display hint, not a calibrated probability: it grows with
// the number of corroborating factors and with any nonzero score, capped at 1.
func Reduce(factors []Factor, computedAt time.Time) Assessment {
	total := 0
	for _, f := range factors {
		total += f.Impact
	}
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	decision := DecisionDeny
	switch {
	case total <= allowMaxScore:
		decision = DecisionAllow
	case total <= warnMaxScore:
		decision = DecisionWarn
	}

	confidence := 0.3 + 0.1*float64(len(factors))
	if total > 0 {
		confidence += 0.3
	}
	confidence = math.Min(confidence, 1.0)
	confidence = math.Round(confidence*100) / 100

	return Assessment{
		Score:      total,
		Decision:   decision,
		Confidence: confidence,
		Factors:    factors,
		ComputedAt: computedAt,
	}
}

// FailSafe is the fixed assessment returned when scoring breaks internally:
// cautious but not blocking. Never fail open (allow) and never fail the
// payment response outright.
func FailSafe(computedAt time.Time) Assessment {
	return Assessment{
		Score:      50,
		Decision:   DecisionWarn,
		Confidence: 0.1,
		Factors: []Factor{{
			Name:        FactorSystemError,
			Impact:      50,
			Description: "Risk evaluation failed internally; defaulting to manual review",
		}},
		ComputedAt: computedAt,
	}
}
