package risk

// Evaluate runs the factor catalog against a transaction context.
// This is pure domain logic - no I/O, no clock, no side effects: identical
// contexts always produce identical factor lists, in catalog order.
//
// Within one definition, tiers are checked top-down and the first band that
// fires wins, so overlapping thresholds (old vs aged session token, the
// failed-login bands) stay mutually exclusive. Definitions that share a
// signal but are meant to stack (unusual vs extreme item count) are separate
// catalog entries.
func Evaluate(tc *TransactionContext) []Factor {
	var factors []Factor
	for _, def := range catalog {
		value, known := def.signal(tc)
		if !known {
			continue
		}
		for _, t := range def.tiers {
			if !t.fires(value) {
				continue
			}
			impact := t.impact(value)
			factors = append(factors, Factor{
				Name:        t.name,
				Impact:      impact,
				Description: t.describe(value, impact),
			})
			break
		}
	}
	return factors
}
