// Package justify turns computed assessments into human-readable narratives,
// off the payment path.
package justify

import (
	"context"
	"fmt"
	"strings"

	"bazaar/internal/risk"
)

// Generator produces the narrative for one assessment. The production
// implementation calls the external justification model; TemplateGenerator
// is the deterministic default and the test double.
type Generator interface {
	Narrative(ctx context.Context, job risk.JustificationJob) (string, error)
}

// TemplateGenerator renders a plain-language narrative from the factor list.
// Deterministic: the same assessment always yields the same text.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Narrative(_ context.Context, job risk.JustificationJob) (string, error) {
	a := job.Assessment

	var b strings.Builder
	fmt.Fprintf(&b, "This transaction scored %d out of 100 and was marked %q with %.0f%% confidence.",
		a.Score, a.Decision, a.Confidence*100)

	if len(a.Factors) == 0 {
		b.WriteString(" No risk factors fired: the purchase matches an ordinary storefront checkout.")
		return b.String(), nil
	}

	raised, lowered := 0, 0
	for _, f := range a.Factors {
		if f.Impact >= 0 {
			raised++
		} else {
			lowered++
		}
	}
	fmt.Fprintf(&b, " %d signal(s) raised the score and %d lowered it.", raised, lowered)

	for _, f := range a.Factors {
		direction := "added"
		points := f.Impact
		if f.Impact < 0 {
			direction = "removed"
			points = -f.Impact
		}
		fmt.Fprintf(&b, " %s %s %d point(s).", f.Description, direction, points)
	}
	return b.String(), nil
}
