// Package metrics exposes Prometheus metrics for the risk engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the risk engine's Prometheus metrics.
type Metrics struct {
	AssessmentsTotal  *prometheus.CounterVec
	RiskScore         prometheus.Histogram
	ScoringDuration   prometheus.Histogram
	FailSafeTotal     prometheus.Counter
	PersistFailures   prometheus.Counter
	FactorsPerRequest prometheus.Histogram
}

// New creates and registers the risk metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		AssessmentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bazaar_risk_assessments_total",
			Help: "Total risk assessments computed, by decision",
		}, []string{"decision"}),
		RiskScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bazaar_risk_score",
			Help:    "Distribution of computed risk scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		ScoringDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bazaar_risk_scoring_duration_seconds",
			Help:    "Wall time of the full assessment pipeline",
			Buckets: prometheus.DefBuckets,
		}),
		FailSafeTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bazaar_risk_failsafe_total",
			Help: "Assessments that fell back to the fail-safe warn decision",
		}),
		PersistFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bazaar_risk_persist_failures_total",
			Help: "Assessment rows that failed to persist (decision still served)",
		}),
		FactorsPerRequest: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bazaar_risk_factors_per_request",
			Help:    "Number of risk factors fired per assessment",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		}),
	}
}

// ObserveAssessment records one completed assessment.
func (m *Metrics) ObserveAssessment(decision string, score, factorCount int, duration time.Duration) {
	m.AssessmentsTotal.WithLabelValues(decision).Inc()
	m.RiskScore.Observe(float64(score))
	m.FactorsPerRequest.Observe(float64(factorCount))
	m.ScoringDuration.Observe(duration.Seconds())
}

// IncFailSafe counts a fail-safe fallback.
func (m *Metrics) IncFailSafe() {
	m.FailSafeTotal.Inc()
}

// IncPersistFailures counts a swallowed persistence error.
func (m *Metrics) IncPersistFailures() {
	m.PersistFailures.Inc()
}
