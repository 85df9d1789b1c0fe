package risk

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"bazaar/internal/risk/metrics"
	"bazaar/internal/risk/ports"
	"bazaar/pkg/requestcontext"
)

// JustificationJob carries everything the narrative generator needs.
// Dispatched after the assessment row is written, never awaited.
type JustificationJob struct {
	AssessmentID uuid.UUID
	Assessment   Assessment
	Context      TransactionContext
}

// Dispatcher hands a justification job to a background worker.
// Dispatch must not block; it returns false when the job was dropped.
type Dispatcher interface {
	Dispatch(job JustificationJob) bool
}

// EventPublisher broadcasts persisted assessments to downstream consumers.
// Implementations must not block the caller on broker round-trips.
type EventPublisher interface {
	AssessmentCreated(ctx context.Context, rec *ports.AssessmentRecord)
}

// Shipping is the optional shipping address slice persisted with the record.
type Shipping struct {
	Country string
	State   string
	City    string
}

// AssessRequest is the service-level input for one payment attempt, already
// validated and converted by the transport layer.
type AssessRequest struct {
	AmountCents int64
	Currency    string

	Items   []RequestItem
	OrderID *int64

	PaymentMethodID   string
	SavePaymentMethod bool

	UserID    *uuid.UUID
	UserEmail string
	UserRole  string

	SessionID     string
	TokenIssuedAt *time.Time

	Shipping Shipping
}

// Service runs the full assessment pipeline: enrich, collect, evaluate,
// reduce, persist, dispatch. Scoring never fails the caller - any internal
// error collapses to the fail-safe warn assessment.
type Service struct {
	enricher   *Enricher
	collector  *Collector
	store      ports.AssessmentStore
	sessions   ports.SessionActivityGateway
	dispatcher Dispatcher
	events     EventPublisher
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithDispatcher wires the justification worker.
func WithDispatcher(d Dispatcher) Option {
	return func(s *Service) { s.dispatcher = d }
}

// WithEvents wires the assessment event publisher.
func WithEvents(p EventPublisher) Option {
	return func(s *Service) { s.events = p }
}

// WithMetrics wires the Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithSessionActivity wires the session store used to track payment methods
// tried within a session.
func WithSessionActivity(g ports.SessionActivityGateway) Option {
	return func(s *Service) { s.sessions = g }
}

func NewService(enricher *Enricher, collector *Collector, store ports.AssessmentStore, logger *slog.Logger, opts ...Option) (*Service, error) {
	if enricher == nil {
		return nil, fmt.Errorf("enricher is required")
	}
	if collector == nil {
		return nil, fmt.Errorf("collector is required")
	}
	if store == nil {
		return nil, fmt.Errorf("assessment store is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	s := &Service{
		enricher:  enricher,
		collector: collector,
		store:     store,
		logger:    logger,
		tracer:    otel.Tracer("bazaar/risk"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Assess scores one payment attempt. It always returns an assessment:
// internal failures produce the fail-safe result, and persistence or
// dispatch problems never reach the caller.
func (s *Service) Assess(ctx context.Context, req AssessRequest) Assessment {
	now := requestcontext.Now(ctx)
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "risk.Assess")
	defer span.End()

	assessment, tc := s.evaluate(ctx, req, now)

	span.SetAttributes(
		attribute.String("risk.decision", string(assessment.Decision)),
		attribute.Int("risk.score", assessment.Score),
		attribute.Int("risk.factor_count", len(assessment.Factors)),
	)
	if s.metrics != nil {
		s.metrics.ObserveAssessment(string(assessment.Decision), assessment.Score, len(assessment.Factors), time.Since(start))
	}
	s.logger.InfoContext(ctx, "risk assessment computed",
		"request_id", requestcontext.RequestID(ctx),
		"decision", assessment.Decision,
		"score", assessment.Score,
		"confidence", assessment.Confidence,
		"factor_count", len(assessment.Factors),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	s.record(ctx, assessment, tc, req, now)
	return assessment
}

// evaluate runs the scoring pipeline under a recover barrier. Anything that
// escapes the per-source error handling inside enrichment and collection
// lands here and produces the fail-safe assessment rather than an error.
func (s *Service) evaluate(ctx context.Context, req AssessRequest, now time.Time) (assessment Assessment, tc *TransactionContext) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "risk scoring failed internally, failing safe",
				"request_id", requestcontext.RequestID(ctx),
				"panic", r,
			)
			if s.metrics != nil {
				s.metrics.IncFailSafe()
			}
			assessment = FailSafe(now)
			tc = nil
		}
	}()

	s.trackPaymentMethod(ctx, req)

	items, distribution := s.enricher.Resolve(ctx, req.Items, req.OrderID, req.UserID)
	signals := s.collector.Collect(ctx, req.UserID, req.SessionID, req.TokenIssuedAt, now)

	tc = &TransactionContext{
		UserID:             req.UserID,
		UserEmail:          req.UserEmail,
		UserRole:           req.UserRole,
		TotalAmountCents:   req.AmountCents,
		Currency:           req.Currency,
		LineItems:          items,
		StoreDistribution:  distribution,
		OrderID:            req.OrderID,
		PaymentMethodID:    req.PaymentMethodID,
		PaymentMethodIsNew: req.PaymentMethodID != "" && !req.SavePaymentMethod,
		Metadata: RequestMetadata{
			UserAgent: requestcontext.UserAgent(ctx),
			IPAddress: requestcontext.ClientIP(ctx),
			Timestamp: now,
		},
		Signals: signals,
	}

	return Reduce(Evaluate(tc), now), tc
}

// trackPaymentMethod records the current payment method against the session
// before the distinct-method count is read, so method cycling accumulates.
// Best effort: a failed write just leaves the signal unknown.
func (s *Service) trackPaymentMethod(ctx context.Context, req AssessRequest) {
	if s.sessions == nil || req.SessionID == "" || req.PaymentMethodID == "" {
		return
	}
	if err := s.sessions.RecordPaymentMethod(ctx, req.SessionID, req.PaymentMethodID); err != nil {
		s.logger.DebugContext(ctx, "payment method tracking failed",
			"session_id", req.SessionID,
			"error", err,
		)
	}
}

// record persists the assessment and triggers the asynchronous follow-ups.
// The decision is authoritative even when the audit row fails to write:
// checkout availability outranks assessment durability.
func (s *Service) record(ctx context.Context, assessment Assessment, tc *TransactionContext, req AssessRequest, now time.Time) {
	rec := buildRecord(assessment, tc, req, now)
	if tc == nil {
		rec.UserAgent = requestcontext.UserAgent(ctx)
		rec.IPAddress = requestcontext.ClientIP(ctx)
	}

	if err := s.store.Save(ctx, rec); err != nil {
		if s.metrics != nil {
			s.metrics.IncPersistFailures()
		}
		s.logger.ErrorContext(ctx, "assessment persistence failed, decision still served",
			"request_id", requestcontext.RequestID(ctx),
			"assessment_id", rec.ID,
			"error", err,
		)
		return
	}

	if s.dispatcher != nil && tc != nil {
		job := JustificationJob{
			AssessmentID: rec.ID,
			Assessment:   assessment,
			Context:      *tc,
		}
		if !s.dispatcher.Dispatch(job) {
			s.logger.WarnContext(ctx, "justification queue full, narrative skipped",
				"assessment_id", rec.ID,
			)
		}
	}

	if s.events != nil {
		s.events.AssessmentCreated(ctx, rec)
	}
}

func buildRecord(assessment Assessment, tc *TransactionContext, req AssessRequest, now time.Time) *ports.AssessmentRecord {
	factors := assessment.Factors
	if factors == nil {
		factors = []Factor{}
	}
	factorsJSON, err := json.Marshal(factors)
	if err != nil {
		// Factors are plain structs; this cannot realistically fail, but an
		// empty array beats a missing audit row.
		factorsJSON = []byte("[]")
	}

	rec := &ports.AssessmentRecord{
		ID:              uuid.New(),
		UserID:          req.UserID,
		OrderID:         req.OrderID,
		PaymentIntentID: req.PaymentMethodID,
		RiskScore:       assessment.Score,
		Decision:        string(assessment.Decision),
		Confidence:      assessment.Confidence,
		AmountCents:     req.AmountCents,
		Currency:        req.Currency,
		FactorsJSON:     factorsJSON,
		ShippingCountry: req.Shipping.Country,
		ShippingState:   req.Shipping.State,
		ShippingCity:    req.Shipping.City,
		CreatedAt:       now,
	}
	if tc != nil {
		rec.ItemCount = tc.TotalQuantity()
		rec.StoreCount = tc.StoreCount()
		rec.UserAgent = tc.Metadata.UserAgent
		rec.IPAddress = tc.Metadata.IPAddress
	}
	return rec
}
