package risk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"bazaar/internal/risk/mocks"
	"bazaar/internal/risk/ports"
	"bazaar/pkg/requestcontext"
)

// recordingDispatcher captures dispatched jobs; full simulates a saturated queue.
type recordingDispatcher struct {
	jobs []JustificationJob
	full bool
}

func (d *recordingDispatcher) Dispatch(job JustificationJob) bool {
	if d.full {
		return false
	}
	d.jobs = append(d.jobs, job)
	return true
}

type recordingPublisher struct {
	records []*ports.AssessmentRecord
}

func (p *recordingPublisher) AssessmentCreated(_ context.Context, rec *ports.AssessmentRecord) {
	p.records = append(p.records, rec)
}

type ServiceSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	catalog  *mocks.MockCatalogGateway
	orders   *mocks.MockOrdersGateway
	carts    *mocks.MockCartGateway
	accounts *mocks.MockAccountGateway
	sessions *mocks.MockSessionActivityGateway
	store    *mocks.MockAssessmentStore

	dispatcher *recordingDispatcher
	publisher  *recordingPublisher
	service    *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mocks.NewMockCatalogGateway(s.ctrl)
	s.orders = mocks.NewMockOrdersGateway(s.ctrl)
	s.carts = mocks.NewMockCartGateway(s.ctrl)
	s.accounts = mocks.NewMockAccountGateway(s.ctrl)
	s.sessions = mocks.NewMockSessionActivityGateway(s.ctrl)
	s.store = mocks.NewMockAssessmentStore(s.ctrl)
	s.dispatcher = &recordingDispatcher{}
	s.publisher = &recordingPublisher{}

	logger := discardLogger()
	enricher := NewEnricher(s.catalog, s.orders, s.carts, logger)
	collector := NewCollector(s.accounts, s.orders, s.sessions, logger)

	var err error
	s.service, err = NewService(enricher, collector, s.store, logger,
		WithDispatcher(s.dispatcher),
		WithEvents(s.publisher),
		WithSessionActivity(s.sessions),
	)
	s.Require().NoError(err)
}

func (s *ServiceSuite) requestContext() context.Context {
	return requestcontext.WithClientMetadata(context.Background(), "203.0.113.9", browserUA)
}

// anonymousRequest is a guest checkout: no user, no session, one cheap item.
func (s *ServiceSuite) anonymousRequest() AssessRequest {
	return AssessRequest{
		AmountCents: 45_00,
		Currency:    "USD",
		Items: []RequestItem{
			{ProductID: "p1", Name: "Notebook", PriceCents: 45_00, Quantity: 1, StoreID: "s1"},
		},
	}
}

func (s *ServiceSuite) TestQuietTransactionAllows() {
	s.catalog.EXPECT().ProductsByIDs(gomock.Any(), []string{"p1"}).Return(map[string]ports.Product{}, nil)

	var saved *ports.AssessmentRecord
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *ports.AssessmentRecord) error {
			saved = rec
			return nil
		})

	assessment := s.service.Assess(s.requestContext(), s.anonymousRequest())

	s.Equal(DecisionAllow, assessment.Decision)
	s.Zero(assessment.Score)
	s.Empty(assessment.Factors)

	s.Require().NotNil(saved)
	s.Equal("allow", saved.Decision)
	s.Equal(int64(45_00), saved.AmountCents)
	s.Equal(1, saved.ItemCount)
	s.Equal(1, saved.StoreCount)
	s.Equal(browserUA, saved.UserAgent)
	s.Equal("203.0.113.9", saved.IPAddress)
	s.JSONEq(`[]`, string(saved.FactorsJSON))
}

func (s *ServiceSuite) TestRiskyTransactionDenies() {
	// $800 from a CLI tool with a fresh, unsaved payment method:
	// HIGH_AMOUNT 26 + SUSPICIOUS_USER_AGENT 15 + NEW_PAYMENT_METHOD 20 = 61.
	s.catalog.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(map[string]ports.Product{}, nil)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	ctx := requestcontext.WithClientMetadata(context.Background(), "198.51.100.7", "curl/8.4.0")
	req := s.anonymousRequest()
	req.AmountCents = 800_00
	req.PaymentMethodID = "pm_fresh"

	assessment := s.service.Assess(ctx, req)

	s.Equal(DecisionDeny, assessment.Decision)
	s.Equal(61, assessment.Score)
	s.Len(assessment.Factors, 3)
}

func (s *ServiceSuite) TestPersistenceFailureStillServesDecision() {
	s.catalog.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(map[string]ports.Product{}, nil)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database down"))

	assessment := s.service.Assess(s.requestContext(), s.anonymousRequest())

	s.Equal(DecisionAllow, assessment.Decision)
	// No row, no narrative, no event.
	s.Empty(s.dispatcher.jobs)
	s.Empty(s.publisher.records)
}

func (s *ServiceSuite) TestInternalPanicFailsSafe() {
	s.catalog.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, []string) (map[string]ports.Product, error) {
			panic("catalog exploded")
		})

	var saved *ports.AssessmentRecord
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *ports.AssessmentRecord) error {
			saved = rec
			return nil
		})

	assessment := s.service.Assess(s.requestContext(), s.anonymousRequest())

	s.Equal(DecisionWarn, assessment.Decision)
	s.Equal(50, assessment.Score)
	s.InDelta(0.1, assessment.Confidence, 1e-9)
	s.Require().Len(assessment.Factors, 1)
	s.Equal(FactorSystemError, assessment.Factors[0].Name)

	// The fail-safe row still carries request metadata but no transaction
	// context is available to dispatch a narrative for.
	s.Require().NotNil(saved)
	s.Equal(browserUA, saved.UserAgent)
	s.Equal("203.0.113.9", saved.IPAddress)
	s.Empty(s.dispatcher.jobs)
}

func (s *ServiceSuite) TestDispatchesJustificationAfterSave() {
	s.catalog.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(map[string]ports.Product{}, nil)

	var savedID uuid.UUID
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *ports.AssessmentRecord) error {
			savedID = rec.ID
			return nil
		})

	s.service.Assess(s.requestContext(), s.anonymousRequest())

	s.Require().Len(s.dispatcher.jobs, 1)
	s.Equal(savedID, s.dispatcher.jobs[0].AssessmentID)
	s.Require().Len(s.publisher.records, 1)
	s.Equal(savedID, s.publisher.records[0].ID)
}

func (s *ServiceSuite) TestFullQueueDropsNarrativeQuietly() {
	s.dispatcher.full = true
	s.catalog.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(map[string]ports.Product{}, nil)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	assessment := s.service.Assess(s.requestContext(), s.anonymousRequest())

	s.Equal(DecisionAllow, assessment.Decision)
	s.Empty(s.dispatcher.jobs)
	s.Len(s.publisher.records, 1)
}

func (s *ServiceSuite) TestPaymentMethodTrackedBeforeCounting() {
	s.catalog.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(map[string]ports.Product{}, nil)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	gomock.InOrder(
		s.sessions.EXPECT().RecordPaymentMethod(gomock.Any(), "sess-1", "pm_b").Return(nil),
		s.sessions.EXPECT().PaymentMethodsTried(gomock.Any(), "sess-1").Return(2, nil),
	)

	req := s.anonymousRequest()
	req.SessionID = "sess-1"
	req.PaymentMethodID = "pm_b"
	req.SavePaymentMethod = true // saved method: no NEW_PAYMENT_METHOD factor

	assessment := s.service.Assess(s.requestContext(), req)

	var names []string
	for _, f := range assessment.Factors {
		names = append(names, f.Name)
	}
	s.Contains(names, FactorTwoPaymentMethods)
	s.NotContains(names, FactorNewPaymentMethod)
}

func (s *ServiceSuite) TestKnownUserSignalsFlowIntoScore() {
	userID := uuid.New()
	now := time.Now().UTC()

	s.catalog.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(map[string]ports.Product{}, nil)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	s.accounts.EXPECT().ByID(gomock.Any(), userID).Return(&ports.Account{
		ID:        userID,
		Role:      "customer",
		CreatedAt: now.Add(-60 * 24 * time.Hour),
	}, nil)
	s.accounts.EXPECT().OwnsStore(gomock.Any(), userID).Return(false, nil)
	s.orders.EXPECT().StatsByUser(gomock.Any(), userID).Return(ports.OrderStats{Total: 30, Successful: 29}, nil)
	s.orders.EXPECT().FailedCountSince(gomock.Any(), userID, gomock.Any()).Return(0, nil)
	s.sessions.EXPECT().ConcurrentSessions(gomock.Any(), userID).Return(1, nil)
	s.sessions.EXPECT().FailedLogins24h(gomock.Any(), userID).Return(0, nil)

	req := s.anonymousRequest()
	req.UserID = &userID

	assessment := s.service.Assess(s.requestContext(), req)

	// GOOD_TRANSACTION_HISTORY at -15 keeps the clean checkout at zero.
	s.Equal(DecisionAllow, assessment.Decision)
	s.Zero(assessment.Score)
	s.Require().Len(assessment.Factors, 1)
	s.Equal(FactorGoodHistory, assessment.Factors[0].Name)
	s.Equal(-15, assessment.Factors[0].Impact)
}

func (s *ServiceSuite) TestNewServiceRejectsMissingDependencies() {
	logger := discardLogger()
	enricher := NewEnricher(s.catalog, s.orders, s.carts, logger)
	collector := NewCollector(s.accounts, s.orders, s.sessions, logger)

	_, err := NewService(nil, collector, s.store, logger)
	s.Error(err)
	_, err = NewService(enricher, nil, s.store, logger)
	s.Error(err)
	_, err = NewService(enricher, collector, nil, logger)
	s.Error(err)
	_, err = NewService(enricher, collector, s.store, nil)
	s.Error(err)
}
