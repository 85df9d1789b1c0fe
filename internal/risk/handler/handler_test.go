package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/risk"
	"bazaar/pkg/requestcontext"
)

type stubService struct {
	lastReq    *risk.AssessRequest
	assessment risk.Assessment
}

func (s *stubService) Assess(_ context.Context, req risk.AssessRequest) risk.Assessment {
	s.lastReq = &req
	return s.assessment
}

func newTestRouter(svc AssessService) chi.Router {
	r := chi.NewRouter()
	New(svc, slog.New(slog.DiscardHandler)).Register(r)
	return r
}

func postAssess(t *testing.T, router http.Handler, body string, ctxMods ...func(context.Context) context.Context) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/risk/assess", strings.NewReader(body))
	ctx := req.Context()
	for _, mod := range ctxMods {
		ctx = mod(ctx)
	}
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAssessHappyPath(t *testing.T) {
	computedAt := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)
	svc := &stubService{assessment: risk.Assessment{
		Score:      16,
		Decision:   risk.DecisionAllow,
		Confidence: 0.7,
		Factors: []risk.Factor{
			{Name: "HIGH_AMOUNT", Impact: 16, Description: "Transaction amount $500.00 is above the $300 threshold"},
		},
		ComputedAt: computedAt,
	}}
	router := newTestRouter(svc)

	rr := postAssess(t, router, `{
		"amount": 500,
		"currency": "USD",
		"items": [{"productId": "p1", "name": "Desk", "price": 500, "quantity": 1, "storeId": "s1"}],
		"paymentMethodId": "pm_1",
		"savePaymentMethod": true
	}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"success": true,
		"riskAssessment": {
			"decision": "allow",
			"score": 16,
			"confidence": 0.7,
			"factors": [{"factor": "HIGH_AMOUNT", "impact": 16, "description": "Transaction amount $500.00 is above the $300 threshold"}],
			"timestamp": "2026-04-02T10:30:00Z"
		}
	}`, rr.Body.String())

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, int64(500_00), svc.lastReq.AmountCents)
	require.Len(t, svc.lastReq.Items, 1)
	assert.Equal(t, int64(500_00), svc.lastReq.Items[0].PriceCents)
	assert.Equal(t, "pm_1", svc.lastReq.PaymentMethodID)
	assert.True(t, svc.lastReq.SavePaymentMethod)
}

func TestAssessInvalidAmount(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	for name, body := range map[string]string{
		"missing":     `{"currency": "USD"}`,
		"zero":        `{"amount": 0}`,
		"negative":    `{"amount": -20}`,
		"non-numeric": `{"amount": "fifty"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rr := postAssess(t, router, body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			if name != "non-numeric" {
				assert.JSONEq(t, `{"error": "Invalid payment amount"}`, rr.Body.String())
			}
			assert.Nil(t, svc.lastReq, "nothing should be scored")
		})
	}
}

func TestAssessMalformedBody(t *testing.T) {
	router := newTestRouter(&stubService{})
	rr := postAssess(t, router, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAssessFailSafeStillAnswersOK(t *testing.T) {
	svc := &stubService{assessment: risk.FailSafe(time.Now().UTC())}
	router := newTestRouter(svc)

	rr := postAssess(t, router, `{"amount": 25}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Success        bool `json:"success"`
		RiskAssessment struct {
			Decision string `json:"decision"`
			Score    int    `json:"score"`
			Factors  []struct {
				Factor string `json:"factor"`
			} `json:"factors"`
		} `json:"riskAssessment"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "warn", resp.RiskAssessment.Decision)
	assert.Equal(t, 50, resp.RiskAssessment.Score)
	require.Len(t, resp.RiskAssessment.Factors, 1)
	assert.Equal(t, "SYSTEM_ERROR", resp.RiskAssessment.Factors[0].Factor)
}

func TestAssessEmptyFactorsRenderAsArray(t *testing.T) {
	svc := &stubService{assessment: risk.Assessment{
		Decision:   risk.DecisionAllow,
		Confidence: 0.3,
		ComputedAt: time.Now().UTC(),
	}}
	router := newTestRouter(svc)

	rr := postAssess(t, router, `{"amount": 10}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"factors":[]`)
}

func TestAssessBearerIdentityWinsOverBody(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	tokenUser := uuid.New()
	issuedAt := time.Now().Add(-2 * time.Hour).UTC()

	postAssess(t, router, `{
		"amount": 50,
		"auth": {"user": {"id": "`+uuid.NewString()+`", "email": "body@example.com", "userType": "admin"}}
	}`, func(ctx context.Context) context.Context {
		ctx = requestcontext.WithUserID(ctx, tokenUser)
		ctx = requestcontext.WithSessionID(ctx, "sess-77")
		return requestcontext.WithTokenIssuedAt(ctx, issuedAt)
	})

	require.NotNil(t, svc.lastReq)
	require.NotNil(t, svc.lastReq.UserID)
	assert.Equal(t, tokenUser, *svc.lastReq.UserID)
	assert.Empty(t, svc.lastReq.UserEmail, "body identity ignored when a token is present")
	assert.Equal(t, "sess-77", svc.lastReq.SessionID)
	require.NotNil(t, svc.lastReq.TokenIssuedAt)
	assert.Equal(t, issuedAt, *svc.lastReq.TokenIssuedAt)
}

func TestAssessBodyAuthFallback(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	bodyUser := uuid.New()
	postAssess(t, router, `{
		"amount": 50,
		"orderId": 42,
		"shippingData": {"country": "US", "state": "OR", "city": "Portland"},
		"auth": {"user": {"id": "`+bodyUser.String()+`", "email": "shopper@example.com", "userType": "customer"}}
	}`)

	require.NotNil(t, svc.lastReq)
	require.NotNil(t, svc.lastReq.UserID)
	assert.Equal(t, bodyUser, *svc.lastReq.UserID)
	assert.Equal(t, "shopper@example.com", svc.lastReq.UserEmail)
	assert.Equal(t, "customer", svc.lastReq.UserRole)
	require.NotNil(t, svc.lastReq.OrderID)
	assert.Equal(t, int64(42), *svc.lastReq.OrderID)
	assert.Equal(t, risk.Shipping{Country: "US", State: "OR", City: "Portland"}, svc.lastReq.Shipping)
}

func TestAssessItemIDFallbackAndDefaults(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	postAssess(t, router, `{
		"amount": 19.99,
		"items": [{"id": "legacy-1", "price": 19.99}]
	}`)

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, int64(19_99), svc.lastReq.AmountCents)
	assert.Equal(t, "USD", svc.lastReq.Currency)
	require.Len(t, svc.lastReq.Items, 1)
	assert.Equal(t, "legacy-1", svc.lastReq.Items[0].ProductID)
	assert.Equal(t, int64(19_99), svc.lastReq.Items[0].PriceCents)
}
