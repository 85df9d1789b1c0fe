package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/account"
	"bazaar/internal/cart"
	"bazaar/internal/catalog"
	"bazaar/internal/jwtsession"
	"bazaar/internal/orders"
	"bazaar/internal/risk"
	"bazaar/internal/risk/handler"
	"bazaar/internal/risk/ports"
	"bazaar/internal/risk/store"
	"bazaar/internal/session"
)

// newTestServer assembles the full stack on in-memory adapters.
func newTestServer(t *testing.T) (http.Handler, *store.InMemory, *jwtsession.Parser, *account.InMemory) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	catalogStore := catalog.NewInMemory()
	catalogStore.Add(ports.Product{ID: "p1", Name: "Ceramic Mug", UnitPriceCents: 1500, StoreID: "s1", StoreName: "Mug Store"})

	accounts := account.NewInMemory()
	assessments := store.NewInMemory()
	activity := session.NewMemoryActivity()

	enricher := risk.NewEnricher(catalogStore, orders.NewInMemory(), cart.NewInMemory(), logger)
	collector := risk.NewCollector(accounts, orders.NewInMemory(), activity, logger)
	svc, err := risk.NewService(enricher, collector, assessments, logger,
		risk.WithSessionActivity(activity),
	)
	require.NoError(t, err)

	parser := jwtsession.NewParser("test-signing-key")
	router := NewRouter(handler.New(svc, logger), parser)
	return router, assessments, parser, accounts
}

func TestHealthz(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestAssessEndToEnd(t *testing.T) {
	router, assessments, _, _ := newTestServer(t)

	body := `{"amount": 15, "items": [{"productId": "p1", "quantity": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/risk/assess", strings.NewReader(body))
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success        bool `json:"success"`
		RiskAssessment struct {
			Decision string `json:"decision"`
			Score    int    `json:"score"`
		} `json:"riskAssessment"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "allow", resp.RiskAssessment.Decision)
	assert.Zero(t, resp.RiskAssessment.Score)

	assert.Equal(t, 1, assessments.Len(), "assessment should be persisted")
}

func TestAssessWithBearerToken(t *testing.T) {
	router, _, parser, accounts := newTestServer(t)

	userID := uuid.New()
	accounts.Add(ports.Account{
		ID:        userID,
		Email:     "vendor@example.com",
		Role:      "customer",
		CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
	})
	accounts.GrantStore(userID)

	token, err := parser.Issue(userID, "sess-1", "customer", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	body := `{"amount": 15, "items": [{"productId": "p1", "quantity": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/risk/assess", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		RiskAssessment struct {
			Decision string `json:"decision"`
			Factors  []struct {
				Factor string `json:"factor"`
				Impact int    `json:"impact"`
			} `json:"factors"`
		} `json:"riskAssessment"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "allow", resp.RiskAssessment.Decision)

	// Store ownership classifies the user as a vendor.
	var names []string
	for _, f := range resp.RiskAssessment.Factors {
		names = append(names, f.Factor)
	}
	assert.Contains(t, names, "TRUSTED_ROLE")
}

func TestAssessInvalidAmountRejected(t *testing.T) {
	router, assessments, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/risk/assess", strings.NewReader(`{"amount": -5}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Invalid payment amount"}`, rr.Body.String())
	assert.Zero(t, assessments.Len(), "nothing persisted on invalid input")
}
