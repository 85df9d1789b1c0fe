// Package handler exposes the risk engine over HTTP.
package handler

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bazaar/internal/risk"
	"bazaar/pkg/platform/httputil"
	"bazaar/pkg/requestcontext"
)

// AssessService is the slice of the risk service the handler needs.
type AssessService interface {
	Assess(ctx context.Context, req risk.AssessRequest) risk.Assessment
}

type Handler struct {
	service AssessService
	logger  *slog.Logger
}

func New(service AssessService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/risk/assess", h.handleAssess)
}

// handleAssess scores one payment attempt. The only client error is a
// malformed amount; everything else, including the fail-safe path, answers
// HTTP 200 with a decision.
func (h *Handler) handleAssess(w http.ResponseWriter, r *http.Request) {
	body, ok := httputil.Decode[assessBody](w, r, h.logger)
	if !ok {
		return
	}

	if body.Amount == nil || math.IsNaN(*body.Amount) || math.IsInf(*body.Amount, 0) || *body.Amount <= 0 {
		httputil.WriteBadRequest(w, "Invalid payment amount")
		return
	}

	assessment := h.service.Assess(r.Context(), body.toServiceRequest(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, newAssessResponse(assessment))
}

// assessBody is the checkout payload. Amounts and item prices arrive in
// dollars and convert to cents at the boundary; everything past the handler
// works in integer cents.
type assessBody struct {
	Amount            *float64      `json:"amount"`
	Currency          string        `json:"currency"`
	Items             []itemBody    `json:"items"`
	OrderID           *int64        `json:"orderId"`
	PaymentMethodID   string        `json:"paymentMethodId"`
	SavePaymentMethod bool          `json:"savePaymentMethod"`
	Auth              *authBody     `json:"auth"`
	ShippingData      *shippingBody `json:"shippingData"`
}

type itemBody struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	StoreID   string  `json:"storeId"`
	StoreName string  `json:"storeName"`
}

type authBody struct {
	User *authUserBody `json:"user"`
}

type authUserBody struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

type shippingBody struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

func dollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// toServiceRequest converts the wire payload plus ambient request context
// into the service-level request. The bearer token, when present, is the
// authoritative identity; the body's auth.user block is the fallback for
// callers that have not attached the token to this call.
func (b *assessBody) toServiceRequest(ctx context.Context) risk.AssessRequest {
	req := risk.AssessRequest{
		AmountCents:       dollarsToCents(*b.Amount),
		Currency:          b.Currency,
		OrderID:           b.OrderID,
		PaymentMethodID:   b.PaymentMethodID,
		SavePaymentMethod: b.SavePaymentMethod,
		SessionID:         requestcontext.SessionID(ctx),
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	for _, item := range b.Items {
		productID := item.ProductID
		if productID == "" {
			productID = item.ID
		}
		req.Items = append(req.Items, risk.RequestItem{
			ProductID:  productID,
			Name:       item.Name,
			PriceCents: dollarsToCents(item.Price),
			Quantity:   item.Quantity,
			StoreID:    item.StoreID,
			StoreName:  item.StoreName,
		})
	}

	if userID := requestcontext.UserID(ctx); userID != (uuid.UUID{}) {
		uid := userID
		req.UserID = &uid
	} else if b.Auth != nil && b.Auth.User != nil {
		if uid, err := uuid.Parse(b.Auth.User.ID); err == nil {
			req.UserID = &uid
		}
		req.UserEmail = b.Auth.User.Email
		req.UserRole = b.Auth.User.UserType
	}
	if iat, ok := requestcontext.TokenIssuedAt(ctx); ok {
		req.TokenIssuedAt = &iat
	}

	if b.ShippingData != nil {
		req.Shipping = risk.Shipping{
			Country: b.ShippingData.Country,
			State:   b.ShippingData.State,
			City:    b.ShippingData.City,
		}
	}
	return req
}

// assessResponse is the wire shape of a scored payment attempt.
type assessResponse struct {
	Success        bool               `json:"success"`
	RiskAssessment riskAssessmentBody `json:"riskAssessment"`
}

type riskAssessmentBody struct {
	Decision   string        `json:"decision"`
	Score      int           `json:"score"`
	Confidence float64       `json:"confidence"`
	Factors    []risk.Factor `json:"factors"`
	Timestamp  string        `json:"timestamp"`
}

func newAssessResponse(a risk.Assessment) assessResponse {
	factors := a.Factors
	if factors == nil {
		factors = []risk.Factor{}
	}
	return assessResponse{
		Success: true,
		RiskAssessment: riskAssessmentBody{
			Decision:   string(a.Decision),
			Score:      a.Score,
			Confidence: a.Confidence,
			Factors:    factors,
			Timestamp:  a.ComputedAt.UTC().Format(time.RFC3339),
		},
	}
}
