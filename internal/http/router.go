// Package http assembles the service's router and middleware chain.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bazaar/internal/jwtsession"
	"bazaar/internal/risk/handler"
	"bazaar/pkg/platform/httputil"
	"bazaar/pkg/platform/middleware/metadata"
	"bazaar/pkg/platform/middleware/requesttime"
	sessionmw "bazaar/pkg/platform/middleware/session"
)

// NewRouter wires the middleware chain and all public endpoints.
//
// Order matters: request time first so every later stage shares one clock,
// then client metadata, then the optional bearer session. The risk handler
// sees a fully populated request context.
func NewRouter(riskHandler *handler.Handler, parser *jwtsession.Parser) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(sessionmw.Middleware(parser))

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	riskHandler.Register(r)
	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
