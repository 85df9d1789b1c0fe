// Package session resolves the optional bearer session on incoming requests.
package session

import (
	"net/http"
	"strings"

	"bazaar/internal/jwtsession"
	"bazaar/pkg/requestcontext"
)

// Middleware parses an optional Authorization bearer token and, when valid,
// injects the user ID, session ID, and token issued-at into the context.
// Invalid or absent tokens leave the request anonymous; the risk engine
// treats missing session data as "unknown", never as an authentication error.
func Middleware(parser *jwtsession.Parser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if parser == nil || !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			session, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := requestcontext.WithUserID(r.Context(), session.UserID)
			ctx = requestcontext.WithSessionID(ctx, session.SessionID)
			if !session.IssuedAt.IsZero() {
				ctx = requestcontext.WithTokenIssuedAt(ctx, session.IssuedAt)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
