// Package jwtsession parses the storefront's bearer tokens.
//
// The risk engine does not issue tokens; it only reads the session claims the
// auth service put in them. A missing or invalid token is not an error here -
// anonymous checkout is a supported flow - so callers treat parse failures as
// "no session" rather than rejecting the request.
package jwtsession

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims carried by storefront access tokens.
type Claims struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	UserRole  string `json:"user_role,omitempty"`
	jwt.RegisteredClaims
}

// Session is the subset of token claims the risk engine consumes.
type Session struct {
	UserID    uuid.UUID
	SessionID string
	UserRole  string
	IssuedAt  time.Time
}

// Parser validates bearer tokens against the shared signing key.
type Parser struct {
	signingKey []byte
}

func NewParser(signingKey string) *Parser {
	return &Parser{signingKey: []byte(signingKey)}
}

// Parse validates the token signature and extracts the session claims.
// Expired tokens still parse: token age is itself a risk signal, so the
// engine wants to see old sessions rather than discard them.
func (p *Parser) Parse(tokenString string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.signingKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse user_id claim: %w", err)
	}

	session := &Session{
		UserID:    userID,
		SessionID: claims.SessionID,
		UserRole:  claims.UserRole,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	return session, nil
}

// Issue creates a signed token for the given session. Used by the seed tool
// and tests; production tokens come from the auth service.
func (p *Parser) Issue(userID uuid.UUID, sessionID, role string, issuedAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:    userID.String(),
		SessionID: sessionID,
		UserRole:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(72 * time.Hour)),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(p.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
