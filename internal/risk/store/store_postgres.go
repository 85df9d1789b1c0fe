package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"bazaar/internal/risk/ports"
	"bazaar/pkg/platform/sentinel"
)

// Postgres persists assessments in the risk_assessments table. Rows are
// written once; only AttachJustification touches them afterwards, and only
// while the narrative columns are still null.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Save(ctx context.Context, rec *ports.AssessmentRecord) error {
	query := `
		INSERT INTO risk_assessments (
			id, user_id, order_id, payment_intent_id,
			risk_score, decision, confidence,
			transaction_amount, currency, item_count, store_count,
			risk_factors, user_agent, ip_address,
			shipping_country, shipping_state, shipping_city,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.OrderID,
		nullString(rec.PaymentIntentID),
		rec.RiskScore,
		rec.Decision,
		rec.Confidence,
		rec.AmountCents,
		rec.Currency,
		rec.ItemCount,
		rec.StoreCount,
		rec.FactorsJSON,
		rec.UserAgent,
		rec.IPAddress,
		nullString(rec.ShippingCountry),
		nullString(rec.ShippingState),
		nullString(rec.ShippingCity),
		rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert risk assessment: %w", err)
	}
	return nil
}

func (s *Postgres) AttachJustification(ctx context.Context, id uuid.UUID, narrative string, generatedAt time.Time) error {
	query := `
		UPDATE risk_assessments
		SET ai_justification = $2, justification_generated_at = $3
		WHERE id = $1 AND ai_justification IS NULL
	`
	result, err := s.db.ExecContext(ctx, query, id, narrative, generatedAt)
	if err != nil {
		return fmt.Errorf("attach justification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("attach justification rows affected: %w", err)
	}
	if affected == 0 {
		// Either the row is missing or a narrative is already attached.
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM risk_assessments WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("attach justification existence check: %w", err)
		}
		if !exists {
			return sentinel.ErrNotFound
		}
		return sentinel.ErrConflict
	}
	return nil
}

func (s *Postgres) ByID(ctx context.Context, id uuid.UUID) (*ports.AssessmentRecord, error) {
	query := `
		SELECT id, user_id, order_id, payment_intent_id,
		       risk_score, decision, confidence,
		       transaction_amount, currency, item_count, store_count,
		       risk_factors, user_agent, ip_address,
		       shipping_country, shipping_state, shipping_city,
		       ai_justification, justification_generated_at, created_at
		FROM risk_assessments
		WHERE id = $1
	`
	var (
		rec             ports.AssessmentRecord
		paymentIntentID sql.NullString
		shippingCountry sql.NullString
		shippingState   sql.NullString
		shippingCity    sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.OrderID,
		&paymentIntentID,
		&rec.RiskScore,
		&rec.Decision,
		&rec.Confidence,
		&rec.AmountCents,
		&rec.Currency,
		&rec.ItemCount,
		&rec.StoreCount,
		&rec.FactorsJSON,
		&rec.UserAgent,
		&rec.IPAddress,
		&shippingCountry,
		&shippingState,
		&shippingCity,
		&rec.AIJustification,
		&rec.JustificationGeneratedAt,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find risk assessment: %w", err)
	}

	rec.PaymentIntentID = paymentIntentID.String
	rec.ShippingCountry = shippingCountry.String
	rec.ShippingState = shippingState.String
	rec.ShippingCity = shippingCity.String
	return &rec, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
