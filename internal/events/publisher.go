// Package events streams persisted risk assessments to Kafka so downstream
// consumers (fraud review tooling, analytics) see decisions as they happen.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"bazaar/internal/risk/ports"
)

// assessmentEvent is the wire shape of one published assessment.
type assessmentEvent struct {
	ID              string    `json:"id"`
	UserID          *string   `json:"userId,omitempty"`
	Decision        string    `json:"decision"`
	RiskScore       int       `json:"riskScore"`
	Confidence      float64   `json:"confidence"`
	AmountCents     int64     `json:"amountCents"`
	Currency        string    `json:"currency"`
	ItemCount       int       `json:"itemCount"`
	StoreCount      int       `json:"storeCount"`
	Factors         []factor  `json:"factors"`
	ShippingCountry string    `json:"shippingCountry,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type factor struct {
	Factor      string `json:"factor"`
	Impact      int    `json:"impact"`
	Description string `json:"description"`
}

// KafkaPublisher produces assessment events asynchronously. Delivery failures
// are logged, never surfaced to the request path.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher connects to the brokers and ensures the topic exists.
func NewKafkaPublisher(ctx context.Context, brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	if err := ensureTopic(ctx, client, topic); err != nil {
		client.Close()
		return nil, err
	}

	return &KafkaPublisher{client: client, topic: topic, logger: logger}, nil
}

func ensureTopic(ctx context.Context, client *kgo.Client, topic string) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopic(ctx, 3, 1, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	// Already-exists is the normal steady state.
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", topic, resp.Err)
	}
	return nil
}

// AssessmentCreated publishes the record. Fire-and-forget: the produce
// callback only logs.
func (p *KafkaPublisher) AssessmentCreated(ctx context.Context, rec *ports.AssessmentRecord) {
	evt := assessmentEvent{
		ID:              rec.ID.String(),
		Decision:        rec.Decision,
		RiskScore:       rec.RiskScore,
		Confidence:      rec.Confidence,
		AmountCents:     rec.AmountCents,
		Currency:        rec.Currency,
		ItemCount:       rec.ItemCount,
		StoreCount:      rec.StoreCount,
		ShippingCountry: rec.ShippingCountry,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.UserID != nil {
		id := rec.UserID.String()
		evt.UserID = &id
	}
	if err := json.Unmarshal(rec.FactorsJSON, &evt.Factors); err != nil {
		evt.Factors = []factor{}
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("marshal assessment event", "error", err, "assessment_id", rec.ID)
		return
	}

	record := &kgo.Record{
		Key:   []byte(rec.ID.String()),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("publish assessment event", "error", err, "assessment_id", rec.ID)
		}
	})
}

// Close flushes pending records and releases the client.
func (p *KafkaPublisher) Close(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		return fmt.Errorf("flush kafka producer: %w", err)
	}
	p.client.Close()
	return nil
}
