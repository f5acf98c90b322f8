package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/Careerly/config"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
)

const (
	AssessmentGenerated = "assessment.generated"
	AssessmentScored    = "assessment.scored"
)

// AssessmentEvent is the payload published after an assessment changes.
type AssessmentEvent struct {
	AssessmentID string    `json:"assessment_id"`
	UserID       string    `json:"user_id"`
	Category     string    `json:"category"`
	QuizScore    int       `json:"quiz_score"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, event AssessmentEvent) error
	Close() error
}

// NewPublisher returns an AMQP publisher, or a no-op one when no broker
// URL is configured.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if cfg.Broker.URL == "" {
		log.Info().Msg("RABBITMQ_URL is not set. Assessment events will not be published.")
		return NoopPublisher{}, nil
	}
	conn, err := amqp.Dial(cfg.Broker.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Broker.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Broker.Exchange, err)
	}

	log.Info().Str("exchange", cfg.Broker.Exchange).Msg("Assessment event publisher connected")
	return &amqpPublisher{conn: conn, ch: ch, exchange: cfg.Broker.Exchange}, nil
}

type amqpPublisher struct {
	mu       sync.Mutex // amqp channels are not safe for concurrent publishes
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func (p *amqpPublisher) Publish(ctx context.Context, routingKey string, event AssessmentEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", routingKey, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close RabbitMQ channel")
	}
	return p.conn.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, AssessmentEvent) error { return nil }
func (NoopPublisher) Close() error                                        { return nil }
