package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"folio-cms/pkg/config"
	"folio-cms/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ContentExchange        = "content"
	RevalidationQueueName  = "content_revalidation"
	RevalidationRoutingKey = "content.revalidate"
	EventTypeSaved         = "saved"
	EventTypeDeleted       = "deleted"
	defaultPublishTimeout  = 5 * time.Second
)

// RevalidationEvent tells downstream renderers which pages went stale.
type RevalidationEvent struct {
	Type       string    `json:"type"`
	ParentType string    `json:"parent_type"`
	ParentID   string    `json:"parent_id"`
	Slugs      []string  `json:"slugs,omitempty"`
	Partial    bool      `json:"partial"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
	mu      sync.Mutex
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ContentExchange, // name
		"direct",        // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		RevalidationQueueName, // name
		true,                  // durable
		false,                 // delete when unused
		false,                 // exclusive
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		RevalidationQueueName,  // queue name
		RevalidationRoutingKey, // routing key
		ContentExchange,        // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log.WithField("component", "rabbitmq"),
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishRevalidation publishes a persistent revalidation event.
func (c *Client) PublishRevalidation(ctx context.Context, event RevalidationEvent) error {
	body, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultPublishTimeout)
		defer cancel()
	}

	c.mu.Lock()
	err = c.channel.PublishWithContext(ctx,
		ContentExchange,        // exchange
		RevalidationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish to exchange=%s, routing_key=%s: %v", ContentExchange, RevalidationRoutingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published %s event for %s/%s", event.Type, event.ParentType, event.ParentID)
	return nil
}

func encodeEvent(event RevalidationEvent) ([]byte, error) {
	if event.Type != EventTypeSaved && event.Type != EventTypeDeleted {
		return nil, fmt.Errorf("unknown event type %q", event.Type)
	}
	if event.ParentType == "" || event.ParentID == "" {
		return nil, fmt.Errorf("event is missing its parent")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return body, nil
}
