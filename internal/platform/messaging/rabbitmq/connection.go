package rabbitmq

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "zenofuel.events"
	exchangeType    = "topic"

	dialAttempts = 5
	dialBackoff  = 2 * time.Second
)

// Broker owns one connection and channel bound to a durable topic exchange.
type Broker struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// Config describes how to reach the broker.
type Config struct {
	URL      string
	Exchange string
	Logger   *slog.Logger
}

// Connect dials the broker with retries and declares the exchange.
func Connect(ctx context.Context, cfg Config) (*Broker, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("rabbitmq url is required")
	}
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var conn *amqp.Connection
	var err error
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		conn, err = amqp.Dial(cfg.URL)
		if err == nil {
			break
		}
		logger.WarnContext(ctx, "rabbitmq dial failed", slog.Int("attempt", attempt), slog.String("error", err.Error()))
		if attempt == dialAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(dialBackoff):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("could not open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		exchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("could not declare exchange: %w", err)
	}
	return &Broker{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

// Exchange returns the declared exchange name.
func (b *Broker) Exchange() string { return b.exchange }

// Close releases the channel and the connection.
func (b *Broker) Close() error {
	if b == nil {
		return nil
	}
	chErr := b.ch.Close()
	connErr := b.conn.Close()
	if chErr != nil {
		return chErr
	}
	return connErr
}
