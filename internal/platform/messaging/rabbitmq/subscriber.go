package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one envelope. Returning an error requeues nothing; the failure is logged.
type Handler func(ctx context.Context, envelope Envelope) error

// Subscriber consumes envelopes from a queue bound to the exchange.
type Subscriber struct {
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

func NewSubscriber(b *Broker, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Subscriber{ch: b.ch, exchange: b.exchange, logger: logger}
}

// Subscribe binds queue to routingKey and dispatches deliveries until ctx is done.
// An empty queue name declares an exclusive, auto-deleted queue.
func (s *Subscriber) Subscribe(ctx context.Context, queue, routingKey string, handler Handler) error {
	durable := queue != ""
	q, err := s.ch.QueueDeclare(
		queue,    // name
		durable,  // durable
		!durable, // delete when unused
		!durable, // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return fmt.Errorf("could not declare queue: %w", err)
	}
	if err := s.ch.QueueBind(q.Name, routingKey, s.exchange, false, nil); err != nil {
		return fmt.Errorf("could not bind queue: %w", err)
	}
	msgs, err := s.ch.Consume(
		q.Name, // queue
		"",     // consumer tag
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return fmt.Errorf("could not start consume: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				s.dispatch(ctx, d, handler)
			}
		}
	}()
	return nil
}

func (s *Subscriber) dispatch(ctx context.Context, d amqp.Delivery, handler Handler) {
	var envelope Envelope
	if err := json.Unmarshal(d.Body, &envelope); err != nil {
		s.logger.ErrorContext(ctx, "dropping malformed message", slog.String("routing_key", d.RoutingKey), slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}
	if err := handler(ctx, envelope); err != nil {
		s.logger.ErrorContext(ctx, "message handler failed", slog.String("event", envelope.Name), slog.String("message_id", envelope.ID), slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}
