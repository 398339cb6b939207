package messaging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/messaging/rabbitmq"
)

// EnvelopeSink is the broker side of the publisher.
type EnvelopeSink interface {
	PublishEnvelope(ctx context.Context, envelope rabbitmq.Envelope) error
}

var _ ports.EventPublisher = (*EventPublisher)(nil)

// EventPublisher forwards procurement events to the broker, one envelope per event.
type EventPublisher struct {
	sink EnvelopeSink
}

func NewEventPublisher(sink EnvelopeSink) *EventPublisher {
	return &EventPublisher{sink: sink}
}

// Publish attempts every event and joins the failures.
func (p *EventPublisher) Publish(ctx context.Context, events ...domain.Event) error {
	var errs []error
	for _, event := range events {
		if event == nil {
			continue
		}
		envelope, err := rabbitmq.NewEnvelope(event.EventName(), event.OccurredAt(), event)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := p.sink.PublishEnvelope(ctx, envelope); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Fanout delivers events to several publishers.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, events ...domain.Event) error {
	var errs []error
	for _, publisher := range f {
		if publisher == nil {
			continue
		}
		if err := publisher.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogPublisher writes every event to a structured logger.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...domain.Event) error {
	for _, event := range events {
		if event == nil {
			continue
		}
		p.logger.InfoContext(ctx, "domain event",
			slog.String("event", event.EventName()),
			slog.Time("occurredAt", event.OccurredAt()),
		)
	}
	return nil
}
