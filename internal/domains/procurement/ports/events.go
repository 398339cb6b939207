package ports

import (
	"context"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

// EventPublisher fans domain events out to interested collaborators.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) Publish(context.Context, ...domain.Event) error { return nil }

// NoopEventPublisher discards every event.
var NoopEventPublisher EventPublisher = noopEventPublisher{}

// SupplierDirectory answers whether an email belongs to a registered supplier.
type SupplierDirectory interface {
	Exists(ctx context.Context, email string) (bool, error)
}
