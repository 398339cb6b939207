package application

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

// Service orchestrates the procurement bounded context: order placement,
// supplier acceptance, inventory reconciliation and sales.
type Service struct {
	uow       ports.UnitOfWork
	suppliers ports.SupplierDirectory
	publisher ports.EventPublisher
	policies  domain.Policies
	now       func() time.Time
	logger    *slog.Logger
}

// Option customises the service.
type Option func(*Service)

// WithEventPublisher injects the collaborator that receives domain events after commit.
func WithEventPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// WithPolicies overrides the per-kind stock rules.
func WithPolicies(policies domain.Policies) Option {
	return func(s *Service) {
		if policies != nil {
			s.policies = policies
		}
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for best-effort event delivery failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService wires the procurement service with its dependencies.
func NewService(uow ports.UnitOfWork, suppliers ports.SupplierDirectory, opts ...Option) *Service {
	s := &Service{
		uow:       uow,
		suppliers: suppliers,
		publisher: ports.NoopEventPublisher,
		policies:  domain.DefaultPolicies(),
		now:       time.Now,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Policies exposes the effective per-kind stock rules.
func (s *Service) Policies() domain.Policies {
	return s.policies
}

// publish delivers events after the transaction committed. Delivery is best
// effort: the state change already happened, so failures are only logged.
func (s *Service) publish(ctx context.Context, events ...domain.Event) {
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		names := make([]string, 0, len(events))
		for _, event := range events {
			names = append(names, event.EventName())
		}
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish procurement events",
			slog.Any("events", names), slog.String("error", err.Error()))
	}
}

func (s *Service) base() domain.BaseEvent {
	return domain.BaseEvent{Timestamp: s.now().UTC()}
}

func (s *Service) stockLowEvent(item *domain.InventoryItem) domain.StockLow {
	policy := s.policies.For(item.Kind)
	return domain.StockLow{
		BaseEvent:       s.base(),
		InventoryItemID: item.ID,
		Kind:            item.Kind,
		ItemName:        item.ItemName,
		Available:       item.Available,
		Threshold:       policy.LowStockThreshold,
	}
}

var _ ports.Service = (*Service)(nil)
