package messaging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/messaging/rabbitmq"
)

// RoutingPattern binds a queue to every procurement event.
const RoutingPattern = "procurement.#"

// Notifier turns procurement envelopes into human readable notices.
// It stands in for the mail collaborator and only logs.
type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Notifier{logger: logger}
}

// Handle is a rabbitmq.Handler. Unknown event names are logged without a notice.
func (n *Notifier) Handle(ctx context.Context, envelope rabbitmq.Envelope) error {
	notice, err := Notice(envelope)
	if err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "notification",
		slog.String("event", envelope.Name),
		slog.String("message_id", envelope.ID),
		slog.String("notice", notice),
	)
	return nil
}

// Notice renders the message a recipient would receive for the envelope.
func Notice(envelope rabbitmq.Envelope) (string, error) {
	switch envelope.Name {
	case domain.OrderPlaced{}.EventName():
		var e domain.OrderPlaced
		if err := envelope.Decode(&e); err != nil {
			return "", err
		}
		return fmt.Sprintf("New %s order #%d: %d x %s", e.Kind, e.OrderID, e.Quantity, e.ItemName), nil
	case domain.OrderAcceptedEvent{}.EventName():
		var e domain.OrderAcceptedEvent
		if err := envelope.Decode(&e); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s accepted %s order #%d, total %.2f", e.SupplierEmail, e.Kind, e.OrderID, e.TotalAmount), nil
	case domain.OrderRejectedEvent{}.EventName():
		var e domain.OrderRejectedEvent
		if err := envelope.Decode(&e); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s rejected %s order #%d", e.SupplierEmail, e.Kind, e.OrderID), nil
	case domain.InventoryReconciled{}.EventName():
		var e domain.InventoryReconciled
		if err := envelope.Decode(&e); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s restocked (%s): %d available", e.ItemName, e.Policy, e.Available), nil
	case domain.StockLow{}.EventName():
		var e domain.StockLow
		if err := envelope.Decode(&e); err != nil {
			return "", err
		}
		return fmt.Sprintf("Low stock: %s has %d left (threshold %d)", e.ItemName, e.Available, e.Threshold), nil
	default:
		return envelope.Name, nil
	}
}
