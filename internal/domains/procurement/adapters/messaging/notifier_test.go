package messaging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/messaging/rabbitmq"
)

func envelopeFor(t *testing.T, event domain.Event) rabbitmq.Envelope {
	t.Helper()
	envelope, err := rabbitmq.NewEnvelope(event.EventName(), time.Now(), event)
	require.NoError(t, err)
	return envelope
}

func TestNotice(t *testing.T) {
	cases := []struct {
		event domain.Event
		want  string
	}{
		{domain.OrderPlaced{OrderID: 4, Kind: domain.KindFuel, ItemName: "Diesel", Quantity: 500}, "New fuel order #4: 500 x Diesel"},
		{domain.OrderRejectedEvent{OrderID: 5, Kind: domain.KindShop, SupplierEmail: "goods@wholesale.lk"}, "goods@wholesale.lk rejected shop order #5"},
		{domain.StockLow{ItemName: "Soap", Available: 7, Threshold: 10}, "Low stock: Soap has 7 left (threshold 10)"},
		{domain.SaleRecorded{Quantity: 1}, "procurement.inventory.sale_recorded"},
	}
	for _, tc := range cases {
		notice, err := Notice(envelopeFor(t, tc.event))
		require.NoError(t, err)
		require.Equal(t, tc.want, notice)
	}
}

func TestNotifier_Handle(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))
	err := notifier.Handle(context.Background(), envelopeFor(t, domain.InventoryReconciled{ItemName: "Diesel", Policy: domain.PolicyOverwrite, Available: 500}))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Diesel restocked (overwrite): 500 available")

	bad := rabbitmq.Envelope{Name: domain.StockLow{}.EventName(), Payload: []byte(`"not an object"`)}
	require.Error(t, notifier.Handle(context.Background(), bad))
}
