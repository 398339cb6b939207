package messaging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/memory"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/messaging/rabbitmq"
)

type recordingSink struct {
	envelopes []rabbitmq.Envelope
	failOn    string
}

func (s *recordingSink) PublishEnvelope(_ context.Context, envelope rabbitmq.Envelope) error {
	if envelope.Name == s.failOn {
		return errors.New("channel closed")
	}
	s.envelopes = append(s.envelopes, envelope)
	return nil
}

func TestEventPublisher_WrapsEvents(t *testing.T) {
	sink := &recordingSink{}
	at := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	err := NewEventPublisher(sink).Publish(context.Background(),
		domain.OrderPlaced{BaseEvent: domain.BaseEvent{Timestamp: at}, OrderID: 4, Kind: domain.KindFuel, ItemName: "Diesel", Quantity: 500},
		domain.StockLow{BaseEvent: domain.BaseEvent{Timestamp: at}, InventoryItemID: 2, Kind: domain.KindShop, Available: 3, Threshold: 10},
	)
	require.NoError(t, err)
	require.Len(t, sink.envelopes, 2)
	require.Equal(t, "procurement.order.placed", sink.envelopes[0].Name)
	require.Equal(t, at, sink.envelopes[0].OccurredAt)

	var placed domain.OrderPlaced
	require.NoError(t, sink.envelopes[0].Decode(&placed))
	require.Equal(t, int64(4), placed.OrderID)
	require.Equal(t, domain.KindFuel, placed.Kind)
}

func TestEventPublisher_ContinuesAfterFailure(t *testing.T) {
	sink := &recordingSink{failOn: "procurement.order.placed"}
	err := NewEventPublisher(sink).Publish(context.Background(),
		domain.OrderPlaced{OrderID: 1},
		domain.OrderRejectedEvent{OrderID: 1},
	)
	require.Error(t, err)
	require.Len(t, sink.envelopes, 1)
	require.Equal(t, "procurement.order.rejected", sink.envelopes[0].Name)
}

func TestFanout(t *testing.T) {
	recorder := memory.NewEventRecorder()
	sink := &recordingSink{}
	fanout := Fanout{recorder, nil, NewEventPublisher(sink)}

	require.NoError(t, fanout.Publish(context.Background(), domain.OrderAcceptedEvent{OrderID: 9}))
	require.Equal(t, []string{"procurement.order.accepted"}, recorder.Names())
	require.Len(t, sink.envelopes, 1)
}

func TestLogPublisher_WritesEventNames(t *testing.T) {
	var buf bytes.Buffer
	publisher := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))
	require.NoError(t, publisher.Publish(context.Background(), domain.OrderPlaced{OrderID: 3}, nil))
	require.Contains(t, buf.String(), `"event":"procurement.order.placed"`)
}
