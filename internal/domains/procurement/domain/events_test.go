package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventNames(t *testing.T) {
	cases := []struct {
		event Event
		want  string
	}{
		{OrderPlaced{}, "procurement.order.placed"},
		{OrderAcceptedEvent{}, "procurement.order.accepted"},
		{OrderRejectedEvent{}, "procurement.order.rejected"},
		{ReceivedOrderCreated{}, "procurement.received_order.created"},
		{InventoryReconciled{}, "procurement.inventory.reconciled"},
		{SaleRecorded{}, "procurement.inventory.sale_recorded"},
		{StockLow{}, "procurement.inventory.stock_low"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.event.EventName())
	}
}

func TestOrderDecisionEventsAreDistinctFromStatuses(t *testing.T) {
	at := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	order, err := NewOrder(KindFuel, "Diesel", 500, "fuel@lanka-petro.lk", at)
	require.NoError(t, err)
	require.NoError(t, order.Accept(500, 10, at))
	require.Equal(t, OrderAccepted, order.Status)

	var event Event = OrderAcceptedEvent{BaseEvent: BaseEvent{Timestamp: at}, OrderID: order.ID, Kind: order.Kind}
	require.Equal(t, at, event.OccurredAt())
	require.NotEqual(t, string(OrderAccepted), event.EventName())
}
