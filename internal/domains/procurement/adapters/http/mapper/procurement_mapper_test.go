package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

func TestPlaceOrder_DecodesDate(t *testing.T) {
	var payload PlaceOrder
	body := `{"inventoryItemId":3,"itemName":"Diesel","quantity":500,"supplierEmail":"fuel@lanka-petro.lk","wholesalePrice":10,"orderDate":"2024-06-10"}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.True(t, payload.IsLowStock())

	input := ToLowStockInput(domain.KindFuel, payload)
	require.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), input.OrderDate)
	require.Equal(t, int64(3), input.InventoryItemID)

	var bare PlaceOrder
	require.NoError(t, json.Unmarshal([]byte(`{"itemName":"Soap","quantity":50,"supplierEmail":"x@y.lk"}`), &bare))
	require.False(t, bare.IsLowStock())
	require.True(t, ToNewItemInput(domain.KindShop, bare).OrderDate.IsZero())
}

func TestFromOrder_EncodesDateOnly(t *testing.T) {
	order := &domain.Order{ID: 1, Kind: domain.KindFuel, ItemName: "Diesel", Quantity: 500, TotalAmount: 5000,
		OrderDate: time.Date(2024, 6, 10, 15, 4, 0, 0, time.UTC), Status: domain.OrderPending}
	raw, err := json.Marshal(FromOrder(order))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"orderDate":"2024-06-10"`)
	require.Contains(t, string(raw), `"totalAmount":5000`)
}

func TestFromOrderList_EmptyIsExplicit(t *testing.T) {
	list := FromOrderList(nil, "No orders found")
	require.Zero(t, list.Count)
	require.NotNil(t, list.Orders)
	require.Equal(t, "No orders found", list.Message)

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"orders":[]`)

	full := FromOrderList([]*domain.Order{{ID: 1}}, "No orders found")
	require.Equal(t, 1, full.Count)
	require.Empty(t, full.Message)
}

func TestFromInventoryItem_FlagsLowStock(t *testing.T) {
	policies := domain.DefaultPolicies()
	low := FromInventoryItem(&domain.InventoryItem{Kind: domain.KindShop, Available: 9}, policies)
	require.True(t, low.LowStock)
	ok := FromInventoryItem(&domain.InventoryItem{Kind: domain.KindShop, Available: 10}, policies)
	require.False(t, ok.LowStock)
	fuel := FromInventoryItem(&domain.InventoryItem{Kind: domain.KindFuel, Available: 20000}, policies)
	require.True(t, fuel.LowStock)
}
