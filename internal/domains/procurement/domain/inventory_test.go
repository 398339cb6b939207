package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInventoryItem_ApplyDeliveryPolicies(t *testing.T) {
	fuel := &InventoryItem{Kind: KindFuel, ItemName: "Diesel", TotalReceived: 100, Available: 100}
	require.NoError(t, fuel.ApplyDelivery(500, PolicyOverwrite))
	require.Equal(t, int64(500), fuel.Available)
	require.Equal(t, int64(500), fuel.TotalReceived)

	shop := &InventoryItem{Kind: KindShop, ItemName: "Soap", TotalReceived: 20, Available: 20}
	require.NoError(t, shop.ApplyDelivery(50, PolicyAdditive))
	require.Equal(t, int64(70), shop.Available)
	require.Equal(t, int64(70), shop.TotalReceived)

	require.ErrorIs(t, shop.ApplyDelivery(0, PolicyAdditive), ErrInvalidQuantity)
	require.ErrorIs(t, shop.ApplyDelivery(1, "merge"), ErrInvalidPolicy)
}

func TestInventoryItem_SellNeverGoesNegative(t *testing.T) {
	item, err := NewInventoryItem(KindShop, "Soap", 5, 1.5, time.Now())
	require.NoError(t, err)

	require.NoError(t, item.Sell(3))
	require.Equal(t, int64(2), item.Available)
	require.Equal(t, int64(3), item.Sold)

	require.ErrorIs(t, item.Sell(3), ErrInsufficientStock)
	require.Equal(t, int64(2), item.Available)
	require.ErrorIs(t, item.Sell(0), ErrInvalidQuantity)
}

func TestNewInventoryItem_Validates(t *testing.T) {
	_, err := NewInventoryItem(KindFuel, " ", 10, 1, time.Now())
	require.ErrorIs(t, err, ErrEmptyItemName)
	_, err = NewInventoryItem(KindFuel, "Diesel", 0, 1, time.Now())
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = NewInventoryItem(KindFuel, "Diesel", 10, -1, time.Now())
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestPolicies_LowStockThresholds(t *testing.T) {
	policies := DefaultPolicies()

	fuel := policies.For(KindFuel)
	require.Equal(t, PolicyOverwrite, fuel.Reconcile)
	require.True(t, fuel.IsLowStock(20000))
	require.False(t, fuel.IsLowStock(20001))

	shop := policies.For(KindShop)
	require.Equal(t, PolicyAdditive, shop.Reconcile)
	require.True(t, shop.IsLowStock(9))
	require.False(t, shop.IsLowStock(10))
}

func TestParseHelpers(t *testing.T) {
	kind, err := ParseItemKind(" FUEL ")
	require.NoError(t, err)
	require.Equal(t, KindFuel, kind)
	_, err = ParseItemKind("gas")
	require.ErrorIs(t, err, ErrInvalidKind)

	policy, err := ParseReconcilePolicy("Additive")
	require.NoError(t, err)
	require.Equal(t, PolicyAdditive, policy)
	_, err = ParseReconcilePolicy("replace")
	require.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestLineTotal_ExactProduct(t *testing.T) {
	require.Equal(t, 5000.0, LineTotal(500, 10))
	require.Equal(t, 0.3, LineTotal(3, 0.1))
	require.Equal(t, 0.0, LineTotal(7, 0))
	require.Equal(t, 0.999, LineTotal(3, 0.333))
}
