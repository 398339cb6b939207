package types

import (
	"time"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

// SupplierIdentity is the authenticated supplier acting on its orders.
type SupplierIdentity struct {
	SupplierID int64
	Email      string
}

// PlaceLowStockOrderInput reorders a known inventory item. InventoryItemID
// takes precedence over ItemName. A zero WholesalePrice falls back to the
// item's unit price.
type PlaceLowStockOrderInput struct {
	Kind            domain.ItemKind
	InventoryItemID int64
	ItemName        string
	Quantity        int64
	SupplierEmail   string
	WholesalePrice  float64
	OrderDate       time.Time
}

// PlaceNewItemOrderInput orders an item that may not be stocked yet.
type PlaceNewItemOrderInput struct {
	Kind          domain.ItemKind
	ItemName      string
	Quantity      int64
	SupplierEmail string
	OrderDate     time.Time
}

// OrderRef addresses an order of a given kind.
type OrderRef struct {
	Kind domain.ItemKind
	ID   int64
}

// AcceptOrderInput carries the supplier confirmation. A zero Quantity
// confirms the ordered quantity and a zero OrderDate keeps the placed date.
type AcceptOrderInput struct {
	OrderRef
	Supplier       SupplierIdentity
	Quantity       int64
	WholesalePrice float64
	OrderDate      time.Time
}

// RejectOrderInput carries the supplier rejection.
type RejectOrderInput struct {
	OrderRef
	Supplier SupplierIdentity
}

// AddToInventoryInput applies a received order to live stock.
type AddToInventoryInput struct {
	Kind            domain.ItemKind
	ReceivedOrderID int64
	Quantity        int64
}

// RecordSaleInput decrements stock for a sale or consumption.
type RecordSaleInput struct {
	Kind            domain.ItemKind
	InventoryItemID int64
	Quantity        int64
}
