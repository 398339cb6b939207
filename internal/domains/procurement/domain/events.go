package domain

import "time"

// Event is the base interface for all domain events.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent provides common event metadata.
type BaseEvent struct {
	Timestamp time.Time `json:"occurredAt"`
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// OrderPlaced is raised when a procurement order is created.
type OrderPlaced struct {
	BaseEvent
	OrderID       int64    `json:"orderId"`
	Kind          ItemKind `json:"kind"`
	ItemName      string   `json:"itemName"`
	Quantity      int64    `json:"quantity"`
	SupplierEmail string   `json:"supplierEmail"`
	TotalAmount   float64  `json:"totalAmount"`
}

func (e OrderPlaced) EventName() string { return "procurement.order.placed" }

// OrderAcceptedEvent is raised when a supplier accepts an order.
type OrderAcceptedEvent struct {
	BaseEvent
	OrderID       int64    `json:"orderId"`
	Kind          ItemKind `json:"kind"`
	SupplierEmail string   `json:"supplierEmail"`
	TotalAmount   float64  `json:"totalAmount"`
}

func (e OrderAcceptedEvent) EventName() string { return "procurement.order.accepted" }

// OrderRejectedEvent is raised when a supplier rejects an order.
type OrderRejectedEvent struct {
	BaseEvent
	OrderID       int64    `json:"orderId"`
	Kind          ItemKind `json:"kind"`
	SupplierEmail string   `json:"supplierEmail"`
}

func (e OrderRejectedEvent) EventName() string { return "procurement.order.rejected" }

// ReceivedOrderCreated is raised when an accepted order materialises a delivery.
type ReceivedOrderCreated struct {
	BaseEvent
	ReceivedOrderID int64    `json:"receivedOrderId"`
	OrderID         int64    `json:"orderId"`
	Kind            ItemKind `json:"kind"`
	ItemName        string   `json:"itemName"`
	Quantity        int64    `json:"quantity"`
}

func (e ReceivedOrderCreated) EventName() string { return "procurement.received_order.created" }

// InventoryReconciled is raised when a delivery is applied to live stock.
type InventoryReconciled struct {
	BaseEvent
	ReceivedOrderID int64           `json:"receivedOrderId"`
	InventoryItemID int64           `json:"inventoryItemId"`
	Kind            ItemKind        `json:"kind"`
	ItemName        string          `json:"itemName"`
	Quantity        int64           `json:"quantity"`
	Available       int64           `json:"available"`
	Policy          ReconcilePolicy `json:"policy"`
	ItemCreated     bool            `json:"itemCreated"`
}

func (e InventoryReconciled) EventName() string { return "procurement.inventory.reconciled" }

// SaleRecorded is raised when stock is sold or consumed.
type SaleRecorded struct {
	BaseEvent
	InventoryItemID int64    `json:"inventoryItemId"`
	Kind            ItemKind `json:"kind"`
	Quantity        int64    `json:"quantity"`
	Available       int64    `json:"available"`
}

func (e SaleRecorded) EventName() string { return "procurement.inventory.sale_recorded" }

// StockLow signals that an item reached its reorder threshold.
type StockLow struct {
	BaseEvent
	InventoryItemID int64    `json:"inventoryItemId"`
	Kind            ItemKind `json:"kind"`
	ItemName        string   `json:"itemName"`
	Available       int64    `json:"available"`
	Threshold       int64    `json:"threshold"`
}

func (e StockLow) EventName() string { return "procurement.inventory.stock_low" }
