package mapper

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

// PlaceOrder is the transport payload for both placement entry modes.
type PlaceOrder struct {
	InventoryItemID int64               `json:"inventoryItemId,omitempty"`
	ItemName        string              `json:"itemName"`
	Quantity        int64               `json:"quantity"`
	SupplierEmail   string              `json:"supplierEmail"`
	WholesalePrice  float64             `json:"wholesalePrice,omitempty"`
	OrderDate       *openapi_types.Date `json:"orderDate,omitempty"`
}

// IsLowStock reports whether the payload references a stocked item.
func (p PlaceOrder) IsLowStock() bool {
	return p.InventoryItemID > 0
}

// AcceptOrder is the supplier confirmation payload.
type AcceptOrder struct {
	Quantity       int64               `json:"quantity,omitempty"`
	WholesalePrice float64             `json:"wholesalePrice"`
	OrderDate      *openapi_types.Date `json:"orderDate,omitempty"`
}

// AddToInventory is the reconciliation payload.
type AddToInventory struct {
	Quantity int64 `json:"quantity"`
}

// RecordSale is the sale payload.
type RecordSale struct {
	Quantity int64 `json:"quantity"`
}

// Order is the transport representation of a procurement order.
type Order struct {
	ID              int64              `json:"id"`
	Kind            string             `json:"kind"`
	InventoryItemID *int64             `json:"inventoryItemId,omitempty"`
	ItemName        string             `json:"itemName"`
	Quantity        int64              `json:"quantity"`
	SupplierEmail   string             `json:"supplierEmail"`
	TotalAmount     float64            `json:"totalAmount"`
	OrderDate       openapi_types.Date `json:"orderDate"`
	Status          string             `json:"status"`
}

// OrderList wraps listings so an empty result is explicit.
type OrderList struct {
	Count   int     `json:"count"`
	Orders  []Order `json:"orders"`
	Message string  `json:"message,omitempty"`
}

// ReceivedOrder is the transport representation of a delivery.
type ReceivedOrder struct {
	ID              int64              `json:"id"`
	Kind            string             `json:"kind"`
	OrderID         int64              `json:"orderId"`
	InventoryItemID *int64             `json:"inventoryItemId,omitempty"`
	ItemName        string             `json:"itemName"`
	Quantity        int64              `json:"quantity"`
	WholesalePrice  float64            `json:"wholesalePrice"`
	TotalAmount     float64            `json:"totalAmount"`
	SupplierEmail   string             `json:"supplierEmail"`
	Status          string             `json:"status"`
	DateReceived    *time.Time         `json:"dateReceived,omitempty"`
	OrderDate       openapi_types.Date `json:"orderDate"`
}

// InventoryItem is the transport representation of live stock.
type InventoryItem struct {
	ID            int64     `json:"id"`
	Kind          string    `json:"kind"`
	ItemName      string    `json:"itemName"`
	TotalReceived int64     `json:"totalReceived"`
	Sold          int64     `json:"sold"`
	Available     int64     `json:"available"`
	UnitPrice     float64   `json:"unitPrice"`
	DateAdded     time.Time `json:"dateAdded"`
	LowStock      bool      `json:"lowStock"`
}

// Reconciliation is returned by the add-to-inventory routes.
type Reconciliation struct {
	ReceivedOrder ReceivedOrder `json:"receivedOrder"`
	InventoryItem InventoryItem `json:"inventoryItem"`
	ItemCreated   bool          `json:"itemCreated"`
	LowStock      bool          `json:"lowStock"`
}

// Sale is returned by the sales routes.
type Sale struct {
	InventoryItem InventoryItem `json:"inventoryItem"`
	LowStock      bool          `json:"lowStock"`
}

func toTime(date *openapi_types.Date) time.Time {
	if date == nil {
		return time.Time{}
	}
	return date.Time
}

// ToLowStockInput converts a placement payload into the low-stock command.
func ToLowStockInput(kind domain.ItemKind, payload PlaceOrder) types.PlaceLowStockOrderInput {
	return types.PlaceLowStockOrderInput{
		Kind:            kind,
		InventoryItemID: payload.InventoryItemID,
		ItemName:        payload.ItemName,
		Quantity:        payload.Quantity,
		SupplierEmail:   payload.SupplierEmail,
		WholesalePrice:  payload.WholesalePrice,
		OrderDate:       toTime(payload.OrderDate),
	}
}

// ToNewItemInput converts a placement payload into the new-item command.
func ToNewItemInput(kind domain.ItemKind, payload PlaceOrder) types.PlaceNewItemOrderInput {
	return types.PlaceNewItemOrderInput{
		Kind:          kind,
		ItemName:      payload.ItemName,
		Quantity:      payload.Quantity,
		SupplierEmail: payload.SupplierEmail,
		OrderDate:     toTime(payload.OrderDate),
	}
}

// ToAcceptInput converts the supplier confirmation.
func ToAcceptInput(ref types.OrderRef, supplier types.SupplierIdentity, payload AcceptOrder) types.AcceptOrderInput {
	return types.AcceptOrderInput{
		OrderRef:       ref,
		Supplier:       supplier,
		Quantity:       payload.Quantity,
		WholesalePrice: payload.WholesalePrice,
		OrderDate:      toTime(payload.OrderDate),
	}
}

func FromOrder(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:              order.ID,
		Kind:            string(order.Kind),
		InventoryItemID: order.InventoryItemID,
		ItemName:        order.ItemName,
		Quantity:        order.Quantity,
		SupplierEmail:   order.SupplierEmail,
		TotalAmount:     order.TotalAmount,
		OrderDate:       openapi_types.Date{Time: order.OrderDate},
		Status:          string(order.Status),
	}
}

// FromOrderList builds a listing. emptyMessage is set only when there are no orders.
func FromOrderList(orders []*domain.Order, emptyMessage string) OrderList {
	list := OrderList{Orders: make([]Order, 0, len(orders))}
	for _, order := range orders {
		list.Orders = append(list.Orders, FromOrder(order))
	}
	list.Count = len(list.Orders)
	if list.Count == 0 {
		list.Message = emptyMessage
	}
	return list
}

func FromReceivedOrder(received *domain.ReceivedOrder) ReceivedOrder {
	if received == nil {
		return ReceivedOrder{}
	}
	return ReceivedOrder{
		ID:              received.ID,
		Kind:            string(received.Kind),
		OrderID:         received.OrderID,
		InventoryItemID: received.InventoryItemID,
		ItemName:        received.ItemName,
		Quantity:        received.Quantity,
		WholesalePrice:  received.WholesalePrice,
		TotalAmount:     received.TotalAmount,
		SupplierEmail:   received.SupplierEmail,
		Status:          string(received.Status),
		DateReceived:    received.DateReceived,
		OrderDate:       openapi_types.Date{Time: received.OrderDate},
	}
}

func FromReceivedOrders(list []*domain.ReceivedOrder) []ReceivedOrder {
	result := make([]ReceivedOrder, 0, len(list))
	for _, received := range list {
		result = append(result, FromReceivedOrder(received))
	}
	return result
}

// FromInventoryItem converts stock, flagging it against the kind's threshold.
func FromInventoryItem(item *domain.InventoryItem, policies domain.Policies) InventoryItem {
	if item == nil {
		return InventoryItem{}
	}
	return InventoryItem{
		ID:            item.ID,
		Kind:          string(item.Kind),
		ItemName:      item.ItemName,
		TotalReceived: item.TotalReceived,
		Sold:          item.Sold,
		Available:     item.Available,
		UnitPrice:     item.UnitPrice,
		DateAdded:     item.DateAdded,
		LowStock:      policies.For(item.Kind).IsLowStock(item.Available),
	}
}

func FromInventoryItems(items []*domain.InventoryItem, policies domain.Policies) []InventoryItem {
	result := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		result = append(result, FromInventoryItem(item, policies))
	}
	return result
}

func FromReconciliation(result *types.ReconciliationResult, policies domain.Policies) Reconciliation {
	if result == nil {
		return Reconciliation{}
	}
	return Reconciliation{
		ReceivedOrder: FromReceivedOrder(result.ReceivedOrder),
		InventoryItem: FromInventoryItem(result.Item, policies),
		ItemCreated:   result.ItemCreated,
		LowStock:      result.LowStock,
	}
}

func FromSale(result *types.SaleResult, policies domain.Policies) Sale {
	if result == nil {
		return Sale{}
	}
	return Sale{InventoryItem: FromInventoryItem(result.Item, policies), LowStock: result.LowStock}
}
