package domain

import (
	"errors"
	"time"
)

// ReceivedStatus enumerates received order progression.
type ReceivedStatus string

const (
	ReceivedPending          ReceivedStatus = "Pending"
	ReceivedAddedToInventory ReceivedStatus = "AddedToInventory"
)

var (
	ErrAlreadyReconciled = errors.New("received order was already added to inventory")
	ErrOrderNotAccepted  = errors.New("order must be accepted before goods are received")
)

// ReceivedOrder is a supplier-confirmed delivery awaiting confirmation into inventory.
// TotalAmount is a placeholder until the status becomes AddedToInventory.
type ReceivedOrder struct {
	ID              int64
	Kind            ItemKind
	OrderID         int64
	InventoryItemID *int64
	ItemName        string
	Quantity        int64
	WholesalePrice  float64
	TotalAmount     float64
	SupplierEmail   string
	Status          ReceivedStatus
	DateReceived    *time.Time
	OrderDate       time.Time
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewReceivedOrder derives the pending delivery from an accepted order.
func NewReceivedOrder(order *Order, quantity int64, wholesalePrice float64) (*ReceivedOrder, error) {
	if order == nil || order.Status != OrderAccepted {
		return nil, ErrOrderNotAccepted
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if wholesalePrice <= 0 {
		return nil, ErrInvalidPrice
	}
	received := &ReceivedOrder{
		Kind:           order.Kind,
		OrderID:        order.ID,
		ItemName:       order.ItemName,
		Quantity:       quantity,
		WholesalePrice: wholesalePrice,
		TotalAmount:    order.TotalAmount,
		SupplierEmail:  order.SupplierEmail,
		Status:         ReceivedPending,
		OrderDate:      order.OrderDate,
	}
	if order.InventoryItemID != nil {
		id := *order.InventoryItemID
		received.InventoryItemID = &id
	}
	return received, nil
}

// IsPending reports whether the delivery still awaits reconciliation.
func (r *ReceivedOrder) IsPending() bool {
	return r.Status == ReceivedPending
}

// MarkAddedToInventory closes the delivery with the quantity actually applied.
func (r *ReceivedOrder) MarkAddedToInventory(quantity int64, at time.Time) error {
	if !r.IsPending() {
		return ErrAlreadyReconciled
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	r.TotalAmount = LineTotal(quantity, r.WholesalePrice)
	r.Status = ReceivedAddedToInventory
	received := at
	r.DateReceived = &received
	return nil
}
