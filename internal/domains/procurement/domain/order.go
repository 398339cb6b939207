package domain

import (
	"errors"
	"strings"
	"time"
)

// OrderStatus enumerates order progression.
type OrderStatus string

const (
	OrderPending  OrderStatus = "Pending"
	OrderAccepted OrderStatus = "Accepted"
	OrderRejected OrderStatus = "Rejected"
)

var (
	ErrEmptyItemName        = errors.New("item name is required")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrInvalidSupplierEmail = errors.New("supplier email must contain '@'")
	ErrInvalidPrice         = errors.New("wholesale price must be greater than zero")
	ErrInvalidStatus        = errors.New("order status is invalid")
	ErrInvalidTransition    = errors.New("order is no longer pending")
)

// Order models a procurement request sent to a supplier.
type Order struct {
	ID              int64
	Kind            ItemKind
	InventoryItemID *int64
	ItemName        string
	Quantity        int64
	SupplierEmail   string
	TotalAmount     float64
	OrderDate       time.Time
	Status          OrderStatus
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewOrder validates and constructs a pending order.
func NewOrder(kind ItemKind, itemName string, quantity int64, supplierEmail string, orderDate time.Time) (*Order, error) {
	order := &Order{
		Kind:          kind,
		ItemName:      strings.TrimSpace(itemName),
		Quantity:      quantity,
		SupplierEmail: NormalizeEmail(supplierEmail),
		OrderDate:     orderDate,
		Status:        OrderPending,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if !o.Kind.Valid() {
		return ErrInvalidKind
	}
	if strings.TrimSpace(o.ItemName) == "" {
		return ErrEmptyItemName
	}
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !strings.Contains(o.SupplierEmail, "@") {
		return ErrInvalidSupplierEmail
	}
	switch o.Status {
	case OrderPending, OrderAccepted, OrderRejected:
	default:
		return ErrInvalidStatus
	}
	return nil
}

// IsPending reports whether the order still awaits a supplier decision.
func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}

// AddressedTo reports whether the order belongs to the supplier with the given email.
func (o *Order) AddressedTo(email string) bool {
	email = NormalizeEmail(email)
	return email != "" && o.SupplierEmail == email
}

// Accept moves a pending order to Accepted and prices it. A zero orderDate
// keeps the date the order was placed with.
func (o *Order) Accept(quantity int64, wholesalePrice float64, orderDate time.Time) error {
	if !o.IsPending() {
		return ErrInvalidTransition
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if wholesalePrice <= 0 {
		return ErrInvalidPrice
	}
	o.TotalAmount = LineTotal(quantity, wholesalePrice)
	if !orderDate.IsZero() {
		o.OrderDate = orderDate
	}
	o.Status = OrderAccepted
	return nil
}

// Reject moves a pending order to Rejected.
func (o *Order) Reject() error {
	if !o.IsPending() {
		return ErrInvalidTransition
	}
	o.Status = OrderRejected
	return nil
}

// NormalizeEmail lowercases and trims an email address for comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
