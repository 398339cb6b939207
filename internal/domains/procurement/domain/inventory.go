package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInsufficientStock = errors.New("sale quantity exceeds available stock")
	ErrNegativeStock     = errors.New("stock quantities must not be negative")
)

// InventoryItem is the live stock of one sellable item.
type InventoryItem struct {
	ID            int64
	Kind          ItemKind
	ItemName      string
	TotalReceived int64
	Sold          int64
	Available     int64
	UnitPrice     float64
	DateAdded     time.Time
	Version       int64
	UpdatedAt     time.Time
}

// NewInventoryItem seeds an item from its first delivery.
func NewInventoryItem(kind ItemKind, itemName string, quantity int64, unitPrice float64, at time.Time) (*InventoryItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	item := &InventoryItem{
		Kind:          kind,
		ItemName:      strings.TrimSpace(itemName),
		TotalReceived: quantity,
		Available:     quantity,
		UnitPrice:     unitPrice,
		DateAdded:     at,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate enforces invariants on the aggregate.
func (i *InventoryItem) Validate() error {
	if !i.Kind.Valid() {
		return ErrInvalidKind
	}
	if i.ItemName == "" {
		return ErrEmptyItemName
	}
	if i.Available < 0 || i.Sold < 0 || i.TotalReceived < 0 {
		return ErrNegativeStock
	}
	if i.UnitPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// ApplyDelivery merges a delivered quantity according to the policy.
func (i *InventoryItem) ApplyDelivery(quantity int64, policy ReconcilePolicy) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	switch policy {
	case PolicyOverwrite:
		i.Available = quantity
		i.TotalReceived = quantity
	case PolicyAdditive:
		i.Available += quantity
		i.TotalReceived += quantity
	default:
		return ErrInvalidPolicy
	}
	return nil
}

// Sell decrements available stock. Available never goes below zero.
func (i *InventoryItem) Sell(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > i.Available {
		return ErrInsufficientStock
	}
	i.Available -= quantity
	i.Sold += quantity
	return nil
}
