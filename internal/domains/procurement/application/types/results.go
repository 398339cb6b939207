package types

import "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"

// ReconciliationResult is the outcome of applying a received order.
type ReconciliationResult struct {
	ReceivedOrder *domain.ReceivedOrder
	Item          *domain.InventoryItem
	ItemCreated   bool
	LowStock      bool
}

// SaleResult is the outcome of recording a sale.
type SaleResult struct {
	Item     *domain.InventoryItem
	LowStock bool
}
