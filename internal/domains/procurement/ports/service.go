package ports

import (
	"context"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

// Service exposes procurement and stock use cases to adapters.
type Service interface {
	PlaceLowStockOrder(ctx context.Context, input types.PlaceLowStockOrderInput) (*domain.Order, error)
	PlaceNewItemOrder(ctx context.Context, input types.PlaceNewItemOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, kind domain.ItemKind) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, ref types.OrderRef) error

	ListSupplierOrders(ctx context.Context, kind domain.ItemKind, supplier types.SupplierIdentity) ([]*domain.Order, error)
	AcceptOrder(ctx context.Context, input types.AcceptOrderInput) (*domain.ReceivedOrder, error)
	RejectOrder(ctx context.Context, input types.RejectOrderInput) (*domain.Order, error)

	ListReceivedOrders(ctx context.Context, kind domain.ItemKind) ([]*domain.ReceivedOrder, error)
	AddToInventory(ctx context.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error)

	ListInventory(ctx context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error)
	LowStock(ctx context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error)
	RecordSale(ctx context.Context, input types.RecordSaleInput) (*types.SaleResult, error)
	// AuditStock publishes StockLow for every item at or under its threshold.
	AuditStock(ctx context.Context) ([]*domain.InventoryItem, error)
}
