package ports

import (
	"context"
	"errors"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrConcurrentModification is returned when a versioned update lost a race.
	ErrConcurrentModification = errors.New("record was modified concurrently")
	ErrDuplicate              = errors.New("record already exists")
)

// OrderFilter narrows order listings. Zero values match everything.
type OrderFilter struct {
	Kind          domain.ItemKind
	SupplierEmail string
	Status        domain.OrderStatus
}

// OrderRepository persists procurement orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, kind domain.ItemKind, id int64) (*domain.Order, error)
	// Update writes the order only if its Version still matches the stored one.
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, kind domain.ItemKind, id int64) error
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
}

// ReceivedOrderRepository persists deliveries awaiting reconciliation.
type ReceivedOrderRepository interface {
	Create(ctx context.Context, received *domain.ReceivedOrder) (*domain.ReceivedOrder, error)
	GetByID(ctx context.Context, kind domain.ItemKind, id int64) (*domain.ReceivedOrder, error)
	Update(ctx context.Context, received *domain.ReceivedOrder) (*domain.ReceivedOrder, error)
	List(ctx context.Context, kind domain.ItemKind) ([]*domain.ReceivedOrder, error)
}

// InventoryRepository persists live stock. Item names are unique per kind.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	GetByID(ctx context.Context, kind domain.ItemKind, id int64) (*domain.InventoryItem, error)
	GetByName(ctx context.Context, kind domain.ItemKind, name string) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	List(ctx context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error)
}

// Repositories groups the repositories that share one transaction scope.
type Repositories struct {
	Orders         OrderRepository
	ReceivedOrders ReceivedOrderRepository
	Inventory      InventoryRepository
}

// UnitOfWork hands out repositories and runs multi-entity writes atomically.
type UnitOfWork interface {
	Repositories() Repositories
	// Do runs fn inside one transaction. Returning an error rolls back every write made through repos.
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
