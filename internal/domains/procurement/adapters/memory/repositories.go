package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

var (
	_ ports.OrderRepository         = (*orderRepository)(nil)
	_ ports.ReceivedOrderRepository = (*receivedOrderRepository)(nil)
	_ ports.InventoryRepository     = (*inventoryRepository)(nil)
)

type orderRepository struct{ view *view }

func (r *orderRepository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	var saved *domain.Order
	err := r.view.write(func(d *dataset) error {
		clone := cloneOrder(order)
		d.nextOrderID++
		clone.ID = d.nextOrderID
		clone.Version = 1
		clone.CreatedAt = now()
		clone.UpdatedAt = clone.CreatedAt
		d.orders[clone.ID] = clone
		saved = cloneOrder(clone)
		return nil
	})
	return saved, err
}

func (r *orderRepository) GetByID(_ context.Context, kind domain.ItemKind, id int64) (*domain.Order, error) {
	var found *domain.Order
	err := r.view.read(func(d *dataset) error {
		order, ok := d.orders[id]
		if !ok || order.Kind != kind {
			return ports.ErrNotFound
		}
		found = cloneOrder(order)
		return nil
	})
	return found, err
}

func (r *orderRepository) Update(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	var saved *domain.Order
	err := r.view.write(func(d *dataset) error {
		current, ok := d.orders[order.ID]
		if !ok || current.Kind != order.Kind {
			return ports.ErrNotFound
		}
		if current.Version != order.Version {
			return ports.ErrConcurrentModification
		}
		clone := cloneOrder(order)
		clone.CreatedAt = current.CreatedAt
		clone.Version = current.Version + 1
		clone.UpdatedAt = now()
		d.orders[clone.ID] = clone
		saved = cloneOrder(clone)
		return nil
	})
	return saved, err
}

func (r *orderRepository) Delete(_ context.Context, kind domain.ItemKind, id int64) error {
	return r.view.write(func(d *dataset) error {
		order, ok := d.orders[id]
		if !ok || order.Kind != kind {
			return ports.ErrNotFound
		}
		delete(d.orders, id)
		return nil
	})
}

func (r *orderRepository) List(_ context.Context, filter ports.OrderFilter) ([]*domain.Order, error) {
	list := make([]*domain.Order, 0)
	email := domain.NormalizeEmail(filter.SupplierEmail)
	err := r.view.read(func(d *dataset) error {
		for _, order := range d.orders {
			if filter.Kind != "" && order.Kind != filter.Kind {
				continue
			}
			if email != "" && order.SupplierEmail != email {
				continue
			}
			if filter.Status != "" && order.Status != filter.Status {
				continue
			}
			list = append(list, cloneOrder(order))
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

type receivedOrderRepository struct{ view *view }

func (r *receivedOrderRepository) Create(_ context.Context, received *domain.ReceivedOrder) (*domain.ReceivedOrder, error) {
	if received == nil {
		return nil, errors.New("received order is nil")
	}
	var saved *domain.ReceivedOrder
	err := r.view.write(func(d *dataset) error {
		clone := cloneReceived(received)
		d.nextReceivedID++
		clone.ID = d.nextReceivedID
		clone.Version = 1
		clone.CreatedAt = now()
		clone.UpdatedAt = clone.CreatedAt
		d.receivedOrders[clone.ID] = clone
		saved = cloneReceived(clone)
		return nil
	})
	return saved, err
}

func (r *receivedOrderRepository) GetByID(_ context.Context, kind domain.ItemKind, id int64) (*domain.ReceivedOrder, error) {
	var found *domain.ReceivedOrder
	err := r.view.read(func(d *dataset) error {
		received, ok := d.receivedOrders[id]
		if !ok || received.Kind != kind {
			return ports.ErrNotFound
		}
		found = cloneReceived(received)
		return nil
	})
	return found, err
}

func (r *receivedOrderRepository) Update(_ context.Context, received *domain.ReceivedOrder) (*domain.ReceivedOrder, error) {
	if received == nil {
		return nil, errors.New("received order is nil")
	}
	var saved *domain.ReceivedOrder
	err := r.view.write(func(d *dataset) error {
		current, ok := d.receivedOrders[received.ID]
		if !ok || current.Kind != received.Kind {
			return ports.ErrNotFound
		}
		if current.Version != received.Version {
			return ports.ErrConcurrentModification
		}
		clone := cloneReceived(received)
		clone.CreatedAt = current.CreatedAt
		clone.Version = current.Version + 1
		clone.UpdatedAt = now()
		d.receivedOrders[clone.ID] = clone
		saved = cloneReceived(clone)
		return nil
	})
	return saved, err
}

func (r *receivedOrderRepository) List(_ context.Context, kind domain.ItemKind) ([]*domain.ReceivedOrder, error) {
	list := make([]*domain.ReceivedOrder, 0)
	err := r.view.read(func(d *dataset) error {
		for _, received := range d.receivedOrders {
			if kind != "" && received.Kind != kind {
				continue
			}
			list = append(list, cloneReceived(received))
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

type inventoryRepository struct{ view *view }

func (r *inventoryRepository) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if item == nil {
		return nil, errors.New("inventory item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	var saved *domain.InventoryItem
	err := r.view.write(func(d *dataset) error {
		for _, existing := range d.items {
			if existing.Kind == item.Kind && existing.ItemName == item.ItemName {
				return ports.ErrDuplicate
			}
		}
		clone := cloneItem(item)
		d.nextItemID++
		clone.ID = d.nextItemID
		clone.Version = 1
		if clone.DateAdded.IsZero() {
			clone.DateAdded = now()
		}
		clone.UpdatedAt = now()
		d.items[clone.ID] = clone
		saved = cloneItem(clone)
		return nil
	})
	return saved, err
}

func (r *inventoryRepository) GetByID(_ context.Context, kind domain.ItemKind, id int64) (*domain.InventoryItem, error) {
	var found *domain.InventoryItem
	err := r.view.read(func(d *dataset) error {
		item, ok := d.items[id]
		if !ok || item.Kind != kind {
			return ports.ErrNotFound
		}
		found = cloneItem(item)
		return nil
	})
	return found, err
}

func (r *inventoryRepository) GetByName(_ context.Context, kind domain.ItemKind, name string) (*domain.InventoryItem, error) {
	name = strings.TrimSpace(name)
	var found *domain.InventoryItem
	err := r.view.read(func(d *dataset) error {
		for _, item := range d.items {
			if item.Kind == kind && item.ItemName == name {
				found = cloneItem(item)
				return nil
			}
		}
		return ports.ErrNotFound
	})
	return found, err
}

func (r *inventoryRepository) Update(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if item == nil {
		return nil, errors.New("inventory item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	var saved *domain.InventoryItem
	err := r.view.write(func(d *dataset) error {
		current, ok := d.items[item.ID]
		if !ok || current.Kind != item.Kind {
			return ports.ErrNotFound
		}
		if current.Version != item.Version {
			return ports.ErrConcurrentModification
		}
		clone := cloneItem(item)
		clone.Version = current.Version + 1
		clone.UpdatedAt = now()
		d.items[clone.ID] = clone
		saved = cloneItem(clone)
		return nil
	})
	return saved, err
}

func (r *inventoryRepository) List(_ context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error) {
	list := make([]*domain.InventoryItem, 0)
	err := r.view.read(func(d *dataset) error {
		for _, item := range d.items {
			if kind != "" && item.Kind != kind {
				continue
			}
			list = append(list, cloneItem(item))
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}
