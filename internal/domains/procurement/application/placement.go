package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

// PlaceLowStockOrder reorders a stocked item. The supplier must exist in the
// catalog and the total is priced immediately.
func (s *Service) PlaceLowStockOrder(ctx context.Context, input types.PlaceLowStockOrderInput) (*domain.Order, error) {
	fields := fieldErrors{}
	fields.require(input.Kind.Valid(), "kind", domain.ErrInvalidKind.Error())
	fields.require(input.InventoryItemID > 0 || strings.TrimSpace(input.ItemName) != "", "itemName", "itemName or inventoryItemId is required")
	fields.require(input.Quantity > 0, "quantity", domain.ErrInvalidQuantity.Error())
	fields.require(strings.TrimSpace(input.SupplierEmail) != "", "supplierEmail", "supplierEmail is required")
	fields.require(input.WholesalePrice >= 0, "wholesalePrice", "wholesalePrice must not be negative")
	if err := fields.err(); err != nil {
		return nil, err
	}

	repos := s.uow.Repositories()
	item, err := findItem(ctx, repos.Inventory, input.Kind, input.InventoryItemID, input.ItemName)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.ensureSupplier(ctx, input.SupplierEmail); err != nil {
		return nil, err
	}

	price := input.WholesalePrice
	if price == 0 {
		price = item.UnitPrice
	}
	order, err := domain.NewOrder(input.Kind, item.ItemName, input.Quantity, input.SupplierEmail, s.orderDate(input.OrderDate))
	if err != nil {
		return nil, mapError(err)
	}
	itemID := item.ID
	order.InventoryItemID = &itemID
	order.TotalAmount = domain.LineTotal(order.Quantity, price)

	saved, err := repos.Orders.Create(ctx, order)
	if err != nil {
		return nil, mapError(err)
	}
	s.publish(ctx, s.orderPlaced(saved))
	return saved, nil
}

// PlaceNewItemOrder orders an item that may not be stocked yet. The total is
// left at zero for the acceptance step. The supplier catalog is not consulted
// on this path.
func (s *Service) PlaceNewItemOrder(ctx context.Context, input types.PlaceNewItemOrderInput) (*domain.Order, error) {
	fields := fieldErrors{}
	fields.require(input.Kind.Valid(), "kind", domain.ErrInvalidKind.Error())
	fields.require(strings.TrimSpace(input.ItemName) != "", "itemName", domain.ErrEmptyItemName.Error())
	fields.require(input.Quantity > 0, "quantity", domain.ErrInvalidQuantity.Error())
	fields.require(strings.TrimSpace(input.SupplierEmail) != "", "supplierEmail", "supplierEmail is required")
	if err := fields.err(); err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(input.Kind, input.ItemName, input.Quantity, input.SupplierEmail, s.orderDate(input.OrderDate))
	if err != nil {
		return nil, mapError(err)
	}
	repos := s.uow.Repositories()
	existing, err := repos.Inventory.GetByName(ctx, input.Kind, order.ItemName)
	switch {
	case err == nil:
		itemID := existing.ID
		order.InventoryItemID = &itemID
	case !errors.Is(err, ports.ErrNotFound):
		return nil, mapError(err)
	}

	saved, err := repos.Orders.Create(ctx, order)
	if err != nil {
		return nil, mapError(err)
	}
	s.publish(ctx, s.orderPlaced(saved))
	return saved, nil
}

// ListOrders returns every order of a kind.
func (s *Service) ListOrders(ctx context.Context, kind domain.ItemKind) ([]*domain.Order, error) {
	if !kind.Valid() {
		return nil, mapError(domain.ErrInvalidKind)
	}
	orders, err := s.uow.Repositories().Orders.List(ctx, ports.OrderFilter{Kind: kind})
	if err != nil {
		return nil, mapError(err)
	}
	return orders, nil
}

// DeleteOrder removes an order manually.
func (s *Service) DeleteOrder(ctx context.Context, ref types.OrderRef) error {
	if !ref.Kind.Valid() {
		return mapError(domain.ErrInvalidKind)
	}
	if err := s.uow.Repositories().Orders.Delete(ctx, ref.Kind, ref.ID); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Service) ensureSupplier(ctx context.Context, email string) error {
	if s.suppliers == nil {
		return errors.New("supplier directory not configured")
	}
	known, err := s.suppliers.Exists(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if !known {
		return &ValidationError{
			Fields: map[string]string{"supplierEmail": ErrUnknownSupplier.Error()},
			Reason: ErrUnknownSupplier,
		}
	}
	return nil
}

func (s *Service) orderDate(requested time.Time) time.Time {
	if requested.IsZero() {
		return s.now().UTC()
	}
	return requested
}

func (s *Service) orderPlaced(order *domain.Order) domain.OrderPlaced {
	return domain.OrderPlaced{
		BaseEvent:     s.base(),
		OrderID:       order.ID,
		Kind:          order.Kind,
		ItemName:      order.ItemName,
		Quantity:      order.Quantity,
		SupplierEmail: order.SupplierEmail,
		TotalAmount:   order.TotalAmount,
	}
}

// findItem resolves an inventory item by id first, then by exact name.
func findItem(ctx context.Context, repo ports.InventoryRepository, kind domain.ItemKind, id int64, name string) (*domain.InventoryItem, error) {
	if id > 0 {
		item, err := repo.GetByID(ctx, kind, id)
		if err != nil {
			return nil, fmt.Errorf("inventory item %d: %w", id, err)
		}
		return item, nil
	}
	item, err := repo.GetByName(ctx, kind, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("inventory item %q: %w", strings.TrimSpace(name), err)
	}
	return item, nil
}
