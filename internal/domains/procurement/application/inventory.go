package application

import (
	"context"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

// ListInventory returns the live stock of a kind.
func (s *Service) ListInventory(ctx context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error) {
	if !kind.Valid() {
		return nil, mapError(domain.ErrInvalidKind)
	}
	items, err := s.uow.Repositories().Inventory.List(ctx, kind)
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// LowStock returns the items of a kind that reached the reorder threshold.
func (s *Service) LowStock(ctx context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error) {
	items, err := s.ListInventory(ctx, kind)
	if err != nil {
		return nil, err
	}
	policy := s.policies.For(kind)
	low := make([]*domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if policy.IsLowStock(item.Available) {
			low = append(low, item)
		}
	}
	return low, nil
}

// RecordSale decrements available stock. StockLow is published when the sale
// crosses the reorder threshold.
func (s *Service) RecordSale(ctx context.Context, input types.RecordSaleInput) (*types.SaleResult, error) {
	fields := fieldErrors{}
	fields.require(input.Kind.Valid(), "kind", domain.ErrInvalidKind.Error())
	fields.require(input.InventoryItemID > 0, "id", "inventory item id must be greater than zero")
	fields.require(input.Quantity > 0, "quantity", domain.ErrInvalidQuantity.Error())
	if err := fields.err(); err != nil {
		return nil, err
	}

	policy := s.policies.For(input.Kind)
	var (
		sold   *domain.InventoryItem
		wasLow bool
	)
	err := s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		item, err := repos.Inventory.GetByID(ctx, input.Kind, input.InventoryItemID)
		if err != nil {
			return err
		}
		wasLow = policy.IsLowStock(item.Available)
		if err := item.Sell(input.Quantity); err != nil {
			return err
		}
		sold, err = repos.Inventory.Update(ctx, item)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	result := &types.SaleResult{Item: sold, LowStock: policy.IsLowStock(sold.Available)}
	events := []domain.Event{domain.SaleRecorded{
		BaseEvent:       s.base(),
		InventoryItemID: sold.ID,
		Kind:            sold.Kind,
		Quantity:        input.Quantity,
		Available:       sold.Available,
	}}
	if result.LowStock && !wasLow {
		events = append(events, s.stockLowEvent(sold))
	}
	s.publish(ctx, events...)
	return result, nil
}

// AuditStock scans every kind and publishes StockLow for each item under its threshold.
func (s *Service) AuditStock(ctx context.Context) ([]*domain.InventoryItem, error) {
	var low []*domain.InventoryItem
	for _, kind := range domain.Kinds() {
		items, err := s.LowStock(ctx, kind)
		if err != nil {
			return nil, err
		}
		low = append(low, items...)
	}
	events := make([]domain.Event, 0, len(low))
	for _, item := range low {
		events = append(events, s.stockLowEvent(item))
	}
	s.publish(ctx, events...)
	return low, nil
}
