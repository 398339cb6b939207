package application

import (
	"context"
	"errors"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

// ListReceivedOrders returns every received order of a kind.
func (s *Service) ListReceivedOrders(ctx context.Context, kind domain.ItemKind) ([]*domain.ReceivedOrder, error) {
	if !kind.Valid() {
		return nil, mapError(domain.ErrInvalidKind)
	}
	received, err := s.uow.Repositories().ReceivedOrders.List(ctx, kind)
	if err != nil {
		return nil, mapError(err)
	}
	return received, nil
}

// AddToInventory applies a pending received order to live stock and closes
// it. The item write and the received order write share one transaction and
// the received order must still be Pending inside it, so a retried or
// concurrent call fails with a conflict instead of applying stock twice.
func (s *Service) AddToInventory(ctx context.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error) {
	fields := fieldErrors{}
	fields.require(input.Kind.Valid(), "kind", domain.ErrInvalidKind.Error())
	fields.require(input.ReceivedOrderID > 0, "id", "received order id must be greater than zero")
	fields.require(input.Quantity > 0, "quantity", domain.ErrInvalidQuantity.Error())
	if err := fields.err(); err != nil {
		return nil, err
	}

	policy := s.policies.For(input.Kind)
	result := &types.ReconciliationResult{}
	err := s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		received, err := repos.ReceivedOrders.GetByID(ctx, input.Kind, input.ReceivedOrderID)
		if err != nil {
			return err
		}
		if !received.IsPending() {
			return domain.ErrAlreadyReconciled
		}
		now := s.now().UTC()

		item, err := locateItem(ctx, repos.Inventory, received)
		switch {
		case errors.Is(err, ports.ErrNotFound):
			seeded, err := domain.NewInventoryItem(received.Kind, received.ItemName, input.Quantity, received.WholesalePrice, now)
			if err != nil {
				return err
			}
			if item, err = repos.Inventory.Create(ctx, seeded); err != nil {
				return err
			}
			result.ItemCreated = true
		case err != nil:
			return err
		default:
			if err := item.ApplyDelivery(input.Quantity, policy.Reconcile); err != nil {
				return err
			}
			if item, err = repos.Inventory.Update(ctx, item); err != nil {
				return err
			}
		}

		itemID := item.ID
		received.InventoryItemID = &itemID
		if err := received.MarkAddedToInventory(input.Quantity, now); err != nil {
			return err
		}
		if received, err = repos.ReceivedOrders.Update(ctx, received); err != nil {
			return err
		}
		result.ReceivedOrder = received
		result.Item = item
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	result.LowStock = policy.IsLowStock(result.Item.Available)
	events := []domain.Event{domain.InventoryReconciled{
		BaseEvent:       s.base(),
		ReceivedOrderID: result.ReceivedOrder.ID,
		InventoryItemID: result.Item.ID,
		Kind:            result.Item.Kind,
		ItemName:        result.Item.ItemName,
		Quantity:        input.Quantity,
		Available:       result.Item.Available,
		Policy:          policy.Reconcile,
		ItemCreated:     result.ItemCreated,
	}}
	if result.LowStock {
		events = append(events, s.stockLowEvent(result.Item))
	}
	s.publish(ctx, events...)
	return result, nil
}

// locateItem follows the id reference carried by the received order and falls
// back to an exact name match for deliveries of items that were never stocked.
func locateItem(ctx context.Context, repo ports.InventoryRepository, received *domain.ReceivedOrder) (*domain.InventoryItem, error) {
	if received.InventoryItemID != nil {
		item, err := repo.GetByID(ctx, received.Kind, *received.InventoryItemID)
		if err == nil || !errors.Is(err, ports.ErrNotFound) {
			return item, err
		}
	}
	return repo.GetByName(ctx, received.Kind, received.ItemName)
}
