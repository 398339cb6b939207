package application

import (
	"context"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

// AcceptOrder lets the addressed supplier accept a pending order. The order
// update and the received order insert commit together or not at all.
func (s *Service) AcceptOrder(ctx context.Context, input types.AcceptOrderInput) (*domain.ReceivedOrder, error) {
	fields := fieldErrors{}
	fields.require(input.Kind.Valid(), "kind", domain.ErrInvalidKind.Error())
	fields.require(input.ID > 0, "id", "order id must be greater than zero")
	fields.require(input.Quantity >= 0, "quantity", domain.ErrInvalidQuantity.Error())
	fields.require(input.WholesalePrice > 0, "wholesalePrice", domain.ErrInvalidPrice.Error())
	if err := fields.err(); err != nil {
		return nil, err
	}

	var (
		accepted *domain.Order
		received *domain.ReceivedOrder
	)
	err := s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		order, err := repos.Orders.GetByID(ctx, input.Kind, input.ID)
		if err != nil {
			return err
		}
		if err := authorize(order, input.Supplier); err != nil {
			return err
		}
		quantity := input.Quantity
		if quantity == 0 {
			quantity = order.Quantity
		}
		if err := order.Accept(quantity, input.WholesalePrice, input.OrderDate); err != nil {
			return err
		}
		accepted, err = repos.Orders.Update(ctx, order)
		if err != nil {
			return err
		}
		pending, err := domain.NewReceivedOrder(accepted, quantity, input.WholesalePrice)
		if err != nil {
			return err
		}
		received, err = repos.ReceivedOrders.Create(ctx, pending)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	s.publish(ctx,
		domain.OrderAcceptedEvent{
			BaseEvent:     s.base(),
			OrderID:       accepted.ID,
			Kind:          accepted.Kind,
			SupplierEmail: accepted.SupplierEmail,
			TotalAmount:   accepted.TotalAmount,
		},
		domain.ReceivedOrderCreated{
			BaseEvent:       s.base(),
			ReceivedOrderID: received.ID,
			OrderID:         accepted.ID,
			Kind:            received.Kind,
			ItemName:        received.ItemName,
			Quantity:        received.Quantity,
		},
	)
	return received, nil
}

// RejectOrder lets the addressed supplier reject a pending order.
func (s *Service) RejectOrder(ctx context.Context, input types.RejectOrderInput) (*domain.Order, error) {
	fields := fieldErrors{}
	fields.require(input.Kind.Valid(), "kind", domain.ErrInvalidKind.Error())
	fields.require(input.ID > 0, "id", "order id must be greater than zero")
	if err := fields.err(); err != nil {
		return nil, err
	}

	var rejected *domain.Order
	err := s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		order, err := repos.Orders.GetByID(ctx, input.Kind, input.ID)
		if err != nil {
			return err
		}
		if err := authorize(order, input.Supplier); err != nil {
			return err
		}
		if err := order.Reject(); err != nil {
			return err
		}
		rejected, err = repos.Orders.Update(ctx, order)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	s.publish(ctx, domain.OrderRejectedEvent{
		BaseEvent:     s.base(),
		OrderID:       rejected.ID,
		Kind:          rejected.Kind,
		SupplierEmail: rejected.SupplierEmail,
	})
	return rejected, nil
}
