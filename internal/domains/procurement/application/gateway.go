package application

import (
	"context"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

// ListSupplierOrders returns the orders of a kind addressed to the supplier.
// An empty slice is a valid result.
func (s *Service) ListSupplierOrders(ctx context.Context, kind domain.ItemKind, supplier types.SupplierIdentity) ([]*domain.Order, error) {
	if !kind.Valid() {
		return nil, mapError(domain.ErrInvalidKind)
	}
	email := domain.NormalizeEmail(supplier.Email)
	if email == "" {
		return nil, ErrForbidden
	}
	orders, err := s.uow.Repositories().Orders.List(ctx, ports.OrderFilter{Kind: kind, SupplierEmail: email})
	if err != nil {
		return nil, mapError(err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

// authorize rejects suppliers acting on orders addressed to someone else.
func authorize(order *domain.Order, supplier types.SupplierIdentity) error {
	if !order.AddressedTo(supplier.Email) {
		return ErrForbidden
	}
	return nil
}
