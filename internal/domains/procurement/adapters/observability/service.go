package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

const tracerName = "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/observability/service"

// Service decorates the procurement service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core procurement service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) PlaceLowStockOrder(ctx context.Context, input types.PlaceLowStockOrderInput) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.PlaceLowStockOrder",
		trace.WithAttributes(kindAttr(input.Kind), attribute.String("order.item_name", input.ItemName), attribute.Int64("order.quantity", input.Quantity)))
	defer span.End()

	s.logInfo(ctx, "placing low stock order", slog.String("kind", string(input.Kind)), slog.String("item", input.ItemName), slog.Int64("inventory_item.id", input.InventoryItemID))
	result, err := s.inner.PlaceLowStockOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place low stock order", slog.String("kind", string(input.Kind)))
	}
	s.metrics.recordPlaced(ctx, result.Kind, "low_stock")
	span.SetAttributes(attribute.Int64("order.id", result.ID))
	s.logInfo(ctx, "low stock order placed", slog.Int64("order.id", result.ID), slog.Float64("order.total", result.TotalAmount))
	return result, nil
}

func (s *Service) PlaceNewItemOrder(ctx context.Context, input types.PlaceNewItemOrderInput) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.PlaceNewItemOrder",
		trace.WithAttributes(kindAttr(input.Kind), attribute.String("order.item_name", input.ItemName), attribute.Int64("order.quantity", input.Quantity)))
	defer span.End()

	s.logInfo(ctx, "placing new item order", slog.String("kind", string(input.Kind)), slog.String("item", input.ItemName))
	result, err := s.inner.PlaceNewItemOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place new item order", slog.String("kind", string(input.Kind)))
	}
	s.metrics.recordPlaced(ctx, result.Kind, "new_item")
	span.SetAttributes(attribute.Int64("order.id", result.ID))
	s.logInfo(ctx, "new item order placed", slog.Int64("order.id", result.ID))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, kind domain.ItemKind) ([]*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.ListOrders", trace.WithAttributes(kindAttr(kind)))
	defer span.End()

	result, err := s.inner.ListOrders(ctx, kind)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders", slog.String("kind", string(kind)))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, ref types.OrderRef) error {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.DeleteOrder", trace.WithAttributes(kindAttr(ref.Kind), attribute.Int64("order.id", ref.ID)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.String("kind", string(ref.Kind)), slog.Int64("order.id", ref.ID))
	if err := s.inner.DeleteOrder(ctx, ref); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", ref.ID))
	}
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", ref.ID))
	return nil
}

func (s *Service) ListSupplierOrders(ctx context.Context, kind domain.ItemKind, supplier types.SupplierIdentity) ([]*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.ListSupplierOrders",
		trace.WithAttributes(kindAttr(kind), attribute.Int64("supplier.id", supplier.SupplierID)))
	defer span.End()

	result, err := s.inner.ListSupplierOrders(ctx, kind, supplier)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list supplier orders", slog.Int64("supplier.id", supplier.SupplierID))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) AcceptOrder(ctx context.Context, input types.AcceptOrderInput) (*domain.ReceivedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.AcceptOrder",
		trace.WithAttributes(kindAttr(input.Kind), attribute.Int64("order.id", input.ID), attribute.Int64("supplier.id", input.Supplier.SupplierID)))
	defer span.End()

	s.logInfo(ctx, "supplier accepting order", slog.String("kind", string(input.Kind)), slog.Int64("order.id", input.ID), slog.Int64("supplier.id", input.Supplier.SupplierID))
	result, err := s.inner.AcceptOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to accept order", slog.Int64("order.id", input.ID))
	}
	s.metrics.recordDecision(ctx, result.Kind, domain.OrderAccepted)
	s.logInfo(ctx, "order accepted", slog.Int64("order.id", input.ID), slog.Int64("received_order.id", result.ID))
	return result, nil
}

func (s *Service) RejectOrder(ctx context.Context, input types.RejectOrderInput) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.RejectOrder",
		trace.WithAttributes(kindAttr(input.Kind), attribute.Int64("order.id", input.ID), attribute.Int64("supplier.id", input.Supplier.SupplierID)))
	defer span.End()

	s.logInfo(ctx, "supplier rejecting order", slog.String("kind", string(input.Kind)), slog.Int64("order.id", input.ID))
	result, err := s.inner.RejectOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to reject order", slog.Int64("order.id", input.ID))
	}
	s.metrics.recordDecision(ctx, result.Kind, domain.OrderRejected)
	s.logInfo(ctx, "order rejected", slog.Int64("order.id", result.ID))
	return result, nil
}

func (s *Service) ListReceivedOrders(ctx context.Context, kind domain.ItemKind) ([]*domain.ReceivedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.ListReceivedOrders", trace.WithAttributes(kindAttr(kind)))
	defer span.End()

	result, err := s.inner.ListReceivedOrders(ctx, kind)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list received orders", slog.String("kind", string(kind)))
	}
	span.SetAttributes(attribute.Int("received_orders.count", len(result)))
	return result, nil
}

func (s *Service) AddToInventory(ctx context.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.AddToInventory",
		trace.WithAttributes(kindAttr(input.Kind), attribute.Int64("received_order.id", input.ReceivedOrderID), attribute.Int64("quantity", input.Quantity)))
	defer span.End()

	s.logInfo(ctx, "adding received order to inventory", slog.String("kind", string(input.Kind)), slog.Int64("received_order.id", input.ReceivedOrderID), slog.Int64("quantity", input.Quantity))
	result, err := s.inner.AddToInventory(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add to inventory", slog.Int64("received_order.id", input.ReceivedOrderID))
	}
	s.metrics.recordReconciled(ctx, input.Kind, result.ItemCreated)
	span.SetAttributes(attribute.Int64("inventory_item.id", result.Item.ID), attribute.Bool("inventory.low_stock", result.LowStock))
	s.logInfo(ctx, "inventory reconciled",
		slog.Int64("inventory_item.id", result.Item.ID),
		slog.Int64("available", result.Item.Available),
		slog.Bool("item_created", result.ItemCreated))
	return result, nil
}

func (s *Service) ListInventory(ctx context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.ListInventory", trace.WithAttributes(kindAttr(kind)))
	defer span.End()

	result, err := s.inner.ListInventory(ctx, kind)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list inventory", slog.String("kind", string(kind)))
	}
	span.SetAttributes(attribute.Int("inventory.count", len(result)))
	return result, nil
}

func (s *Service) LowStock(ctx context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.LowStock", trace.WithAttributes(kindAttr(kind)))
	defer span.End()

	result, err := s.inner.LowStock(ctx, kind)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list low stock", slog.String("kind", string(kind)))
	}
	span.SetAttributes(attribute.Int("inventory.low_stock.count", len(result)))
	return result, nil
}

func (s *Service) RecordSale(ctx context.Context, input types.RecordSaleInput) (*types.SaleResult, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.RecordSale",
		trace.WithAttributes(kindAttr(input.Kind), attribute.Int64("inventory_item.id", input.InventoryItemID), attribute.Int64("quantity", input.Quantity)))
	defer span.End()

	s.logInfo(ctx, "recording sale", slog.Int64("inventory_item.id", input.InventoryItemID), slog.Int64("quantity", input.Quantity))
	result, err := s.inner.RecordSale(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to record sale", slog.Int64("inventory_item.id", input.InventoryItemID))
	}
	s.metrics.recordSale(ctx, input.Kind, input.Quantity)
	s.logInfo(ctx, "sale recorded", slog.Int64("available", result.Item.Available), slog.Bool("low_stock", result.LowStock))
	return result, nil
}

func (s *Service) AuditStock(ctx context.Context) ([]*domain.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "ProcurementService.AuditStock")
	defer span.End()

	s.logInfo(ctx, "auditing stock levels")
	result, err := s.inner.AuditStock(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to audit stock")
	}
	span.SetAttributes(attribute.Int("inventory.low_stock.count", len(result)))
	s.logInfo(ctx, "stock audit complete", slog.Int("low_stock", len(result)))
	return result, nil
}

func kindAttr(kind domain.ItemKind) attribute.KeyValue {
	return attribute.String("procurement.kind", string(kind))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersPlaced   metric.Int64Counter
	orderDecisions metric.Int64Counter
	reconciled     metric.Int64Counter
	unitsSold      metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("procurement.service.orders_placed", metric.WithDescription("Number of procurement orders placed"))
	orderDecisions, _ := m.Int64Counter("procurement.service.order_decisions", metric.WithDescription("Number of supplier accept or reject decisions"))
	reconciled, _ := m.Int64Counter("procurement.service.inventory_reconciled", metric.WithDescription("Number of received orders added to inventory"))
	unitsSold, _ := m.Int64Counter("procurement.service.units_sold", metric.WithDescription("Units sold or consumed"))
	return serviceMetrics{ordersPlaced: ordersPlaced, orderDecisions: orderDecisions, reconciled: reconciled, unitsSold: unitsSold}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, kind domain.ItemKind, path string) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1, metric.WithAttributes(kindAttr(kind), attribute.String("order.path", path)))
	}
}

func (m serviceMetrics) recordDecision(ctx context.Context, kind domain.ItemKind, status domain.OrderStatus) {
	if m.orderDecisions != nil {
		m.orderDecisions.Add(ctx, 1, metric.WithAttributes(kindAttr(kind), attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordReconciled(ctx context.Context, kind domain.ItemKind, created bool) {
	if m.reconciled != nil {
		m.reconciled.Add(ctx, 1, metric.WithAttributes(kindAttr(kind), attribute.Bool("inventory.item_created", created)))
	}
}

func (m serviceMetrics) recordSale(ctx context.Context, kind domain.ItemKind, quantity int64) {
	if m.unitsSold != nil {
		m.unitsSold.Add(ctx, quantity, metric.WithAttributes(kindAttr(kind)))
	}
}

var _ ports.Service = (*Service)(nil)
