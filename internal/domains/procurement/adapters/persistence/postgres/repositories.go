package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

var (
	_ ports.OrderRepository         = (*orderRepository)(nil)
	_ ports.ReceivedOrderRepository = (*receivedOrderRepository)(nil)
	_ ports.InventoryRepository     = (*inventoryRepository)(nil)
)

type orderRepository struct{ conn conn }

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	db, err := r.conn.session(ctx)
	if err != nil {
		return nil, err
	}
	record := toOrderRecord(order)
	record.ID = 0
	record.Version = 1
	if err := db.Create(&record).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *orderRepository) GetByID(ctx context.Context, kind domain.ItemKind, id int64) (*domain.Order, error) {
	db, err := r.conn.reader(ctx)
	if err != nil {
		return nil, err
	}
	var record orderRecord
	if err := db.First(&record, "id = ? AND kind = ?", id, string(kind)).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toOrderRecord(order)
	err := r.conn.versionedUpdate(ctx, &orderRecord{}, record.ID, record.Kind, record.Version, map[string]any{
		"inventory_item_id": record.InventoryItemID,
		"item_name":         record.ItemName,
		"quantity":          record.Quantity,
		"supplier_email":    record.SupplierEmail,
		"total_amount":      record.TotalAmount,
		"order_date":        record.OrderDate,
		"status":            record.Status,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, order.Kind, order.ID)
}

func (r *orderRepository) Delete(ctx context.Context, kind domain.ItemKind, id int64) error {
	db, err := r.conn.session(ctx)
	if err != nil {
		return err
	}
	result := db.Where("kind = ?", string(kind)).Delete(&orderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *orderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*domain.Order, error) {
	db, err := r.conn.session(ctx)
	if err != nil {
		return nil, err
	}
	query := db.Model(&orderRecord{})
	if filter.Kind != "" {
		query = query.Where("kind = ?", string(filter.Kind))
	}
	if email := domain.NormalizeEmail(filter.SupplierEmail); email != "" {
		query = query.Where("supplier_email = ?", email)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	var records []orderRecord
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

type receivedOrderRepository struct{ conn conn }

func (r *receivedOrderRepository) Create(ctx context.Context, received *domain.ReceivedOrder) (*domain.ReceivedOrder, error) {
	if received == nil {
		return nil, errors.New("received order is nil")
	}
	db, err := r.conn.session(ctx)
	if err != nil {
		return nil, err
	}
	record := toReceivedRecord(received)
	record.ID = 0
	record.Version = 1
	if err := db.Create(&record).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *receivedOrderRepository) GetByID(ctx context.Context, kind domain.ItemKind, id int64) (*domain.ReceivedOrder, error) {
	db, err := r.conn.reader(ctx)
	if err != nil {
		return nil, err
	}
	var record receivedOrderRecord
	if err := db.First(&record, "id = ? AND kind = ?", id, string(kind)).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *receivedOrderRepository) Update(ctx context.Context, received *domain.ReceivedOrder) (*domain.ReceivedOrder, error) {
	if received == nil {
		return nil, errors.New("received order is nil")
	}
	record := toReceivedRecord(received)
	err := r.conn.versionedUpdate(ctx, &receivedOrderRecord{}, record.ID, record.Kind, record.Version, map[string]any{
		"inventory_item_id": record.InventoryItemID,
		"quantity":          record.Quantity,
		"wholesale_price":   record.WholesalePrice,
		"total_amount":      record.TotalAmount,
		"status":            record.Status,
		"date_received":     record.DateReceived,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, received.Kind, received.ID)
}

func (r *receivedOrderRepository) List(ctx context.Context, kind domain.ItemKind) ([]*domain.ReceivedOrder, error) {
	db, err := r.conn.session(ctx)
	if err != nil {
		return nil, err
	}
	query := db.Model(&receivedOrderRecord{})
	if kind != "" {
		query = query.Where("kind = ?", string(kind))
	}
	var records []receivedOrderRecord
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*domain.ReceivedOrder, 0, len(records))
	for i := range records {
		list = append(list, records[i].toDomain())
	}
	return list, nil
}

type inventoryRepository struct{ conn conn }

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if item == nil {
		return nil, errors.New("inventory item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	db, err := r.conn.session(ctx)
	if err != nil {
		return nil, err
	}
	record := toItemRecord(item)
	record.ID = 0
	record.Version = 1
	if err := db.Create(&record).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *inventoryRepository) GetByID(ctx context.Context, kind domain.ItemKind, id int64) (*domain.InventoryItem, error) {
	db, err := r.conn.reader(ctx)
	if err != nil {
		return nil, err
	}
	var record inventoryItemRecord
	if err := db.First(&record, "id = ? AND kind = ?", id, string(kind)).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *inventoryRepository) GetByName(ctx context.Context, kind domain.ItemKind, name string) (*domain.InventoryItem, error) {
	db, err := r.conn.reader(ctx)
	if err != nil {
		return nil, err
	}
	var record inventoryItemRecord
	if err := db.First(&record, "kind = ? AND item_name = ?", string(kind), strings.TrimSpace(name)).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if item == nil {
		return nil, errors.New("inventory item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	record := toItemRecord(item)
	err := r.conn.versionedUpdate(ctx, &inventoryItemRecord{}, record.ID, record.Kind, record.Version, map[string]any{
		"item_name":      record.ItemName,
		"total_received": record.TotalReceived,
		"sold":           record.Sold,
		"available":      record.Available,
		"unit_price":     record.UnitPrice,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, item.Kind, item.ID)
}

func (r *inventoryRepository) List(ctx context.Context, kind domain.ItemKind) ([]*domain.InventoryItem, error) {
	db, err := r.conn.session(ctx)
	if err != nil {
		return nil, err
	}
	query := db.Model(&inventoryItemRecord{})
	if kind != "" {
		query = query.Where("kind = ?", string(kind))
	}
	var records []inventoryItemRecord
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]*domain.InventoryItem, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return items, nil
}
