package postgres

import (
	"time"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

// orderRecord maps a procurement order to a relational table shared by both kinds.
type orderRecord struct {
	ID              int64     `gorm:"primaryKey;column:id"`
	Kind            string    `gorm:"column:kind;type:varchar(16);index:idx_procurement_orders_kind_supplier"`
	InventoryItemID *int64    `gorm:"column:inventory_item_id;index"`
	ItemName        string    `gorm:"column:item_name"`
	Quantity        int64     `gorm:"column:quantity"`
	SupplierEmail   string    `gorm:"column:supplier_email;index:idx_procurement_orders_kind_supplier"`
	TotalAmount     float64   `gorm:"column:total_amount"`
	OrderDate       time.Time `gorm:"column:order_date"`
	Status          string    `gorm:"column:status;type:varchar(32);index"`
	Version         int64     `gorm:"column:version;not null;default:1"`
	CreatedAt       time.Time `gorm:"column:created_at;index"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "procurement_orders" }

// receivedOrderRecord maps a delivery awaiting reconciliation. One row per accepted order.
type receivedOrderRecord struct {
	ID              int64      `gorm:"primaryKey;column:id"`
	Kind            string     `gorm:"column:kind;type:varchar(16);index"`
	OrderID         int64      `gorm:"column:order_id;uniqueIndex"`
	InventoryItemID *int64     `gorm:"column:inventory_item_id"`
	ItemName        string     `gorm:"column:item_name"`
	Quantity        int64      `gorm:"column:quantity"`
	WholesalePrice  float64    `gorm:"column:wholesale_price"`
	TotalAmount     float64    `gorm:"column:total_amount"`
	SupplierEmail   string     `gorm:"column:supplier_email"`
	Status          string     `gorm:"column:status;type:varchar(32);index"`
	DateReceived    *time.Time `gorm:"column:date_received"`
	OrderDate       time.Time  `gorm:"column:order_date"`
	Version         int64      `gorm:"column:version;not null;default:1"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (receivedOrderRecord) TableName() string { return "procurement_received_orders" }

// inventoryItemRecord maps live stock. Names are unique per kind.
type inventoryItemRecord struct {
	ID            int64     `gorm:"primaryKey;column:id"`
	Kind          string    `gorm:"column:kind;type:varchar(16);uniqueIndex:idx_inventory_items_kind_name"`
	ItemName      string    `gorm:"column:item_name;uniqueIndex:idx_inventory_items_kind_name"`
	TotalReceived int64     `gorm:"column:total_received"`
	Sold          int64     `gorm:"column:sold"`
	Available     int64     `gorm:"column:available"`
	UnitPrice     float64   `gorm:"column:unit_price"`
	DateAdded     time.Time `gorm:"column:date_added"`
	Version       int64     `gorm:"column:version;not null;default:1"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (inventoryItemRecord) TableName() string { return "inventory_items" }

func toOrderRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:              order.ID,
		Kind:            string(order.Kind),
		InventoryItemID: order.InventoryItemID,
		ItemName:        order.ItemName,
		Quantity:        order.Quantity,
		SupplierEmail:   order.SupplierEmail,
		TotalAmount:     order.TotalAmount,
		OrderDate:       order.OrderDate.UTC(),
		Status:          string(order.Status),
		Version:         order.Version,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:              r.ID,
		Kind:            domain.ItemKind(r.Kind),
		InventoryItemID: r.InventoryItemID,
		ItemName:        r.ItemName,
		Quantity:        r.Quantity,
		SupplierEmail:   r.SupplierEmail,
		TotalAmount:     r.TotalAmount,
		OrderDate:       r.OrderDate.UTC(),
		Status:          domain.OrderStatus(r.Status),
		Version:         r.Version,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

func toReceivedRecord(received *domain.ReceivedOrder) receivedOrderRecord {
	return receivedOrderRecord{
		ID:              received.ID,
		Kind:            string(received.Kind),
		OrderID:         received.OrderID,
		InventoryItemID: received.InventoryItemID,
		ItemName:        received.ItemName,
		Quantity:        received.Quantity,
		WholesalePrice:  received.WholesalePrice,
		TotalAmount:     received.TotalAmount,
		SupplierEmail:   received.SupplierEmail,
		Status:          string(received.Status),
		DateReceived:    utcPtr(received.DateReceived),
		OrderDate:       received.OrderDate.UTC(),
		Version:         received.Version,
	}
}

func (r receivedOrderRecord) toDomain() *domain.ReceivedOrder {
	return &domain.ReceivedOrder{
		ID:              r.ID,
		Kind:            domain.ItemKind(r.Kind),
		OrderID:         r.OrderID,
		InventoryItemID: r.InventoryItemID,
		ItemName:        r.ItemName,
		Quantity:        r.Quantity,
		WholesalePrice:  r.WholesalePrice,
		TotalAmount:     r.TotalAmount,
		SupplierEmail:   r.SupplierEmail,
		Status:          domain.ReceivedStatus(r.Status),
		DateReceived:    utcPtr(r.DateReceived),
		OrderDate:       r.OrderDate.UTC(),
		Version:         r.Version,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

func toItemRecord(item *domain.InventoryItem) inventoryItemRecord {
	return inventoryItemRecord{
		ID:            item.ID,
		Kind:          string(item.Kind),
		ItemName:      item.ItemName,
		TotalReceived: item.TotalReceived,
		Sold:          item.Sold,
		Available:     item.Available,
		UnitPrice:     item.UnitPrice,
		DateAdded:     item.DateAdded.UTC(),
		Version:       item.Version,
	}
}

func (r inventoryItemRecord) toDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:            r.ID,
		Kind:          domain.ItemKind(r.Kind),
		ItemName:      r.ItemName,
		TotalReceived: r.TotalReceived,
		Sold:          r.Sold,
		Available:     r.Available,
		UnitPrice:     r.UnitPrice,
		DateAdded:     r.DateAdded.UTC(),
		Version:       r.Version,
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
