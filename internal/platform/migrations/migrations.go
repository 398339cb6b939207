package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Adapters also automigrate their own tables.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&receivedOrderRecord{},
		&inventoryItemRecord{},
		&supplierRecord{},
		&staffRecord{},
	)
}

// Order schema mirrors the procurement Postgres adapter.
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

// Received order schema mirrors the procurement Postgres adapter.
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

// Inventory schema mirrors the procurement Postgres adapter.
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

// Supplier schema mirrors the suppliers Postgres adapter.
type supplierRecord struct {
	ID            int64          `gorm:"primaryKey;column:id"`
	Name          string         `gorm:"column:name;not null"`
	Email         string         `gorm:"column:email;uniqueIndex;not null"`
	Phone         string         `gorm:"column:phone"`
	SuppliedItems pq.StringArray `gorm:"column:supplied_items;type:text[]"`
	PasswordHash  string         `gorm:"column:password_hash;not null"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (supplierRecord) TableName() string { return "suppliers" }

// Staff schema mirrors the users Postgres adapter.
type staffRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	FullName     string    `gorm:"column:full_name"`
	Role         string    `gorm:"column:role;type:varchar(16);index"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (staffRecord) TableName() string { return "staff_users" }
