package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

var _ ports.UnitOfWork = (*Store)(nil)

// Store persists procurement aggregates in PostgreSQL using GORM.
type Store struct {
	db *gorm.DB
}

// NewStore wires a PostgreSQL-backed unit of work. Caller manages DB lifecycle.
func NewStore(db *gorm.DB) *Store {
	store := &Store{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &receivedOrderRecord{}, &inventoryItemRecord{})
	}
	return store
}

// Repositories returns repositories that run each call in its own statement.
func (s *Store) Repositories() ports.Repositories {
	return conn{db: s.db}.repositories()
}

// Do runs fn inside a database transaction. Rows read through repos are locked
// FOR UPDATE until the transaction ends.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	if s == nil || s.db == nil {
		return errors.New("postgres procurement store not configured")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, conn{db: tx, lock: true}.repositories())
	})
}

// conn binds repositories to either the pool or an open transaction.
type conn struct {
	db   *gorm.DB
	lock bool
}

func (c conn) repositories() ports.Repositories {
	return ports.Repositories{
		Orders:         &orderRepository{conn: c},
		ReceivedOrders: &receivedOrderRepository{conn: c},
		Inventory:      &inventoryRepository{conn: c},
	}
}

func (c conn) session(ctx context.Context) (*gorm.DB, error) {
	if c.db == nil {
		return nil, errors.New("postgres procurement store not configured")
	}
	return c.db.WithContext(ctx), nil
}

// reader applies row locking when running inside a transaction.
func (c conn) reader(ctx context.Context) (*gorm.DB, error) {
	db, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	if c.lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db, nil
}

// versionedUpdate writes values only when the stored version matches, bumping it by one.
func (c conn) versionedUpdate(ctx context.Context, model any, id int64, kind string, version int64, values map[string]any) error {
	db, err := c.session(ctx)
	if err != nil {
		return err
	}
	values["version"] = gorm.Expr("version + 1")
	values["updated_at"] = time.Now().UTC()
	result := db.Model(model).
		Where("id = ? AND kind = ? AND version = ?", id, kind, version).
		Updates(values)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := db.Model(model).Where("id = ? AND kind = ?", id, kind).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ports.ErrNotFound
	}
	return ports.ErrConcurrentModification
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ports.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ports.ErrDuplicate
	default:
		return err
	}
}
