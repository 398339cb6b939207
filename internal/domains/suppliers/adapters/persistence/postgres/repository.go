package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists suppliers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&supplierRecord{})
	}
	return repo
}

// supplierRecord is the GORM model for the suppliers table.
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

func (r *Repository) Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, errors.New("supplier is nil")
	}
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(supplier)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateEmail
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	return r.first(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *Repository) List(ctx context.Context) ([]*domain.Supplier, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []supplierRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	suppliers := make([]*domain.Supplier, 0, len(records))
	for i := range records {
		suppliers = append(suppliers, records[i].toDomain())
	}
	return suppliers, nil
}

func (r *Repository) first(ctx context.Context, query string, arg interface{}) (*domain.Supplier, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record supplierRecord
	if err := r.db.WithContext(ctx).First(&record, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres repository not initialised")
	}
	return nil
}

func toRecord(s *domain.Supplier) supplierRecord {
	return supplierRecord{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		SuppliedItems: pq.StringArray(append([]string(nil), s.SuppliedItems...)),
		PasswordHash:  s.PasswordHash,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (r supplierRecord) toDomain() *domain.Supplier {
	items := []string(r.SuppliedItems)
	if items == nil {
		items = []string{}
	}
	return &domain.Supplier{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		SuppliedItems: items,
		PasswordHash:  r.PasswordHash,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}
