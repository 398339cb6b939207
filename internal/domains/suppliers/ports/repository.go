package ports

import (
	"context"
	"errors"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
)

var (
	ErrNotFound           = errors.New("supplier not found")
	ErrDuplicateEmail     = errors.New("supplier email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Repository persists suppliers. Emails are unique.
type Repository interface {
	Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	GetByEmail(ctx context.Context, email string) (*domain.Supplier, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
}

// Directory answers whether an email belongs to a registered supplier.
type Directory interface {
	Exists(ctx context.Context, email string) (bool, error)
}
