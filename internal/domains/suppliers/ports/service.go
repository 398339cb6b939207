package ports

import (
	"context"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
)

// Service exposes supplier bounded context use cases to adapters.
type Service interface {
	Register(ctx context.Context, input types.RegisterSupplierInput) (*domain.Supplier, error)
	Login(ctx context.Context, input types.LoginInput) (*types.LoginResult, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
	GetByEmail(ctx context.Context, email string) (*domain.Supplier, error)
	Exists(ctx context.Context, email string) (bool, error)
}

// TokenIssuer signs access tokens for authenticated suppliers.
type TokenIssuer interface {
	Issue(identity auth.Identity) (string, error)
}
