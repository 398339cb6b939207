package ports

import (
	"context"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
)

// Service exposes staff account use cases to adapters.
type Service interface {
	CreateUser(ctx context.Context, input types.CreateUserInput) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Login(ctx context.Context, input types.LoginInput) (*types.LoginResult, error)
	// EnsureAdmin creates the bootstrap admin when no account uses the email yet.
	EnsureAdmin(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenIssuer signs access tokens for authenticated staff.
type TokenIssuer interface {
	Issue(identity auth.Identity) (string, error)
}
