package application

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
)

// Service exposes supplier bounded context use cases.
type Service struct {
	repo      ports.Repository
	directory ports.Directory
	tokens    ports.TokenIssuer
	cost      int
}

// Option customises the service.
type Option func(*Service)

// WithBcryptCost overrides the password hashing cost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.cost = cost
		}
	}
}

// WithDirectory routes Exists through a faster lookup such as a cache.
func WithDirectory(directory ports.Directory) Option {
	return func(s *Service) {
		if directory != nil {
			s.directory = directory
		}
	}
}

func NewService(repo ports.Repository, tokens ports.TokenIssuer, opts ...Option) *Service {
	s := &Service{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost}
	s.directory = repositoryDirectory{repo: repo}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Register hashes the password and stores a new supplier.
func (s *Service) Register(ctx context.Context, input types.RegisterSupplierInput) (*domain.Supplier, error) {
	supplier, err := domain.NewSupplier(input.Name, input.Email, input.Phone, input.SuppliedItems)
	if err != nil {
		return nil, mapError(err)
	}
	if err := domain.CheckPasswordPolicy(input.Password); err != nil {
		return nil, mapError(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, err
	}
	supplier.PasswordHash = string(hash)
	saved, err := s.repo.Create(ctx, supplier)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Login checks the password and returns a supplier-role token.
func (s *Service) Login(ctx context.Context, input types.LoginInput) (*types.LoginResult, error) {
	email := domain.NormalizeEmail(input.Email)
	if email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, mapError(ports.ErrInvalidCredentials)
	}
	supplier, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, mapError(ports.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(supplier.PasswordHash), []byte(input.Password)) != nil {
		return nil, mapError(ports.ErrInvalidCredentials)
	}
	if s.tokens == nil {
		return nil, errors.New("token issuer not configured")
	}
	token, err := s.tokens.Issue(auth.Identity{Subject: supplier.ID, Email: supplier.Email, Role: auth.RoleSupplier})
	if err != nil {
		return nil, err
	}
	return &types.LoginResult{Token: token, Supplier: supplier}, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Supplier, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	return s.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
}

// Exists satisfies the procurement supplier directory.
func (s *Service) Exists(ctx context.Context, email string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return false, nil
	}
	return s.directory.Exists(ctx, email)
}

// repositoryDirectory answers Exists straight from the repository.
type repositoryDirectory struct {
	repo ports.Repository
}

func (d repositoryDirectory) Exists(ctx context.Context, email string) (bool, error) {
	_, err := d.repo.GetByEmail(ctx, email)
	if errors.Is(err, ports.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RepositoryDirectory exposes the uncached lookup so caches can wrap it.
func RepositoryDirectory(repo ports.Repository) ports.Directory {
	return repositoryDirectory{repo: repo}
}

var _ ports.Service = (*Service)(nil)
