package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps suppliers in memory keyed by ID.
type Repository struct {
	mu        sync.RWMutex
	suppliers map[int64]*domain.Supplier
	nextID    int64
}

func NewRepository() *Repository {
	return &Repository{suppliers: map[int64]*domain.Supplier{}}
}

func (r *Repository) Create(_ context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	if supplier == nil {
		return nil, errors.New("supplier is nil")
	}
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.suppliers {
		if existing.Email == supplier.Email {
			return nil, ports.ErrDuplicateEmail
		}
	}
	clone := cloneSupplier(supplier)
	r.nextID++
	clone.ID = r.nextID
	clone.CreatedAt = time.Now().UTC()
	clone.UpdatedAt = clone.CreatedAt
	r.suppliers[clone.ID] = clone
	return cloneSupplier(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneSupplier(supplier), nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.Supplier, error) {
	email = domain.NormalizeEmail(email)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, supplier := range r.suppliers {
		if supplier.Email == email {
			return cloneSupplier(supplier), nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Supplier, 0, len(r.suppliers))
	for _, supplier := range r.suppliers {
		list = append(list, cloneSupplier(supplier))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func cloneSupplier(s *domain.Supplier) *domain.Supplier {
	c := *s
	c.SuppliedItems = append([]string(nil), s.SuppliedItems...)
	return &c
}
