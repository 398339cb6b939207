package memory

import (
	"context"
	"sync"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

var _ ports.UnitOfWork = (*Store)(nil)

// Store is an in-memory procurement persistence adapter. Transactions hold
// the write lock for their whole duration and restore a snapshot on error.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// Repositories returns repositories that lock per call.
func (s *Store) Repositories() ports.Repositories {
	return (&view{store: s, locking: true}).repositories()
}

// Do runs fn against repositories that share the held lock.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.data.clone()
	if err := fn(ctx, (&view{store: s}).repositories()); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// view routes repository calls to the store, taking the lock only outside transactions.
type view struct {
	store   *Store
	locking bool
}

func (v *view) repositories() ports.Repositories {
	return ports.Repositories{
		Orders:         &orderRepository{view: v},
		ReceivedOrders: &receivedOrderRepository{view: v},
		Inventory:      &inventoryRepository{view: v},
	}
}

func (v *view) read(fn func(d *dataset) error) error {
	if v.locking {
		v.store.mu.RLock()
		defer v.store.mu.RUnlock()
	}
	return fn(v.store.data)
}

func (v *view) write(fn func(d *dataset) error) error {
	if v.locking {
		v.store.mu.Lock()
		defer v.store.mu.Unlock()
	}
	return fn(v.store.data)
}
