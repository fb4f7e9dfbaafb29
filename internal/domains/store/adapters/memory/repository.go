package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/softpaws/petstore-api/internal/domains/store/domain"
	"github.com/softpaws/petstore-api/internal/domains/store/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Insert(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; ok {
		return nil, ports.ErrDuplicateID
	}
	clone := *order
	r.orders[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

// Len reports the stored order count, for tests.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
