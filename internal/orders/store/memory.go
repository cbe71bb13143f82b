package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/wsgate/internal/orders/entity"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	orders map[int64]entity.Order
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		orders: make(map[int64]entity.Order),
	}
}

func (s *InMemoryStore) Create(ctx context.Context, order entity.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[order.ID]; exists {
		return pkgerror.ErrConflict
	}

	s.orders[order.ID] = order

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id int64) (entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return entity.Order{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return entity.Order{}, pkgerror.ErrNotFound
	}

	return order, nil
}

// Update applies fn to a copy of the order and stores it only when fn succeeds.
func (s *InMemoryStore) Update(ctx context.Context, id int64, fn func(order *entity.Order) error) (entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return entity.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return entity.Order{}, pkgerror.ErrNotFound
	}

	if err := fn(&order); err != nil {
		return entity.Order{}, err
	}
	s.orders[id] = order

	return order, nil
}
