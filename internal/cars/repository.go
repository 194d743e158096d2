package cars

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/almashriq-motors/dealership-backend/pkg/db"
	"github.com/almashriq-motors/dealership-backend/pkg/db/models"
)

// Repository is the four-operation store contract for car listings.
// Ordering of GetAll is unspecified; callers sort.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Car, error)
	GetAll(ctx context.Context) ([]*models.Car, error)
	Put(ctx context.Context, car *models.Car) error
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

// MemoryRepository is the canonical in-memory backing. All access is
// serialized behind one lock; snapshots are deep copies so no caller ever
// holds a mutable reference into the store.
type MemoryRepository struct {
	mu   sync.RWMutex
	cars map[uuid.UUID]*models.Car
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{cars: make(map[uuid.UUID]*models.Car)}
}

func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, ok := r.cars[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return car.Clone(), nil
}

func (r *MemoryRepository) GetAll(_ context.Context) ([]*models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Car, 0, len(r.cars))
	for _, car := range r.cars {
		out = append(out, car.Clone())
	}
	return out, nil
}

func (r *MemoryRepository) Put(_ context.Context, car *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cars[car.ID] = car.Clone()
	return nil
}

func (r *MemoryRepository) Remove(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.cars[id]
	delete(r.cars, id)
	return ok, nil
}
