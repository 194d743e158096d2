package contacts

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/almashriq-motors/dealership-backend/pkg/db"
	"github.com/almashriq-motors/dealership-backend/pkg/db/models"
)

// Repository is the four-operation store contract for inquiries.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	GetAll(ctx context.Context) ([]*models.Contact, error)
	Put(ctx context.Context, contact *models.Contact) error
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

// MemoryRepository is the canonical in-memory backing.
type MemoryRepository struct {
	mu       sync.RWMutex
	contacts map[uuid.UUID]*models.Contact
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{contacts: make(map[uuid.UUID]*models.Contact)}
}

func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return contact.Clone(), nil
}

func (r *MemoryRepository) GetAll(_ context.Context) ([]*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Contact, 0, len(r.contacts))
	for _, contact := range r.contacts {
		out = append(out, contact.Clone())
	}
	return out, nil
}

func (r *MemoryRepository) Put(_ context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts[contact.ID] = contact.Clone()
	return nil
}

func (r *MemoryRepository) Remove(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.contacts[id]
	delete(r.contacts, id)
	return ok, nil
}
