package contacts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/almashriq-motors/dealership-backend/pkg/db"
	"github.com/almashriq-motors/dealership-backend/pkg/db/models"
	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
)

const msgContactNotFound = "الرسالة غير موجودة"

// Service exposes inquiry lifecycle operations.
type Service interface {
	CreateContact(ctx context.Context, input CreateContactInput) (*models.Contact, error)
	AllContacts(ctx context.Context) ([]*models.Contact, error)
	UnreadContacts(ctx context.Context) ([]*models.Contact, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

// CreateContactInput holds the validated inquiry payload. IsRead is not an
// input; new inquiries always start unread.
type CreateContactInput struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs an inquiry service on the given repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) CreateContact(ctx context.Context, input CreateContactInput) (*models.Contact, error) {
	contact := &models.Contact{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		Message:   strings.TrimSpace(input.Message),
		IsRead:    false,
		CreatedAt: s.now(),
	}

	if err := s.repo.Put(ctx, contact); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: put contact")
	}
	return contact, nil
}

func (s *service) AllContacts(ctx context.Context) ([]*models.Contact, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: list contacts")
	}
	sortNewestFirst(all)
	return all, nil
}

func (s *service) UnreadContacts(ctx context.Context) ([]*models.Contact, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: list contacts")
	}

	unread := make([]*models.Contact, 0, len(all))
	for _, contact := range all {
		if !contact.IsRead {
			unread = append(unread, contact)
		}
	}
	sortNewestFirst(unread)
	return unread, nil
}

// MarkRead flips the inquiry to read. Re-marking an already-read inquiry
// succeeds; the flag never reverts.
func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	contact, err := s.repo.Get(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, msgContactNotFound)
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: get contact")
	}

	if contact.IsRead {
		return nil
	}
	contact.IsRead = true
	if err := s.repo.Put(ctx, contact); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: put contact")
	}
	return nil
}

func (s *service) DeleteContact(ctx context.Context, id uuid.UUID) error {
	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: remove contact")
	}
	if !removed {
		return pkgerrors.New(pkgerrors.CodeNotFound, msgContactNotFound)
	}
	return nil
}

func sortNewestFirst(contacts []*models.Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
}
