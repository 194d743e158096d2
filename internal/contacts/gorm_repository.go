package contacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/almashriq-motors/dealership-backend/pkg/db"
	"github.com/almashriq-motors/dealership-backend/pkg/db/models"
)

// GormRepository is the durable sqlite backing for inquiries.
type GormRepository struct {
	conn *gorm.DB
}

func NewGormRepository(conn *gorm.DB) (*GormRepository, error) {
	if conn == nil {
		return nil, fmt.Errorf("gorm connection required")
	}
	return &GormRepository{conn: conn}, nil
}

func (r *GormRepository) Get(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.conn.WithContext(ctx).First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *GormRepository) GetAll(ctx context.Context) ([]*models.Contact, error) {
	var rows []*models.Contact
	if err := r.conn.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository) Put(ctx context.Context, contact *models.Contact) error {
	return r.conn.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(contact.Clone()).Error
}

func (r *GormRepository) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.conn.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
