package cars

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

// GormRepository is the durable sqlite backing behind the same contract as
// the in-memory store.
type GormRepository struct {
	conn *gorm.DB
}

func NewGormRepository(conn *gorm.DB) (*GormRepository, error) {
	if conn == nil {
		return nil, fmt.Errorf("gorm connection required")
	}
	return &GormRepository{conn: conn}, nil
}

func (r *GormRepository) Get(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	err := r.conn.WithContext(ctx).First(&car, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *GormRepository) GetAll(ctx context.Context) ([]*models.Car, error) {
	var rows []*models.Car
	if err := r.conn.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository) Put(ctx context.Context, car *models.Car) error {
	return r.conn.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(car.Clone()).Error
}

func (r *GormRepository) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.conn.WithContext(ctx).Delete(&models.Car{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
