package cars

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/almashriq-motors/dealership-backend/pkg/db"
	"github.com/almashriq-motors/dealership-backend/pkg/db/models"
	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
)

const msgCarNotFound = "السيارة غير موجودة"

// Service exposes catalog lifecycle and query operations.
type Service interface {
	GetCar(ctx context.Context, id uuid.UUID) (*models.Car, error)
	ListCars(ctx context.Context, filters Filters) ([]*models.Car, error)
	FeaturedCars(ctx context.Context) ([]*models.Car, error)
	AllCars(ctx context.Context) ([]*models.Car, error)
	CreateCar(ctx context.Context, input CreateCarInput) (*models.Car, error)
	UpdateCar(ctx context.Context, id uuid.UUID, input UpdateCarInput) (*models.Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

// CreateCarInput holds the validated payload to create a listing.
type CreateCarInput struct {
	Title        string
	Make         string
	Model        string
	Year         int
	Price        int
	Mileage      int
	FuelType     string
	Transmission string
	EngineSize   string
	BodyType     string
	Location     string
	Description  *string
	Features     []string
	Images       []string
	IsAvailable  *bool
	IsFeatured   *bool
}

// UpdateCarInput holds optional mutation values. A nil field keeps the
// existing value; a set pointer overwrites it, empty string included.
type UpdateCarInput struct {
	Title        *string
	Make         *string
	Model        *string
	Year         *int
	Price        *int
	Mileage      *int
	FuelType     *string
	Transmission *string
	EngineSize   *string
	BodyType     *string
	Location     *string
	Description  *string
	Features     *[]string
	Images       *[]string
	IsAvailable  *bool
	IsFeatured   *bool
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a catalog service on the given repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("car repository required")
	}
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) GetCar(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	car, err := s.repo.Get(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, msgCarNotFound)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: get car")
	}
	return car, nil
}

func (s *service) ListCars(ctx context.Context, filters Filters) ([]*models.Car, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: list cars")
	}

	matched := make([]*models.Car, 0, len(all))
	for _, car := range all {
		if filters.Matches(car) {
			matched = append(matched, car)
		}
	}
	SortNewestFirst(matched)
	return matched, nil
}

func (s *service) FeaturedCars(ctx context.Context) ([]*models.Car, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: featured cars")
	}

	featured := make([]*models.Car, 0, len(all))
	for _, car := range all {
		if IsFeatured(car) {
			featured = append(featured, car)
		}
	}
	SortNewestFirst(featured)
	return featured, nil
}

// AllCars returns the full inventory, unavailable listings included. This
// backs the admin manage view.
func (s *service) AllCars(ctx context.Context) ([]*models.Car, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: all cars")
	}
	SortNewestFirst(all)
	return all, nil
}

func (s *service) CreateCar(ctx context.Context, input CreateCarInput) (*models.Car, error) {
	now := s.now()
	car := &models.Car{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		Make:         strings.TrimSpace(input.Make),
		Model:        strings.TrimSpace(input.Model),
		Year:         input.Year,
		Price:        input.Price,
		Mileage:      input.Mileage,
		FuelType:     strings.TrimSpace(input.FuelType),
		Transmission: strings.TrimSpace(input.Transmission),
		EngineSize:   strings.TrimSpace(input.EngineSize),
		BodyType:     strings.TrimSpace(input.BodyType),
		Location:     strings.TrimSpace(input.Location),
		Description:  input.Description,
		Features:     append([]string(nil), input.Features...),
		Images:       append([]string(nil), input.Images...),
		IsAvailable:  true,
		IsFeatured:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.IsAvailable != nil {
		car.IsAvailable = *input.IsAvailable
	}
	if input.IsFeatured != nil {
		car.IsFeatured = *input.IsFeatured
	}

	if err := s.repo.Put(ctx, car); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: put car")
	}
	return car, nil
}

func (s *service) UpdateCar(ctx context.Context, id uuid.UUID, input UpdateCarInput) (*models.Car, error) {
	car, err := s.repo.Get(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, msgCarNotFound)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: get car")
	}

	applyUpdate(car, input)
	car.UpdatedAt = s.now()

	if err := s.repo.Put(ctx, car); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: put car")
	}
	return car, nil
}

func (s *service) DeleteCar(ctx context.Context, id uuid.UUID) error {
	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store: remove car")
	}
	if !removed {
		return pkgerrors.New(pkgerrors.CodeNotFound, msgCarNotFound)
	}
	return nil
}

// applyUpdate merges the supplied fields over the existing record. ID and
// CreatedAt are never touched.
func applyUpdate(car *models.Car, input UpdateCarInput) {
	if input.Title != nil {
		car.Title = strings.TrimSpace(*input.Title)
	}
	if input.Make != nil {
		car.Make = strings.TrimSpace(*input.Make)
	}
	if input.Model != nil {
		car.Model = strings.TrimSpace(*input.Model)
	}
	if input.Year != nil {
		car.Year = *input.Year
	}
	if input.Price != nil {
		car.Price = *input.Price
	}
	if input.Mileage != nil {
		car.Mileage = *input.Mileage
	}
	if input.FuelType != nil {
		car.FuelType = strings.TrimSpace(*input.FuelType)
	}
	if input.Transmission != nil {
		car.Transmission = strings.TrimSpace(*input.Transmission)
	}
	if input.EngineSize != nil {
		car.EngineSize = strings.TrimSpace(*input.EngineSize)
	}
	if input.BodyType != nil {
		car.BodyType = strings.TrimSpace(*input.BodyType)
	}
	if input.Location != nil {
		car.Location = strings.TrimSpace(*input.Location)
	}
	if input.Description != nil {
		car.Description = input.Description
	}
	if input.Features != nil {
		car.Features = append([]string(nil), *input.Features...)
	}
	if input.Images != nil {
		car.Images = append([]string(nil), *input.Images...)
	}
	if input.IsAvailable != nil {
		car.IsAvailable = *input.IsAvailable
	}
	if input.IsFeatured != nil {
		car.IsFeatured = *input.IsFeatured
	}
}
