package cars

import (
	"sort"

	"github.com/almashriq-motors/dealership-backend/pkg/db/models"
)

// Filters narrow a catalog query. A nil field means no constraint; all
// supplied constraints must hold, bounds inclusive.
type Filters struct {
	Make     *string
	BodyType *string
	MinPrice *int
	MaxPrice *int
	MinYear  *int
	MaxYear  *int
}

func (f Filters) Empty() bool {
	return f.Make == nil && f.BodyType == nil &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinYear == nil && f.MaxYear == nil
}

// Matches reports whether the car appears in a public filtered query.
// Unavailable cars never match.
func (f Filters) Matches(car *models.Car) bool {
	if !car.IsAvailable {
		return false
	}
	if f.Make != nil && car.Make != *f.Make {
		return false
	}
	if f.BodyType != nil && car.BodyType != *f.BodyType {
		return false
	}
	if f.MinPrice != nil && car.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && car.Price > *f.MaxPrice {
		return false
	}
	if f.MinYear != nil && car.Year < *f.MinYear {
		return false
	}
	if f.MaxYear != nil && car.Year > *f.MaxYear {
		return false
	}
	return true
}

// IsFeatured reports whether the car belongs to the featured subset.
func IsFeatured(car *models.Car) bool {
	return car.IsFeatured && car.IsAvailable
}

// SortNewestFirst orders cars by descending creation time. The sort is
// stable, so equal timestamps keep their incoming order.
func SortNewestFirst(cars []*models.Car) {
	sort.SliceStable(cars, func(i, j int) bool {
		return cars[i].CreatedAt.After(cars[j].CreatedAt)
	})
}
