package cars

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/almashriq-motors/dealership-backend/pkg/db/models"
)

func strFilter(s string) *string { return &s }

func intFilter(i int) *int { return &i }

func testCar(mutate func(*models.Car)) *models.Car {
	car := &models.Car{
		ID:          uuid.New(),
		Title:       "BMW X7 2022",
		Make:        "BMW",
		Model:       "X7",
		Year:        2022,
		Price:       156000,
		Mileage:     8500,
		BodyType:    "SUV",
		IsAvailable: true,
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	if mutate != nil {
		mutate(car)
	}
	return car
}

func TestFiltersMatches(t *testing.T) {
	t.Run("emptyFilterMatchesAvailable", func(t *testing.T) {
		if !(Filters{}).Matches(testCar(nil)) {
			t.Fatal("expected empty filter to match an available car")
		}
	})

	t.Run("unavailableNeverMatches", func(t *testing.T) {
		car := testCar(func(c *models.Car) { c.IsAvailable = false })
		if (Filters{}).Matches(car) {
			t.Fatal("unavailable car must not match even with no constraints")
		}
	})

	t.Run("makeExactMatch", func(t *testing.T) {
		if !(Filters{Make: strFilter("BMW")}).Matches(testCar(nil)) {
			t.Fatal("expected make to match")
		}
		if (Filters{Make: strFilter("bmw")}).Matches(testCar(nil)) {
			t.Fatal("make matching is exact, not case-insensitive")
		}
	})

	t.Run("priceBoundsInclusive", func(t *testing.T) {
		f := Filters{MinPrice: intFilter(156000), MaxPrice: intFilter(156000)}
		if !f.Matches(testCar(nil)) {
			t.Fatal("expected inclusive price bounds to match the boundary value")
		}
		if (Filters{MaxPrice: intFilter(155999)}).Matches(testCar(nil)) {
			t.Fatal("expected price above max to be excluded")
		}
		if (Filters{MinPrice: intFilter(156001)}).Matches(testCar(nil)) {
			t.Fatal("expected price below min to be excluded")
		}
	})

	t.Run("yearBounds", func(t *testing.T) {
		if !(Filters{MinYear: intFilter(2020), MaxYear: intFilter(2023)}).Matches(testCar(nil)) {
			t.Fatal("expected year within range to match")
		}
		if (Filters{MinYear: intFilter(2023)}).Matches(testCar(nil)) {
			t.Fatal("expected older car to be excluded")
		}
	})

	t.Run("allConstraintsAnded", func(t *testing.T) {
		f := Filters{Make: strFilter("BMW"), BodyType: strFilter("سيدان")}
		if f.Matches(testCar(nil)) {
			t.Fatal("one failing constraint must exclude the car")
		}
	})
}

func TestFiltersEmpty(t *testing.T) {
	if !(Filters{}).Empty() {
		t.Fatal("zero filters should be empty")
	}
	if (Filters{Make: strFilter("BMW")}).Empty() {
		t.Fatal("filters with a make are not empty")
	}
	if (Filters{MinPrice: intFilter(0)}).Empty() {
		t.Fatal("a zero-valued bound still counts as supplied")
	}
}

func TestIsFeatured(t *testing.T) {
	featured := testCar(func(c *models.Car) { c.IsFeatured = true })
	if !IsFeatured(featured) {
		t.Fatal("expected featured available car to be included")
	}

	hidden := testCar(func(c *models.Car) {
		c.IsFeatured = true
		c.IsAvailable = false
	})
	if IsFeatured(hidden) {
		t.Fatal("featured but unavailable car must be excluded")
	}

	if IsFeatured(testCar(nil)) {
		t.Fatal("non-featured car must be excluded")
	}
}

func TestSortNewestFirst(t *testing.T) {
	oldest := testCar(func(c *models.Car) { c.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) })
	middle := testCar(func(c *models.Car) { c.CreatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) })
	newest := testCar(func(c *models.Car) { c.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) })

	list := []*models.Car{oldest, newest, middle}
	SortNewestFirst(list)

	if list[0] != newest || list[1] != middle || list[2] != oldest {
		t.Fatalf("expected newest-first order, got %v %v %v", list[0].CreatedAt, list[1].CreatedAt, list[2].CreatedAt)
	}
}

func TestSortNewestFirstStable(t *testing.T) {
	ts := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	first := testCar(func(c *models.Car) { c.CreatedAt = ts })
	second := testCar(func(c *models.Car) { c.CreatedAt = ts })

	list := []*models.Car{first, second}
	SortNewestFirst(list)

	if list[0] != first || list[1] != second {
		t.Fatal("equal timestamps must keep their incoming order")
	}
}
