package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/almashriq-motors/dealership-backend/api/responses"
	"github.com/almashriq-motors/dealership-backend/api/validators"
	"github.com/almashriq-motors/dealership-backend/internal/cars"
	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
	"github.com/almashriq-motors/dealership-backend/pkg/logger"
)

// ListCars serves the public catalog with optional filters. Malformed
// numeric parameters are rejected before the filter engine sees them.
func ListCars(svc cars.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		filters, err := filtersFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListCars(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// FeaturedCars serves the promotional subset.
func FeaturedCars(svc cars.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		result, err := svc.FeaturedCars(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GetCar serves a single listing by id.
func GetCar(svc cars.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		id, err := carIDFromRoute(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		car, err := svc.GetCar(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, car)
	}
}

func filtersFromQuery(r *http.Request) (cars.Filters, error) {
	filters := cars.Filters{
		Make:     validators.OptionalQueryString(r, "make"),
		BodyType: validators.OptionalQueryString(r, "bodyType"),
	}

	var err error
	if filters.MinPrice, err = validators.OptionalQueryInt(r, "minPrice"); err != nil {
		return cars.Filters{}, err
	}
	if filters.MaxPrice, err = validators.OptionalQueryInt(r, "maxPrice"); err != nil {
		return cars.Filters{}, err
	}
	if filters.MinYear, err = validators.OptionalQueryInt(r, "minYear"); err != nil {
		return cars.Filters{}, err
	}
	if filters.MaxYear, err = validators.OptionalQueryInt(r, "maxYear"); err != nil {
		return cars.Filters{}, err
	}
	return filters, nil
}

func carIDFromRoute(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "carId"))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car id")
	}
	return id, nil
}
