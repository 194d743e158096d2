package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/almashriq-motors/dealership-backend/api/responses"
	"github.com/almashriq-motors/dealership-backend/api/validators"
	"github.com/almashriq-motors/dealership-backend/internal/cars"
	"github.com/almashriq-motors/dealership-backend/internal/uploads"
	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
	"github.com/almashriq-motors/dealership-backend/pkg/logger"
)

// Multipart bodies are spooled to disk above this threshold; the per-file
// size bound is enforced by the uploads service.
const maxMultipartMemory = 8 << 20

// AdminListCars returns the full inventory, unavailable listings included.
func AdminListCars(svc cars.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		result, err := svc.AllCars(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminCreateCar accepts a JSON payload, or a multipart form with image
// attachments whose stored paths land on the listing's images field.
func AdminCreateCar(svc cars.Service, uploadSvc uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || uploadSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		var payload createCarRequest
		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
				return
			}
			parsed, err := createCarFromForm(r)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			payload = parsed

			stored, err := uploadSvc.Store(r.Context(), r.MultipartForm.File["images"])
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if len(stored) > 0 {
				payload.Images = stored
			}
		} else {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		car, err := svc.CreateCar(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithField(r.Context(), "car_id", car.ID.String())
		logg.Info(ctx, "car.created")
		responses.WriteSuccessStatus(w, http.StatusCreated, car)
	}
}

// AdminUpdateCar merges a partial payload over an existing listing.
// Replacement image attachments overwrite the images field.
func AdminUpdateCar(svc cars.Service, uploadSvc uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || uploadSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		id, err := carIDFromRoute(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCarRequest
		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
				return
			}
			parsed, err := updateCarFromForm(r)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			payload = parsed

			stored, err := uploadSvc.Store(r.Context(), r.MultipartForm.File["images"])
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if len(stored) > 0 {
				payload.Images = &stored
			}
		} else {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		car, err := svc.UpdateCar(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithField(r.Context(), "car_id", car.ID.String())
		logg.Info(ctx, "car.updated")
		responses.WriteSuccess(w, car)
	}
}

// AdminDeleteCar removes a listing.
func AdminDeleteCar(svc cars.Service, logg *logger.Logger) http.HandlerFunc {
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

		if err := svc.DeleteCar(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithField(r.Context(), "car_id", id.String())
		logg.Info(ctx, "car.deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

type createCarRequest struct {
	Title        string   `json:"title" validate:"required"`
	Make         string   `json:"make" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Year         int      `json:"year" validate:"required,gte=0"`
	Price        int      `json:"price" validate:"required,gte=0"`
	Mileage      int      `json:"mileage" validate:"gte=0"`
	FuelType     string   `json:"fuelType" validate:"required"`
	Transmission string   `json:"transmission" validate:"required"`
	EngineSize   string   `json:"engineSize" validate:"required"`
	BodyType     string   `json:"bodyType" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Description  *string  `json:"description,omitempty"`
	Features     []string `json:"features,omitempty"`
	Images       []string `json:"images,omitempty"`
	IsAvailable  *bool    `json:"isAvailable,omitempty"`
	IsFeatured   *bool    `json:"isFeatured,omitempty"`
}

func (p createCarRequest) toInput() cars.CreateCarInput {
	return cars.CreateCarInput{
		Title:        p.Title,
		Make:         p.Make,
		Model:        p.Model,
		Year:         p.Year,
		Price:        p.Price,
		Mileage:      p.Mileage,
		FuelType:     p.FuelType,
		Transmission: p.Transmission,
		EngineSize:   p.EngineSize,
		BodyType:     p.BodyType,
		Location:     p.Location,
		Description:  p.Description,
		Features:     p.Features,
		Images:       p.Images,
		IsAvailable:  p.IsAvailable,
		IsFeatured:   p.IsFeatured,
	}
}

type updateCarRequest struct {
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Make         *string   `json:"make,omitempty" validate:"omitempty,min=1"`
	Model        *string   `json:"model,omitempty" validate:"omitempty,min=1"`
	Year         *int      `json:"year,omitempty" validate:"omitempty,gte=0"`
	Price        *int      `json:"price,omitempty" validate:"omitempty,gte=0"`
	Mileage      *int      `json:"mileage,omitempty" validate:"omitempty,gte=0"`
	FuelType     *string   `json:"fuelType,omitempty"`
	Transmission *string   `json:"transmission,omitempty"`
	EngineSize   *string   `json:"engineSize,omitempty"`
	BodyType     *string   `json:"bodyType,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Features     *[]string `json:"features,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	IsAvailable  *bool     `json:"isAvailable,omitempty"`
	IsFeatured   *bool     `json:"isFeatured,omitempty"`
}

func (p updateCarRequest) toInput() cars.UpdateCarInput {
	return cars.UpdateCarInput{
		Title:        p.Title,
		Make:         p.Make,
		Model:        p.Model,
		Year:         p.Year,
		Price:        p.Price,
		Mileage:      p.Mileage,
		FuelType:     p.FuelType,
		Transmission: p.Transmission,
		EngineSize:   p.EngineSize,
		BodyType:     p.BodyType,
		Location:     p.Location,
		Description:  p.Description,
		Features:     p.Features,
		Images:       p.Images,
		IsAvailable:  p.IsAvailable,
		IsFeatured:   p.IsFeatured,
	}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func createCarFromForm(r *http.Request) (createCarRequest, error) {
	form := url.Values(r.MultipartForm.Value)

	var payload createCarRequest

	if v := validators.FormString(form, "title"); v != nil {
		payload.Title = *v
	}
	if v := validators.FormString(form, "make"); v != nil {
		payload.Make = *v
	}
	if v := validators.FormString(form, "model"); v != nil {
		payload.Model = *v
	}
	if v, err := validators.FormInt(form, "year"); err != nil {
		return createCarRequest{}, err
	} else if v != nil {
		payload.Year = *v
	}
	if v, err := validators.FormInt(form, "price"); err != nil {
		return createCarRequest{}, err
	} else if v != nil {
		payload.Price = *v
	}
	if v, err := validators.FormInt(form, "mileage"); err != nil {
		return createCarRequest{}, err
	} else if v != nil {
		payload.Mileage = *v
	}
	if v := validators.FormString(form, "fuelType"); v != nil {
		payload.FuelType = *v
	}
	if v := validators.FormString(form, "transmission"); v != nil {
		payload.Transmission = *v
	}
	if v := validators.FormString(form, "engineSize"); v != nil {
		payload.EngineSize = *v
	}
	if v := validators.FormString(form, "bodyType"); v != nil {
		payload.BodyType = *v
	}
	if v := validators.FormString(form, "location"); v != nil {
		payload.Location = *v
	}
	payload.Description = validators.FormString(form, "description")
	if v, err := validators.FormStringList(form, "features"); err != nil {
		return createCarRequest{}, err
	} else if v != nil {
		payload.Features = *v
	}
	if v, err := validators.FormStringList(form, "images"); err != nil {
		return createCarRequest{}, err
	} else if v != nil {
		payload.Images = *v
	}
	if v, err := validators.FormBool(form, "isAvailable"); err != nil {
		return createCarRequest{}, err
	} else {
		payload.IsAvailable = v
	}
	if v, err := validators.FormBool(form, "isFeatured"); err != nil {
		return createCarRequest{}, err
	} else {
		payload.IsFeatured = v
	}

	if err := validators.ValidateStruct(&payload); err != nil {
		return createCarRequest{}, err
	}
	return payload, nil
}

func updateCarFromForm(r *http.Request) (updateCarRequest, error) {
	form := url.Values(r.MultipartForm.Value)

	var payload updateCarRequest
	payload.Title = validators.FormString(form, "title")
	payload.Make = validators.FormString(form, "make")
	payload.Model = validators.FormString(form, "model")

	var err error
	if payload.Year, err = validators.FormInt(form, "year"); err != nil {
		return updateCarRequest{}, err
	}
	if payload.Price, err = validators.FormInt(form, "price"); err != nil {
		return updateCarRequest{}, err
	}
	if payload.Mileage, err = validators.FormInt(form, "mileage"); err != nil {
		return updateCarRequest{}, err
	}
	payload.FuelType = validators.FormString(form, "fuelType")
	payload.Transmission = validators.FormString(form, "transmission")
	payload.EngineSize = validators.FormString(form, "engineSize")
	payload.BodyType = validators.FormString(form, "bodyType")
	payload.Location = validators.FormString(form, "location")
	payload.Description = validators.FormString(form, "description")
	if payload.Features, err = validators.FormStringList(form, "features"); err != nil {
		return updateCarRequest{}, err
	}
	if payload.Images, err = validators.FormStringList(form, "images"); err != nil {
		return updateCarRequest{}, err
	}
	if payload.IsAvailable, err = validators.FormBool(form, "isAvailable"); err != nil {
		return updateCarRequest{}, err
	}
	if payload.IsFeatured, err = validators.FormBool(form, "isFeatured"); err != nil {
		return updateCarRequest{}, err
	}

	if err := validators.ValidateStruct(&payload); err != nil {
		return updateCarRequest{}, err
	}
	return payload, nil
}
