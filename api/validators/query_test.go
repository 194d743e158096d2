package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
)

func TestOptionalQueryString(t *testing.T) {
	r := httptest.NewRequest("GET", "/cars?make=%20BMW%20&bodyType=", nil)

	if got := OptionalQueryString(r, "make"); got == nil || *got != "BMW" {
		t.Fatalf("expected trimmed BMW, got %v", got)
	}
	if got := OptionalQueryString(r, "bodyType"); got != nil {
		t.Fatalf("empty value must read as absent, got %q", *got)
	}
	if got := OptionalQueryString(r, "missing"); got != nil {
		t.Fatalf("absent key must return nil, got %q", *got)
	}
}

func TestOptionalQueryInt(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/cars?maxPrice=200000", nil)
		got, err := OptionalQueryInt(r, "maxPrice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || *got != 200000 {
			t.Fatalf("expected 200000, got %v", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/cars", nil)
		got, err := OptionalQueryInt(r, "maxPrice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil for an absent key, got %d", *got)
		}
	})

	t.Run("zeroIsSupplied", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/cars?minPrice=0", nil)
		got, err := OptionalQueryInt(r, "minPrice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || *got != 0 {
			t.Fatalf("expected 0 as a supplied bound, got %v", got)
		}
	})

	t.Run("nonNumeric", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/cars?minPrice=abc", nil)
		_, err := OptionalQueryInt(r, "minPrice")
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("negative", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/cars?minYear=-1", nil)
		_, err := OptionalQueryInt(r, "minYear")
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
