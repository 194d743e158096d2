package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
)

// OptionalQueryString returns the trimmed query value, or nil when absent.
func OptionalQueryString(r *http.Request, key string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}

// OptionalQueryInt parses an optional numeric query parameter. Absent means
// nil; a non-numeric or negative value is a validation failure.
func OptionalQueryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").
			WithDetails(map[string]any{"field": key})
	}
	if value < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must not be negative").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}
