package validators

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
)

// Multipart admin forms send every field as text. These helpers coerce the
// values and keep "key absent" distinguishable from "key set to empty",
// which the partial-update merge relies on.

// FormString returns the trimmed value, or nil when the key is absent.
func FormString(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := strings.TrimSpace(values.Get(key))
	return &v
}

// FormInt coerces a numeric form field. Absent means nil.
func FormInt(values url.Values, key string) (*int, error) {
	if !values.Has(key) {
		return nil, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(values.Get(key)))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "form field must be numeric").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// FormBool coerces a boolean form field. Absent means nil.
func FormBool(values url.Values, key string) (*bool, error) {
	if !values.Has(key) {
		return nil, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(values.Get(key)))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "form field must be a boolean").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// FormStringList reads a list field sent either as repeated keys or as a
// single JSON-encoded array. Absent means nil.
func FormStringList(values url.Values, key string) (*[]string, error) {
	if !values.Has(key) {
		return nil, nil
	}

	raw := values[key]
	if len(raw) == 1 && strings.HasPrefix(strings.TrimSpace(raw[0]), "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw[0]), &list); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "form field must be a JSON array of strings").
				WithDetails(map[string]any{"field": key})
		}
		return &list, nil
	}

	list := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}
	return &list, nil
}
