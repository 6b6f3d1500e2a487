// Package apperror holds the error kinds shared by services and adapters.
package apperror

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when an id, slug or username does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller may not perform a mutation.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries per-field messages for user-correctable input.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
