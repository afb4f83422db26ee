package catalog

import "errors"

var ErrNotFound = errors.New("record not found")

// ValidationError carries the per-field failures so the handler can
// return them to the admin form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
