package openlibrary

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is the domain-level "resource absent" error. A
// *RequestError with a 404 status matches it via errors.Is.
var ErrNotFound = errors.New("not found")

// RequestError is returned when the API responds with a non-success
// HTTP status. Op names the attempted operation.
type RequestError struct {
	Op         string
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s", e.Op, e.Status)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err represents a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
