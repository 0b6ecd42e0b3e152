package listclient

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for controls the client's revision does not have.
var ErrUnsupported = errors.New("not supported by this api revision")

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

type notFoundError struct {
	ref string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("item not found: %s", e.ref)
}
