package client

import (
	"errors"
	"fmt"
)

// ErrInvalidURI is returned by [New] when the base URI is empty or ends with
// a trailing slash.
var ErrInvalidURI = errors.New("invalid URI")

// TransportError is returned when a request could not be sent or no response
// was received. HTTP error statuses are not transport errors; they are
// returned as a normal response for the caller to inspect.
type TransportError struct {
	// Method is the HTTP method of the failed request.
	Method string

	// URL is the requested URL.
	URL string

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
