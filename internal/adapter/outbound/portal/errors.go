package portal

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnauthorized is returned when the backend rejects the bearer token
	// or the supplied credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnreachable is returned when the backend cannot be contacted
	// (DNS failure, connection refused, timeout).
	ErrUnreachable = errors.New("backend unreachable")
)

// RequestError is returned when the backend responds with a non-2xx status.
// Detail carries the server-supplied error message when the response body
// contained one, else a generic fallback.
type RequestError struct {
	// Status is the HTTP status code of the failed response.
	Status int
	// Detail is the human-readable reason, taken from the server's
	// structured error detail when present.
	Detail string
}

// Error returns a human-readable description of the request failure.
func (e *RequestError) Error() string {
	return fmt.Sprintf("portal request failed (%d): %s", e.Status, e.Detail)
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrUnauthorized) for 401 responses.
func (e *RequestError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == 401
}

// TransportError is returned when the HTTP exchange itself cannot complete.
type TransportError struct {
	// Cause is the underlying transport error.
	Cause error
}

// Error returns a human-readable description of the transport failure.
func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backend unreachable: %v", e.Cause)
	}
	return "backend unreachable"
}

// Unwrap returns the underlying error cause.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrUnreachable).
func (e *TransportError) Is(target error) bool {
	return target == ErrUnreachable
}
