package geolib

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrProviderIsRequired = errors.New("provider is required")
	ErrContextIsClosed    = errors.New("context is closed")
)

// APIError is returned by a provider when a geolocation service has
// replied with a well-formed response which carries a logical failure:
// a reserved range, an exceeded quota etc. Reason goes into a node
// display name as is.
type APIError struct {
	Reason string
}

func (e *APIError) Error() string {
	return "api error: " + e.Reason
}

// StatusError is returned by a provider when a geolocation service has
// replied with a non-2xx status code. A body of such response is not
// parsed.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("service has responded with %s", e.Status)
}

// TransportError is returned by HTTPClient when a request has not
// produced any HTTP response at all: a DNS failure, a connection
// reset, a timeout.
type TransportError struct {
	Err      error
	TimedOut bool
}

func (e *TransportError) Error() string {
	if e.TimedOut {
		return "transport error (timeout): " + e.Err.Error()
	}

	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps an error coming from http.Client.Do. Timeout
// detection is based on error types, not on message texts: a deadline
// of a request context and anything which reports net.Error with
// Timeout() count, a DNS miss or a refused connection do not.
func NewTransportError(err error) *TransportError {
	return &TransportError{
		Err:      err,
		TimedOut: isTimeout(err),
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}
