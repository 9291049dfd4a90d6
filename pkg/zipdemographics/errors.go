package zipdemographics

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [New] before any request is made.
var (
	// ErrMissingAPIKey is returned when the API key is empty or blank.
	ErrMissingAPIKey = errors.New("missing API key (get one at https://apiverve.com)")

	// ErrInvalidAPIKey is returned when the API key fails format checks.
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// RequestError reports a request the server rejected. StatusCode holds the
// HTTP status of the response; Message carries the server-provided error
// text when one was present.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed: status %d: %s", e.StatusCode, e.Message)
}

// TransportError reports a network-level failure: the request never produced
// an HTTP response (DNS error, connection refused, timeout, cancellation).
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return "transport error: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a success response whose body could not be parsed.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string { return "decode error: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }
