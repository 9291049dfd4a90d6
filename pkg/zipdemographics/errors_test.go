package zipdemographics

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *RequestError
		want string
	}{
		{
			name: "with server message",
			err:  &RequestError{StatusCode: 404, Message: "zip not found"},
			want: "request failed: status 404: zip not found",
		},
		{
			name: "without server message",
			err:  &RequestError{StatusCode: 500},
			want: "request failed: status 500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &TransportError{Err: inner}

	if !errors.Is(err, inner) {
		t.Error("TransportError should unwrap to the inner error")
	}
	if got := err.Error(); got != "transport error: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: inner}

	if !errors.Is(err, inner) {
		t.Error("DecodeError should unwrap to the inner error")
	}
	if got := err.Error(); got != "decode error: unexpected end of JSON input" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: key is too short", ErrInvalidAPIKey)
	if !errors.Is(wrapped, ErrInvalidAPIKey) {
		t.Error("wrapped error should match ErrInvalidAPIKey")
	}
	if errors.Is(wrapped, ErrMissingAPIKey) {
		t.Error("wrapped error should not match ErrMissingAPIKey")
	}
}
