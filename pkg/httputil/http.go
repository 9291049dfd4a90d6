// Package httputil provides the HTTP plumbing shared by API clients.
//
// It constructs http.Clients with sane timeouts and an instrumented transport
// that stamps each outgoing request with an X-Request-ID header and reports
// the request lifecycle to the hooks registered in [observability].
//
// The transport is strictly pass-through: no retries, no caching, no
// response rewriting. Every call made through it maps to exactly one
// outbound request.
package httputil

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/apiverve/zipdemographics-go/pkg/observability"
)

// RequestIDHeader is the header carrying the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// NewHTTPClient creates an HTTP client with the given timeout whose transport
// reports request lifecycle events to the registered observability hooks.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewTransport(nil),
	}
}

// Transport instruments an inner http.RoundTripper with request IDs and
// observability hooks. It is safe for concurrent use.
type Transport struct {
	inner http.RoundTripper
}

// NewTransport wraps inner with instrumentation.
// A nil inner defaults to http.DefaultTransport.
func NewTransport(inner http.RoundTripper) *Transport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &Transport{inner: inner}
}

// RoundTrip implements http.RoundTripper. Requests without an X-Request-ID
// header are stamped with a fresh UUID; caller-provided IDs are preserved.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) == "" {
		// RoundTrippers must not mutate the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	ctx := req.Context()
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)

	start := time.Now()
	resp, err := t.inner.RoundTrip(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}

	hooks.OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))
	return resp, nil
}
