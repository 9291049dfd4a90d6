package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/apiverve/zipdemographics-go/pkg/observability"
)

type recordingHooks struct {
	mu       sync.Mutex
	requests []string
	statuses []int
	errs     []error
}

func (r *recordingHooks) OnRequest(_ context.Context, method, host, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, method+" "+host+path)
}

func (r *recordingHooks) OnResponse(_ context.Context, _, _, _ string, statusCode int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, statusCode)
}

func (r *recordingHooks) OnError(_ context.Context, _, _, _ string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient(5 * time.Second)

	if client.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want %v", client.Timeout, 5*time.Second)
	}
	if _, ok := client.Transport.(*Transport); !ok {
		t.Errorf("Transport = %T, want *Transport", client.Transport)
	}
}

func TestTransportStampsRequestID(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
	}))
	defer server.Close()

	client := &http.Client{Transport: NewTransport(nil)}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	resp.Body.Close()

	if gotID == "" {
		t.Fatal("request should carry an X-Request-ID header")
	}
	if _, err := uuid.Parse(gotID); err != nil {
		t.Errorf("X-Request-ID %q is not a valid UUID: %v", gotID, err)
	}
}

func TestTransportPreservesCallerRequestID(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set(RequestIDHeader, "caller-id")

	client := &http.Client{Transport: NewTransport(nil)}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	resp.Body.Close()

	if gotID != "caller-id" {
		t.Errorf("X-Request-ID = %q, want %q", gotID, "caller-id")
	}
}

func TestTransportReportsResponse(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetHTTPHooks(rec)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	client := &http.Client{Transport: NewTransport(nil)}
	resp, err := client.Get(server.URL + "/v1/zipdemographics")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	resp.Body.Close()

	if len(rec.requests) != 1 {
		t.Fatalf("recorded %d requests, want 1", len(rec.requests))
	}
	if len(rec.statuses) != 1 || rec.statuses[0] != http.StatusTeapot {
		t.Errorf("recorded statuses = %v, want [%d]", rec.statuses, http.StatusTeapot)
	}
	if len(rec.errs) != 0 {
		t.Errorf("recorded errors = %v, want none", rec.errs)
	}
}

func TestTransportReportsError(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetHTTPHooks(rec)
	defer observability.Reset()

	// Point at a closed server so the dial fails.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := &http.Client{Transport: NewTransport(nil)}
	if _, err := client.Get(url); err == nil {
		t.Fatal("Get() should fail against a closed server")
	}

	if len(rec.errs) != 1 {
		t.Errorf("recorded %d errors, want 1", len(rec.errs))
	}
	if len(rec.statuses) != 0 {
		t.Errorf("recorded statuses = %v, want none", rec.statuses)
	}
}
