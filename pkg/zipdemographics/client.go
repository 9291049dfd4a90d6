package zipdemographics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/apiverve/zipdemographics-go/pkg/httputil"
)

// DefaultBaseURL is the hosted ZIP Demographics endpoint.
const DefaultBaseURL = "https://api.apiverve.com/v1/zipdemographics"

// defaultTimeout matches the 30-second connect/read timeout of the other
// official APIVerve clients.
const defaultTimeout = 30 * time.Second

// apiKeyRE matches the accepted key alphabet: alphanumeric plus hyphens and
// underscores (prefixed keys use separators).
var apiKeyRE = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// keySeparators strips separators before the minimum-length check; keys are
// GUID-derived, 36 chars with hyphens or 32 without.
var keySeparators = strings.NewReplacer("-", "", "_", "")

// Response is the decoded API envelope for a lookup.
//
// Data holds the demographic payload verbatim; the client never interprets
// individual demographic fields. Raw preserves the entire response body as
// received, including the envelope.
type Response struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`

	Raw json.RawMessage `json:"-"`
}

// Payload returns the demographic payload: the envelope's data field when
// present, otherwise the whole response body.
func (r *Response) Payload() json.RawMessage {
	if len(r.Data) > 0 {
		return r.Data
	}
	return r.Raw
}

// Client calls the APIVerve ZIP Demographics API.
//
// The only state is the immutable API key, the base URL, and the shared
// http.Client, so a Client is safe for concurrent use by multiple goroutines.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client

	// timeoutOverride is only consulted when no custom http.Client is set.
	timeoutOverride time.Duration
}

// Option customizes a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Useful for tests and for
// callers that share a transport across clients.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithBaseURL overrides the endpoint URL. Useful for tests and proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
// It has no effect on a client supplied via [WithHTTPClient].
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeoutOverride = d
		}
	}
}

// New creates a Client for the given API key.
//
// It fails fast, before any network traffic, when the key is empty
// ([ErrMissingAPIKey]) or fails format checks ([ErrInvalidAPIKey]):
// keys are alphanumeric with optional hyphens/underscores and at least
// 32 characters long ignoring separators.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if !apiKeyRE.MatchString(apiKey) {
		return nil, fmt.Errorf("%w: key must be alphanumeric with optional hyphens or underscores", ErrInvalidAPIKey)
	}
	if len(keySeparators.Replace(apiKey)) < 32 {
		return nil, fmt.Errorf("%w: key is too short", ErrInvalidAPIKey)
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		timeout := defaultTimeout
		if c.timeoutOverride > 0 {
			timeout = c.timeoutOverride
		}
		c.http = httputil.NewHTTPClient(timeout)
	}
	return c, nil
}

// Lookup fetches demographic data for a US ZIP code.
//
// The ZIP is sent verbatim as a query parameter; format validation is left to
// the server. Exactly one outbound request is issued per call, with no
// caching or retry. Cancellation is honored through ctx.
//
// Errors are classified as [RequestError], [TransportError], or
// [DecodeError]; see the package documentation.
func (c *Client) Lookup(ctx context.Context, zip string) (*Response, error) {
	q := url.Values{}
	q.Set("zip", zip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: serverMessage(body)}
	}

	out := Response{Raw: body}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Err: err}
	}

	// The hosted API signals quota and auth failures inside a 2xx envelope.
	if out.Status != "" && out.Status != "ok" {
		msg := out.Error
		if msg == "" {
			msg = fmt.Sprintf("api reported status %q", out.Status)
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}
	return &out, nil
}

// LookupInto fetches demographic data for zip and decodes the payload into v.
// It issues the same single request as [Client.Lookup].
func (c *Client) LookupInto(ctx context.Context, zip string, v any) error {
	resp, err := c.Lookup(ctx, zip)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Payload(), v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// serverMessage extracts the error text from a non-2xx body. Error responses
// usually carry the JSON envelope; anything else is passed through as-is.
func serverMessage(body []byte) string {
	var env struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return env.Error
	}
	return strings.TrimSpace(string(body))
}
