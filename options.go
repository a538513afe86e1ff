package voiceforge

import (
	"net/http"
	"time"

	"github.com/voiceforge/client-go/internal/api"
)

const (
	defaultBaseURL = api.DefaultBaseURL
	defaultTimeout = api.DefaultTimeout
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	apiVersion string
	timeout    time.Duration
	httpClient *http.Client
}

// listConfig holds configuration for voice listing.
type listConfig struct {
	limit      int
	offset     int
	visibility Visibility
}

// Option configures the client.
type Option func(*clientConfig)

// ListOption configures voice listing.
type ListOption func(*listConfig)

// WithBaseURL sets the API base URL. The URL must use the https scheme;
// anything else is rejected on the first request.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithAPIVersion sets the API version path segment. Default: "v1".
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) {
		c.apiVersion = version
	}
}

// WithTimeout sets the per-request timeout for buffered calls.
// Default: 60 seconds. Streaming calls are bounded only until the response
// headers arrive.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLimit caps the number of voices returned.
func WithLimit(limit int) ListOption {
	return func(c *listConfig) {
		c.limit = limit
	}
}

// WithOffset skips the first offset voices for pagination.
func WithOffset(offset int) ListOption {
	return func(c *listConfig) {
		c.offset = offset
	}
}

// WithVisibility filters the listing by voice visibility.
func WithVisibility(v Visibility) ListOption {
	return func(c *listConfig) {
		c.visibility = v
	}
}
