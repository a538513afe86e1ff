package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Version is the client library version, sent in the identifying headers.
const Version = "1.2.0"

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.voiceforge.ai"
	// DefaultAPIVersion is the version segment interpolated into request paths.
	DefaultAPIVersion = "v1"
	// DefaultTimeout is the per-request timeout for buffered calls.
	DefaultTimeout = 60 * time.Second

	clientName = "voiceforge-go"
)

// Config configures the API client.
type Config struct {
	// BaseURL is the API endpoint. Must use the https scheme; the check
	// happens on the first request, not at construction.
	BaseURL string
	// APIKey is the bearer credential attached to every request. Required.
	APIKey string
	// APIVersion overrides the version path segment. Defaults to "v1".
	APIVersion string
	// Timeout bounds each buffered request. Defaults to DefaultTimeout.
	Timeout time.Duration
	// HTTPClient replaces the default HTTP client. Streaming requests
	// reuse its transport but never its overall timeout.
	HTTPClient *http.Client
}

// Client is the HTTP transport for the VoiceForge API. It is stateless
// between calls and safe for concurrent use.
type Client struct {
	baseURL      string
	apiKey       string
	version      string
	timeout      time.Duration
	httpClient   *http.Client
	streamClient *http.Client
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &Error{Kind: KindAuthentication, Message: "API key is required"}
	}
	if cfg.BaseURL == "" {
		return nil, &Error{Kind: KindValidation, Message: "base URL is required"}
	}

	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		version: cfg.APIVersion,
		timeout: cfg.Timeout,
	}
	if c.version == "" {
		c.version = DefaultAPIVersion
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}

	if cfg.HTTPClient != nil {
		c.httpClient = cfg.HTTPClient
		// Long-running streams must not be cut off by the buffered-call
		// timeout; only the response headers are bounded.
		c.streamClient = &http.Client{
			Transport: cfg.HTTPClient.Transport,
		}
	} else {
		c.httpClient = &http.Client{Timeout: c.timeout}
		c.streamClient = &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: c.timeout,
			},
		}
	}

	return c, nil
}

// Request describes a single API call.
type Request struct {
	Method string
	// Path is relative to the version prefix and starts with "/",
	// e.g. "/voices".
	Path string
	// Query parameters. Keys with empty values are omitted entirely.
	Query url.Values
	// Body is JSON-encoded when non-nil. Mutually exclusive with Raw.
	Body any
	// Raw is sent verbatim with ContentType, e.g. a multipart form.
	Raw         []byte
	ContentType string
	// Binary forces the response to be treated as raw bytes regardless
	// of its content type.
	Binary bool
	// Header holds extra request headers.
	Header http.Header
}

// Payload is a classified successful response.
type Payload struct {
	StatusCode  int
	ContentType string
	// Binary reports whether the payload is raw bytes (audio or an
	// explicitly requested binary response).
	Binary bool
	// Bytes always holds the verbatim response body.
	Bytes []byte
	// Value is the decoded JSON document for non-binary payloads that
	// parsed successfully.
	Value any
	// Text is the raw body text for non-binary payloads that did not
	// parse as JSON.
	Text string
}

// newRequest builds the outgoing HTTP request: joined URL, query string,
// auth and identifying headers, and the encoded body.
func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("invalid base URL %q", c.baseURL)}
	}
	if u.Scheme != "https" {
		return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("base URL must use https, got %q", c.baseURL)}
	}

	full := c.baseURL + "/api/" + c.version + req.Path
	if q := encodeQuery(req.Query); q != "" {
		full += "?" + q
	}

	var bodyReader io.Reader
	contentType := ""
	switch {
	case req.Raw != nil:
		bodyReader = bytes.NewReader(req.Raw)
		contentType = req.ContentType
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: "encode request body", Err: err}
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, full, bodyReader)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: "build request", Err: err}
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("User-Agent", clientName+"/"+Version)
	httpReq.Header.Set("X-Client-Name", clientName)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	return httpReq, nil
}

// encodeQuery serializes query parameters, dropping keys whose value is
// empty so optional parameters are omitted rather than sent as "key=".
func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	filtered := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			if v != "" {
				filtered.Add(k, v)
			}
		}
	}
	return filtered.Encode()
}

// DoRaw performs one buffered request/response cycle and classifies the
// result. Non-2xx responses and transport failures yield a typed *Error;
// there are no retries.
func (c *Client) DoRaw(ctx context.Context, req Request) (*Payload, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	return classify(resp, req.Binary, body), nil
}

// Do performs a buffered request and decodes the JSON response into out.
// Pass nil for endpoints whose response body is irrelevant.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	payload, err := c.DoRaw(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload.Bytes, out); err != nil {
		return &Error{Kind: KindGeneric, Message: "decode response", Err: err}
	}
	return nil
}

// classify decides whether a 2xx response is binary or structured. Audio
// content types and the explicit binary flag short-circuit JSON parsing;
// otherwise a failed parse falls back to the raw text.
func classify(resp *http.Response, binary bool, body []byte) *Payload {
	ct := resp.Header.Get("Content-Type")
	p := &Payload{
		StatusCode:  resp.StatusCode,
		ContentType: ct,
		Bytes:       body,
	}

	if binary || strings.HasPrefix(ct, "audio/") {
		p.Binary = true
		return p
	}

	var value any
	if err := json.Unmarshal(body, &value); err == nil {
		p.Value = value
	} else {
		p.Text = string(body)
	}
	return p
}

// transportError converts a network-level failure into a typed error,
// distinguishing timeouts from other transport problems.
func transportError(err error) *Error {
	if isTimeout(err) {
		return &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
	}
	return &Error{Kind: KindGeneric, Message: "request failed", Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
