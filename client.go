package voiceforge

import (
	"context"
	"errors"

	"github.com/voiceforge/client-go/internal/api"
)

// Version is the SDK version, sent in the identifying client headers.
const Version = api.Version

// Client is the VoiceForge API client. Its configuration is immutable after
// construction and it holds no per-request state, so a single Client is safe
// for concurrent use.
type Client struct {
	apiClient *api.Client
}

// New creates a new VoiceForge client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &APIError{Kind: KindAuthentication, Message: ErrMissingAPIKey.Error()}
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		APIVersion: cfg.apiVersion,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// ValidateAPIKey probes the API with a minimal voice listing. It returns
// false with a nil error when the key is rejected as unauthorized; any other
// failure is propagated unchanged.
func (c *Client) ValidateAPIKey(ctx context.Context) (bool, error) {
	_, err := c.apiClient.ListVoices(ctx, api.ListVoicesParams{Limit: 1})
	if err != nil {
		if errors.Is(wrapError(err), ErrUnauthorized) {
			return false, nil
		}
		return false, wrapError(err)
	}
	return true, nil
}
