package voiceforge

import (
	"context"

	"github.com/voiceforge/client-go/internal/api"
)

// Voice represents a voice available to the account.
type Voice = api.Voice

// VoiceSettings tune how a voice renders speech.
type VoiceSettings = api.VoiceSettings

// Visibility controls who can see a voice.
type Visibility = api.Visibility

// Visibility values.
const (
	// VisibilityPublic makes a voice discoverable by all accounts.
	VisibilityPublic = api.VisibilityPublic
	// VisibilityPrivate restricts a voice to the owning account.
	VisibilityPrivate = api.VisibilityPrivate
	// VisibilityUnlisted hides a voice from listings but keeps it usable by ID.
	VisibilityUnlisted = api.VisibilityUnlisted
)

// UpdateVoiceParams carries the mutable voice fields. Nil fields are left
// untouched on the server.
type UpdateVoiceParams = api.UpdateVoiceParams

// ListVoices lists the voices available to the account, paginated and
// filtered via options.
func (c *Client) ListVoices(ctx context.Context, opts ...ListOption) ([]Voice, error) {
	cfg := &listConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	voices, err := c.apiClient.ListVoices(ctx, api.ListVoicesParams{
		Limit:      cfg.limit,
		Offset:     cfg.offset,
		Visibility: cfg.visibility,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return voices, nil
}

// FirstVoices returns the first n voices. Convenience over ListVoices.
func (c *Client) FirstVoices(ctx context.Context, n int) ([]Voice, error) {
	if n <= 0 {
		return nil, validationError("voice count must be positive")
	}
	return c.ListVoices(ctx, WithLimit(n))
}

// GetVoice retrieves a voice by ID.
func (c *Client) GetVoice(ctx context.Context, voiceID string) (*Voice, error) {
	if voiceID == "" {
		return nil, validationError("voice ID is required")
	}
	voice, err := c.apiClient.GetVoice(ctx, voiceID)
	if err != nil {
		return nil, wrapError(err)
	}
	return voice, nil
}

// UpdateVoice patches a voice's name and/or visibility and returns the
// updated voice.
func (c *Client) UpdateVoice(ctx context.Context, voiceID string, params UpdateVoiceParams) (*Voice, error) {
	if voiceID == "" {
		return nil, validationError("voice ID is required")
	}
	voice, err := c.apiClient.UpdateVoice(ctx, voiceID, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return voice, nil
}

// DeleteVoice deletes a voice by ID.
func (c *Client) DeleteVoice(ctx context.Context, voiceID string) error {
	if voiceID == "" {
		return validationError("voice ID is required")
	}
	return wrapError(c.apiClient.DeleteVoice(ctx, voiceID))
}
