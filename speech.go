package voiceforge

import (
	"context"
	"fmt"
	"os"

	"github.com/voiceforge/client-go/internal/api"
)

// SpeechRequest describes one synthesis request.
type SpeechRequest struct {
	// Text is the text to synthesize. Required.
	Text string
	// VoiceID selects the voice. Required.
	VoiceID string
	// ModelID selects the synthesis model. Optional; the server picks its
	// default when empty.
	ModelID string
	// OutputFormat selects the audio encoding, e.g. "mp3_44100_128".
	// Optional.
	OutputFormat string
	// Language hints the language for multilingual models. Optional.
	Language string
	// Settings override the voice's stored settings. Optional.
	Settings *VoiceSettings
}

func (r SpeechRequest) validate() error {
	if r.Text == "" {
		return validationError("text is required")
	}
	if r.VoiceID == "" {
		return validationError("voice ID is required")
	}
	return nil
}

func (r SpeechRequest) params() api.SpeechParams {
	return api.SpeechParams{
		Text:         r.Text,
		VoiceID:      r.VoiceID,
		ModelID:      r.ModelID,
		OutputFormat: r.OutputFormat,
		Language:     r.Language,
		Settings:     r.Settings,
	}
}

// GenerateSpeech synthesizes speech and returns the complete audio bytes.
// The whole response is buffered in memory; use StreamSpeech for long-form
// synthesis.
func (c *Client) GenerateSpeech(ctx context.Context, req SpeechRequest) ([]byte, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	audio, err := c.apiClient.GenerateSpeech(ctx, req.params())
	if err != nil {
		return nil, wrapError(err)
	}
	return audio, nil
}

// GenerateSpeechToFile synthesizes speech and writes the audio to path,
// returning the path on success.
func (c *Client) GenerateSpeechToFile(ctx context.Context, req SpeechRequest, path string) (string, error) {
	audio, err := c.GenerateSpeech(ctx, req)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return path, nil
}
