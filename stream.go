package voiceforge

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StreamSpeech synthesizes speech and returns the live audio stream. Bytes
// arrive incrementally while the server is still generating; the stream ends
// with io.EOF when the server finishes, or an error if the connection drops
// mid-transfer.
//
// The caller must Close the stream; closing releases the underlying
// connection and is the only way to abort a stream early.
func (c *Client) StreamSpeech(ctx context.Context, req SpeechRequest) (io.ReadCloser, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	stream, err := c.apiClient.StreamSpeech(ctx, req.params())
	if err != nil {
		return nil, wrapError(err)
	}
	return stream, nil
}

// StreamSpeechToFile synthesizes speech and pipes the audio stream to path,
// returning the path once every byte has been flushed to storage.
//
// The destination file is created (truncating any existing content) only
// after the server has accepted the request, so a rejected request leaves no
// file behind. Copying reads the stream no faster than the file sink accepts
// it. If the stream or the sink fails mid-transfer the partial file is left
// in place.
func (c *Client) StreamSpeechToFile(ctx context.Context, req SpeechRequest, path string) (string, error) {
	stream, err := c.StreamSpeech(ctx, req)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}

	if _, err := io.Copy(f, stream); err != nil {
		f.Close()
		return "", fmt.Errorf("write audio stream: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return "", fmt.Errorf("flush audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close audio file: %w", err)
	}

	return path, nil
}
