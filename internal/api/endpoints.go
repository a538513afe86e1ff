package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
)

// ListVoices lists voices, paginated via limit/offset and optionally
// filtered by visibility.
func (c *Client) ListVoices(ctx context.Context, params ListVoicesParams) ([]Voice, error) {
	q := url.Values{}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	q.Set("visibility", string(params.Visibility))

	var result listVoicesResponse
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/voices",
		Query:  q,
	}, &result)
	if err != nil {
		return nil, err
	}
	return result.Voices, nil
}

// GetVoice retrieves a voice by ID.
func (c *Client) GetVoice(ctx context.Context, voiceID string) (*Voice, error) {
	var result Voice
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/voices/" + url.PathEscape(voiceID),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateVoice patches a voice's name and/or visibility. Fields left nil in
// params are not sent.
func (c *Client) UpdateVoice(ctx context.Context, voiceID string, params UpdateVoiceParams) (*Voice, error) {
	var result Voice
	err := c.Do(ctx, Request{
		Method: http.MethodPatch,
		Path:   "/voices/" + url.PathEscape(voiceID),
		Body:   params,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteVoice deletes a voice by ID.
func (c *Client) DeleteVoice(ctx context.Context, voiceID string) error {
	return c.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   "/voices/" + url.PathEscape(voiceID),
	}, nil)
}

// GenerateSpeech synthesizes speech and returns the complete audio bytes.
func (c *Client) GenerateSpeech(ctx context.Context, params SpeechParams) ([]byte, error) {
	payload, err := c.DoRaw(ctx, speechRequest(params, ""))
	if err != nil {
		return nil, err
	}
	return payload.Bytes, nil
}

// StreamSpeech synthesizes speech and returns the live audio stream.
func (c *Client) StreamSpeech(ctx context.Context, params SpeechParams) (io.ReadCloser, error) {
	return c.Stream(ctx, speechRequest(params, "/stream"))
}

func speechRequest(params SpeechParams, suffix string) Request {
	q := url.Values{}
	q.Set("output_format", params.OutputFormat)

	return Request{
		Method: http.MethodPost,
		Path:   "/text-to-speech/" + url.PathEscape(params.VoiceID) + suffix,
		Query:  q,
		Body: speechRequestBody{
			Text:     params.Text,
			ModelID:  params.ModelID,
			Language: params.Language,
			Settings: params.Settings,
		},
		Binary: true,
	}
}

// CloneVoice uploads audio samples to create a new voice. The body is a
// multipart form sent verbatim through the transport's raw-body path.
func (c *Client) CloneVoice(ctx context.Context, params CloneVoiceParams) (*Voice, error) {
	if params.Name == "" {
		return nil, &Error{Kind: KindValidation, Message: "voice name is required"}
	}
	if len(params.Files) == 0 {
		return nil, &Error{Kind: KindValidation, Message: "at least one audio sample is required"}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("name", params.Name); err != nil {
		return nil, &Error{Kind: KindGeneric, Message: "encode form", Err: err}
	}
	if params.Description != "" {
		if err := w.WriteField("description", params.Description); err != nil {
			return nil, &Error{Kind: KindGeneric, Message: "encode form", Err: err}
		}
	}
	for k, v := range params.Labels {
		if err := w.WriteField("labels["+k+"]", v); err != nil {
			return nil, &Error{Kind: KindGeneric, Message: "encode form", Err: err}
		}
	}
	for i, f := range params.Files {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, f.Name))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		hdr.Set("Content-Type", ct)

		part, err := w.CreatePart(hdr)
		if err != nil {
			return nil, &Error{Kind: KindGeneric, Message: fmt.Sprintf("encode sample %d", i), Err: err}
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, &Error{Kind: KindGeneric, Message: fmt.Sprintf("encode sample %d", i), Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &Error{Kind: KindGeneric, Message: "finalize form", Err: err}
	}

	var result Voice
	err := c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        "/voices/clone",
		Raw:         buf.Bytes(),
		ContentType: w.FormDataContentType(),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
