package api

import (
	"context"
	"encoding/json"
	"io"
)

// Stream issues a request and returns the still-open response body so the
// caller can consume audio as it is generated. Only the status line is
// inspected before handing over the stream.
//
// Error responses do not stream: the full body is buffered and parsed for a
// message, and the call fails with a generic error carrying the status code.
// Error bodies are small JSON documents, so buffering them is cheap even
// though success bodies may be arbitrarily large.
//
// The caller owns the returned stream and must Close it; closing releases
// the underlying connection.
func (c *Client) Stream(ctx context.Context, req Request) (io.ReadCloser, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.streamClient.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		msg := "Request failed"
		var parsed errorBody
		if err := json.Unmarshal(body, &parsed); err == nil {
			switch {
			case parsed.Message != "":
				msg = parsed.Message
			case parsed.Error != "":
				msg = parsed.Error
			}
		}
		return nil, &Error{
			Kind:       KindGeneric,
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	return resp.Body, nil
}
