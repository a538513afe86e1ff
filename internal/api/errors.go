package api

import (
	"encoding/json"
	"fmt"
)

// Kind classifies an API error. Exactly one kind applies to every failed
// request, whether the failure came from an HTTP status code or from the
// transport itself.
type Kind int

const (
	// KindGeneric covers any non-2xx status without a dedicated kind, and
	// network-level failures (connection refused, DNS, TLS).
	KindGeneric Kind = iota
	// KindAuthentication corresponds to HTTP 401.
	KindAuthentication
	// KindPaymentRequired corresponds to HTTP 402.
	KindPaymentRequired
	// KindNotFound corresponds to HTTP 404.
	KindNotFound
	// KindValidation corresponds to HTTP 422 and to local precondition
	// failures detected before any network I/O.
	KindValidation
	// KindRateLimit corresponds to HTTP 429.
	KindRateLimit
	// KindTimeout indicates the request exceeded the configured timeout.
	KindTimeout
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindPaymentRequired:
		return "payment_required"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindTimeout:
		return "timeout"
	default:
		return "generic"
	}
}

// Error represents a failed VoiceForge API call. A single struct with a Kind
// tag replaces a per-status error hierarchy so callers can switch
// exhaustively instead of type-asserting.
type Error struct {
	Kind       Kind
	StatusCode int // HTTP status, 0 for local/transport failures
	Message    string
	Detail     json.RawMessage // server-supplied detail payload (422 and generic errors)
	Err        error           // underlying cause for transport failures
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("API error %d", e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// kindForStatus maps an HTTP status code to an error kind.
func kindForStatus(status int) Kind {
	switch status {
	case 401:
		return KindAuthentication
	case 402:
		return KindPaymentRequired
	case 404:
		return KindNotFound
	case 422:
		return KindValidation
	case 429:
		return KindRateLimit
	default:
		return KindGeneric
	}
}

// errorBody is the JSON shape the API uses for error responses.
type errorBody struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Detail  json.RawMessage `json:"detail"`
}

// parseErrorResponse builds a typed error from a non-2xx response body.
// The body is parsed as JSON to extract a message and detail; if parsing
// fails the raw text is used as the message, and an empty body falls back
// to a generic placeholder.
func parseErrorResponse(status int, body []byte) *Error {
	e := &Error{
		Kind:       kindForStatus(status),
		StatusCode: status,
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		e.Detail = parsed.Detail
		switch {
		case parsed.Message != "":
			e.Message = parsed.Message
		case parsed.Error != "":
			e.Message = parsed.Error
		}
	}

	if e.Message == "" {
		if len(body) > 0 {
			e.Message = string(body)
		} else {
			e.Message = "Unknown error"
		}
	}

	return e
}
