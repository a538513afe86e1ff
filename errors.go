package voiceforge

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/voiceforge/client-go/internal/api"
)

// ErrorKind classifies an API error. See the Kind* constants.
type ErrorKind = api.Kind

// Error kinds carried by *APIError.
const (
	// KindGeneric covers any non-2xx status without a dedicated kind, and
	// network-level failures.
	KindGeneric = api.KindGeneric
	// KindAuthentication corresponds to HTTP 401.
	KindAuthentication = api.KindAuthentication
	// KindPaymentRequired corresponds to HTTP 402.
	KindPaymentRequired = api.KindPaymentRequired
	// KindNotFound corresponds to HTTP 404.
	KindNotFound = api.KindNotFound
	// KindValidation corresponds to HTTP 422 and local precondition failures.
	KindValidation = api.KindValidation
	// KindRateLimit corresponds to HTTP 429.
	KindRateLimit = api.KindRateLimit
	// KindTimeout indicates the request exceeded the configured timeout.
	KindTimeout = api.KindTimeout
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrPaymentRequired is returned when the account has run out of credits.
	ErrPaymentRequired = errors.New("payment required")

	// ErrVoiceNotFound is returned when the requested voice does not exist.
	ErrVoiceNotFound = errors.New("voice not found")

	// ErrValidation is returned for invalid request parameters, whether
	// rejected locally or by the server.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimeout is returned when a request exceeds the configured timeout.
	ErrTimeout = errors.New("request timed out")
)

// APIError represents a failed VoiceForge API call. The Kind tag identifies
// the failure class; StatusCode holds the literal HTTP status for responses
// and 0 for local or transport failures.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Detail     json.RawMessage // structured detail payload, if the server sent one
	Err        error           // underlying cause for transport failures
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("voiceforge: [%s] %d: %s", e.Kind, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("voiceforge: [%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("voiceforge: [%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindAuthentication:
		// A missing key is rejected locally (no status code) before any
		// request is attempted.
		if e.StatusCode == 0 && target == ErrMissingAPIKey {
			return true
		}
		return target == ErrUnauthorized
	case KindPaymentRequired:
		return target == ErrPaymentRequired
	case KindNotFound:
		return target == ErrVoiceNotFound
	case KindValidation:
		return target == ErrValidation
	case KindRateLimit:
		return target == ErrRateLimited
	case KindTimeout:
		return target == ErrTimeout
	}
	return false
}

// wrapError converts internal transport errors to public errors so that
// errors.Is() checks work with the package sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &APIError{
			Kind:       apiErr.Kind,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Detail:     apiErr.Detail,
			Err:        apiErr.Err,
		}
	}

	return err
}

// validationError builds a local precondition failure, raised before any
// network I/O.
func validationError(msg string) error {
	return &APIError{Kind: KindValidation, Message: msg}
}
