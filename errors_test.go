package voiceforge

import (
	"errors"
	"testing"

	"github.com/voiceforge/client-go/internal/api"
)

func TestAPIError_SentinelMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		sentinel error
	}{
		{"authentication", &APIError{Kind: KindAuthentication, StatusCode: 401}, ErrUnauthorized},
		{"payment required", &APIError{Kind: KindPaymentRequired, StatusCode: 402}, ErrPaymentRequired},
		{"not found", &APIError{Kind: KindNotFound, StatusCode: 404}, ErrVoiceNotFound},
		{"validation", &APIError{Kind: KindValidation, StatusCode: 422}, ErrValidation},
		{"rate limit", &APIError{Kind: KindRateLimit, StatusCode: 429}, ErrRateLimited},
		{"timeout", &APIError{Kind: KindTimeout}, ErrTimeout},
		{"missing key", &APIError{Kind: KindAuthentication}, ErrMissingAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestAPIError_GenericMatchesNoSentinel(t *testing.T) {
	err := &APIError{Kind: KindGeneric, StatusCode: 500}

	for _, sentinel := range []error{
		ErrUnauthorized, ErrPaymentRequired, ErrVoiceNotFound,
		ErrValidation, ErrRateLimited, ErrTimeout, ErrMissingAPIKey,
	} {
		if errors.Is(err, sentinel) {
			t.Errorf("generic error should not match %v", sentinel)
		}
	}
}

func TestAPIError_ServerAuthDoesNotMatchMissingKey(t *testing.T) {
	err := &APIError{Kind: KindAuthentication, StatusCode: 401}
	if errors.Is(err, ErrMissingAPIKey) {
		t.Error("server 401 should not match ErrMissingAPIKey")
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Kind: KindNotFound, StatusCode: 404, Message: "no such voice"}
	want := "voiceforge: [not_found] 404: no such voice"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("dial tcp: connection refused")
	err = &APIError{Kind: KindGeneric, Message: "request failed", Err: cause}
	want = "voiceforge: [generic] request failed: dial tcp: connection refused"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap() does not expose the cause")
	}
}

func TestWrapError(t *testing.T) {
	if wrapError(nil) != nil {
		t.Error("wrapError(nil) should be nil")
	}

	inner := &api.Error{
		Kind:       api.KindValidation,
		StatusCode: 422,
		Message:    "invalid",
		Detail:     []byte(`{"field":"text"}`),
	}
	wrapped := wrapError(inner)

	var apiErr *APIError
	if !errors.As(wrapped, &apiErr) {
		t.Fatalf("wrapError() = %T, want *APIError", wrapped)
	}
	if apiErr.Kind != KindValidation || apiErr.StatusCode != 422 {
		t.Errorf("wrapped = %+v", apiErr)
	}
	if string(apiErr.Detail) != `{"field":"text"}` {
		t.Errorf("Detail = %s", apiErr.Detail)
	}
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("wrapped error should match ErrValidation")
	}

	plain := errors.New("something else")
	if wrapError(plain) != plain {
		t.Error("non-API errors should pass through unchanged")
	}
}
