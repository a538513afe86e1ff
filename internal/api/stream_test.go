package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStream_DeliversChunksInOrder(t *testing.T) {
	chunks := [][]byte{
		[]byte("chunk-one-"),
		[]byte("chunk-two-"),
		[]byte("chunk-three"),
	}

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		flusher := w.(http.Flusher)
		for _, chunk := range chunks {
			w.Write(chunk)
			flusher.Flush()
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)

	stream, err := client.Stream(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/text-to-speech/v123/stream",
		Body:   map[string]string{"text": "hello"},
	})
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	defer stream.Close()

	got, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := bytes.Join(chunks, nil)
	if !bytes.Equal(got, want) {
		t.Errorf("stream bytes = %q, want %q", got, want)
	}
}

func TestStream_ErrorBodyIsBuffered(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"synthesis backend unavailable"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	stream, err := client.Stream(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/text-to-speech/v123/stream",
		Body:   map[string]string{"text": "hello"},
	})
	if stream != nil {
		t.Error("stream should be nil on error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.Kind != KindGeneric {
		t.Errorf("Kind = %v, want KindGeneric", apiErr.Kind)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Message != "synthesis backend unavailable" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestStream_ErrorDefaultMessage(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.Stream(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/text-to-speech/v123/stream",
		Body:   map[string]string{"text": "hello"},
	})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.Message != "Request failed" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Request failed")
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want 502", apiErr.StatusCode)
	}
}

func TestStream_RejectsInsecureScheme(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL: "http://api.voiceforge.ai",
		APIKey:  "test-key",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Stream(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/text-to-speech/v123/stream",
	})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.Kind != KindValidation {
		t.Errorf("Kind = %v, want KindValidation", apiErr.Kind)
	}
}
