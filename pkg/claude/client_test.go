package claude

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompleteReturnsFirstTextBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("missing anthropic-version header")
		}

		var req messageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-model" || req.MaxTokens != 500 {
			t.Errorf("request = %+v", req)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(messageResponse{Content: []contentBlock{
			{Type: "text", Text: "hello"},
		}})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "test-model", srv.URL)
	got, err := c.Complete(context.Background(), "hi", 500)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestCompleteSkipsNonTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(messageResponse{Content: []contentBlock{
			{Type: "thinking", Text: "..."},
			{Type: "text", Text: "answer"},
		}})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", "m", srv.URL)
	got, err := c.Complete(context.Background(), "hi", 100)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "answer" {
		t.Errorf("got %q", got)
	}
}

func TestCompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", "m", srv.URL)
	if _, err := c.Complete(context.Background(), "hi", 100); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestCompleteNoTextContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(messageResponse{})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", "m", srv.URL)
	if _, err := c.Complete(context.Background(), "hi", 100); err == nil {
		t.Fatal("expected error for empty content")
	}
}
