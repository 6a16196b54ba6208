package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestHTTPClientComplete(t *testing.T) {
	t.Run("arma el request y devuelve el texto", func(t *testing.T) {
		var got chatRequest
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			auth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"OK"}}]}`))
		}))
		defer srv.Close()

		c := NewHTTPClient(srv.URL+"/", "secret", "gpt-test", zap.NewNop())
		text, err := c.Complete(context.Background(), CompletionRequest{
			SystemInstruction: "sistema",
			Messages: []Message{
				{Role: RoleUser, Text: "oi"},
				{Role: RoleModel, Text: "ola"},
				{Role: RoleUser, Text: "hello"},
			},
			Temperature: 0.7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "OK" {
			t.Fatalf("expected OK, got %q", text)
		}
		if auth != "Bearer secret" {
			t.Fatalf("expected bearer auth, got %q", auth)
		}
		if got.Model != "gpt-test" {
			t.Fatalf("expected default model, got %q", got.Model)
		}
		if got.Temperature == nil || *got.Temperature != 0.7 {
			t.Fatalf("expected temperature 0.7, got %v", got.Temperature)
		}
		roles := []string{"system", "user", "assistant", "user"}
		if len(got.Messages) != len(roles) {
			t.Fatalf("expected %d messages, got %d", len(roles), len(got.Messages))
		}
		for i, r := range roles {
			if got.Messages[i].Role != r {
				t.Fatalf("message %d: expected role %q, got %q", i, r, got.Messages[i].Role)
			}
		}
	})

	t.Run("status 500 es error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewHTTPClient(srv.URL, "k", "m", nil).Complete(context.Background(), CompletionRequest{})
		if err == nil || !strings.Contains(err.Error(), "status=500") {
			t.Fatalf("expected status error, got %v", err)
		}
	})

	t.Run("json invalido es error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[`))
		}))
		defer srv.Close()

		_, err := NewHTTPClient(srv.URL, "k", "m", nil).Complete(context.Background(), CompletionRequest{})
		if err == nil || !strings.Contains(err.Error(), "unmarshal response") {
			t.Fatalf("expected unmarshal error, got %v", err)
		}
	})

	t.Run("error de api", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		}))
		defer srv.Close()

		_, err := NewHTTPClient(srv.URL, "k", "m", nil).Complete(context.Background(), CompletionRequest{})
		if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
			t.Fatalf("expected api error, got %v", err)
		}
	})

	t.Run("texto vacio", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  "}}]}`))
		}))
		defer srv.Close()

		_, err := NewHTTPClient(srv.URL, "k", "m", nil).Complete(context.Background(), CompletionRequest{})
		if !errors.Is(err, ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("contexto vencido", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := NewHTTPClient(srv.URL, "k", "m", nil).Complete(ctx, CompletionRequest{})
		if err == nil {
			t.Fatalf("expected timeout error")
		}
	})
}
