package llm

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestNewCompleter(t *testing.T) {
	t.Run("sin api key usa cliente deshabilitado", func(t *testing.T) {
		c, err := NewCompleter(context.Background(), ProviderConfig{Provider: ProviderGemini}, zap.NewNop())
		if err != nil {
			t.Fatalf("missing key must not fail construction: %v", err)
		}
		if _, err := c.Complete(context.Background(), CompletionRequest{}); !errors.Is(err, ErrMissingCredential) {
			t.Fatalf("expected ErrMissingCredential, got %v", err)
		}
	})

	t.Run("proveedor http", func(t *testing.T) {
		c, err := NewCompleter(context.Background(), ProviderConfig{Provider: "HTTP", APIKey: "k", BaseURL: "http://localhost:1"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.(*HTTPClient); !ok {
			t.Fatalf("expected *HTTPClient, got %T", c)
		}
	})

	t.Run("proveedor desconocido", func(t *testing.T) {
		if _, err := NewCompleter(context.Background(), ProviderConfig{Provider: "bard", APIKey: "k"}, nil); err == nil {
			t.Fatalf("expected error for unknown provider")
		}
	})
}

func TestDisabledClientDefaultsError(t *testing.T) {
	c := NewDisabledClient(nil)
	if _, err := c.Complete(context.Background(), CompletionRequest{}); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}
