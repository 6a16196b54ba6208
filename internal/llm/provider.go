package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderHTTP   = "http"
)

// ProviderConfig agrupa lo necesario para construir un Completer.
type ProviderConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// NewCompleter elige el adaptador segun el proveedor configurado. Sin API key
// devuelve un cliente deshabilitado en vez de fallar.
func NewCompleter(ctx context.Context, cfg ProviderConfig, logger *zap.Logger) (Completer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Warn("llm api key not configured, assistant will answer with fallback", zap.String("provider", cfg.Provider))
		return NewDisabledClient(ErrMissingCredential), nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderGemini:
		model, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("init gemini: %w", err)
		}
		return NewLangChainClient(model, cfg.Model), nil
	case ProviderOpenAI:
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		model, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("init openai: %w", err)
		}
		return NewLangChainClient(model, cfg.Model), nil
	case ProviderHTTP:
		return NewHTTPClient(cfg.BaseURL, cfg.APIKey, cfg.Model, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
