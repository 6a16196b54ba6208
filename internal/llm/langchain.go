package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// LangChainClient adapta cualquier llms.Model de langchaingo a Completer.
type LangChainClient struct {
	model        llms.Model
	defaultModel string
}

func NewLangChainClient(model llms.Model, defaultModel string) *LangChainClient {
	return &LangChainClient{model: model, defaultModel: defaultModel}
}

func (c *LangChainClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	history := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if strings.TrimSpace(req.SystemInstruction) != "" {
		history = append(history, llms.TextParts(llms.ChatMessageTypeSystem, req.SystemInstruction))
	}
	for _, m := range req.Messages {
		msgType := llms.ChatMessageTypeHuman
		if m.Role == RoleModel {
			msgType = llms.ChatMessageTypeAI
		}
		history = append(history, llms.TextParts(msgType, m.Text))
	}

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}
	if model != "" {
		opts = append(opts, llms.WithModel(model))
	}

	resp, err := c.model.GenerateContent(ctx, history, opts...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", ErrEmptyResponse
	}

	text := resp.Choices[0].Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
