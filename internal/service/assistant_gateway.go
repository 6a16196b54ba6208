package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecofolio/internal/domain"
	"ecofolio/internal/llm"
	"ecofolio/internal/portfolio"
)

const (
	// FallbackEmpty se usa cuando el modelo responde sin texto.
	FallbackEmpty = "Desculpe, não consegui processar sua pergunta no momento."
	// FallbackUnavailable se usa ante cualquier falla de la llamada remota.
	FallbackUnavailable = "Ocorreu um erro ao conectar com minha base de conhecimento. Por favor, tente novamente mais tarde."

	DefaultTemperature = 0.7
	DefaultTimeout     = 30 * time.Second
)

// GatewayOptions parametriza la llamada al servicio de completions. Los valores
// cero toman los defaults; un HistoryWindow negativo no reenvia historial.
// Temperature es puntero para que 0 sea un valor valido.
type GatewayOptions struct {
	Model         string
	Temperature   *float64
	HistoryWindow int
	Timeout       time.Duration
}

// Temperature devuelve un puntero a t, para armar GatewayOptions en una linea.
func Temperature(t float64) *float64 {
	return &t
}

// AssistantGateway es el unico punto de integracion con el LLM. Nunca devuelve
// error: toda falla termina en un texto de fallback.
type AssistantGateway struct {
	client  llm.Completer
	store   *portfolio.Store
	builder ContextBuilder
	opts    GatewayOptions
	logger  *zap.Logger
}

func NewAssistantGateway(client llm.Completer, store *portfolio.Store, opts GatewayOptions, logger *zap.Logger) *AssistantGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Temperature == nil {
		opts.Temperature = Temperature(DefaultTemperature)
	} else {
		opts.Temperature = Temperature(*opts.Temperature)
	}
	if opts.HistoryWindow == 0 {
		opts.HistoryWindow = DefaultHistoryWindow
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &AssistantGateway{
		client: client,
		store:  store,
		opts:   opts,
		logger: logger,
	}
}

// Reply devuelve el texto a mostrar para el mensaje nuevo.
func (g *AssistantGateway) Reply(ctx context.Context, history []domain.ChatMessage, message string) string {
	text, _ := g.respond(ctx, history, message)
	return text
}

// ReplyMessage igual que Reply pero devuelve el mensaje listo para anexar,
// con IsError marcado cuando se uso un fallback.
func (g *AssistantGateway) ReplyMessage(ctx context.Context, history []domain.ChatMessage, message string) domain.ChatMessage {
	text, failed := g.respond(ctx, history, message)
	return newChatMessage(domain.RoleAssistant, text, failed)
}

func (g *AssistantGateway) respond(ctx context.Context, history []domain.ChatMessage, message string) (text string, failed bool) {
	window := SelectWindow(history, message, g.opts.HistoryWindow)

	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("assistant gateway panic", zap.Any("panic", r), zap.Int("window", len(window)))
			text, failed = FallbackUnavailable, true
		}
	}()

	if g.client == nil {
		g.logger.Error("assistant gateway without completion client")
		return FallbackUnavailable, true
	}

	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	start := time.Now()
	reply, err := g.client.Complete(ctx, llm.CompletionRequest{
		Model:             g.opts.Model,
		SystemInstruction: g.builder.Build(g.store),
		Messages:          window,
		Temperature:       *g.opts.Temperature,
	})
	latency := time.Since(start)

	switch {
	case errors.Is(err, llm.ErrEmptyResponse):
		g.logger.Warn("assistant empty response", zap.Int("window", len(window)), zap.Duration("latency", latency))
		return FallbackEmpty, true
	case err != nil:
		g.logger.Error("assistant completion failed",
			zap.Error(err),
			zap.String("model", g.opts.Model),
			zap.Int("window", len(window)),
			zap.Duration("latency", latency),
		)
		return FallbackUnavailable, true
	case strings.TrimSpace(reply) == "":
		g.logger.Warn("assistant empty response", zap.Int("window", len(window)), zap.Duration("latency", latency))
		return FallbackEmpty, true
	}

	g.logger.Debug("assistant reply", zap.Int("window", len(window)), zap.Duration("latency", latency))
	return reply, false
}

// newChatMessage usa UUIDv7 para que los ids queden ordenados por creacion.
func newChatMessage(role domain.Role, text string, isError bool) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        newMessageID(),
		Role:      role,
		Text:      text,
		IsError:   isError,
		CreatedAt: time.Now().UTC(),
	}
}

func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
