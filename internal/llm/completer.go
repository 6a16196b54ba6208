package llm

import (
	"context"
	"errors"
)

// Role es el rol de un mensaje del lado del proveedor.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message es una parte de la conversacion enviada al proveedor.
type Message struct {
	Role Role
	Text string
}

// CompletionRequest describe un turno completo hacia el servicio de completions.
type CompletionRequest struct {
	Model             string
	SystemInstruction string
	Messages          []Message
	Temperature       float64
}

// Completer define la interfaz para generar respuestas con un LLM.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var (
	// ErrEmptyResponse indica que el proveedor respondio sin texto.
	ErrEmptyResponse = errors.New("llm empty response")
	// ErrMissingCredential indica que no hay API key configurada.
	ErrMissingCredential = errors.New("llm api key not configured")
)
