package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"ecofolio/internal/domain"
)

var ErrEmptyMessage = errors.New("chat message is empty")

// Conversation es el log de mensajes de una sesion. Solo se agrega al final.
type Conversation struct {
	mu       sync.Mutex
	messages []domain.ChatMessage
}

// NewConversation crea una conversacion; si greeting no es vacio se agrega
// como primer mensaje del asistente.
func NewConversation(greeting string) *Conversation {
	c := &Conversation{}
	if strings.TrimSpace(greeting) != "" {
		c.messages = append(c.messages, newChatMessage(domain.RoleAssistant, greeting, false))
	}
	return c
}

// Greeting es el saludo inicial del asistente para un perfil.
func Greeting(profile domain.Profile) string {
	return fmt.Sprintf("Olá! Sou a IA do %s. Como posso ajudar você hoje? Pergunte sobre meus projetos, experiência ou habilidades!", profile.Name)
}

func (c *Conversation) AppendUser(text string) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}
	msg := newChatMessage(domain.RoleUser, text, false)
	c.append(msg)
	return msg, nil
}

func (c *Conversation) AppendAssistant(text string, isError bool) domain.ChatMessage {
	msg := newChatMessage(domain.RoleAssistant, text, isError)
	c.append(msg)
	return msg
}

// Append agrega un mensaje ya construido (por ejemplo el que devuelve el gateway).
func (c *Conversation) Append(msg domain.ChatMessage) {
	c.append(msg)
}

func (c *Conversation) append(msg domain.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

// Messages devuelve una copia en orden de insercion.
func (c *Conversation) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ChatMessage(nil), c.messages...)
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Responder es lo que ChatService necesita del gateway.
type Responder interface {
	ReplyMessage(ctx context.Context, history []domain.ChatMessage, message string) domain.ChatMessage
}

// ChatService ejecuta un turno completo sobre una Conversation.
type ChatService struct {
	gateway Responder
}

func NewChatService(gateway Responder) *ChatService {
	return &ChatService{gateway: gateway}
}

// Turn valida el texto, toma el historial previo, agrega el mensaje del usuario,
// consulta al gateway y agrega la respuesta. Solo falla con ErrEmptyMessage.
func (s *ChatService) Turn(ctx context.Context, conv *Conversation, text string) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}

	history := conv.Messages()
	if _, err := conv.AppendUser(text); err != nil {
		return domain.ChatMessage{}, err
	}

	reply := s.gateway.ReplyMessage(ctx, history, text)
	conv.Append(reply)
	return reply, nil
}
