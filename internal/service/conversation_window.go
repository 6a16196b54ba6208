package service

import (
	"github.com/samber/lo"

	"ecofolio/internal/domain"
	"ecofolio/internal/llm"
)

// DefaultHistoryWindow es la cantidad de mensajes previos que se reenvian al modelo.
const DefaultHistoryWindow = 6

// SelectWindow toma los ultimos bound mensajes del historial y agrega el mensaje
// nuevo al final. El historial no debe incluir ya el mensaje nuevo.
func SelectWindow(history []domain.ChatMessage, newMessage string, bound int) []llm.Message {
	if bound < 0 {
		bound = 0
	}
	if len(history) > bound {
		history = history[len(history)-bound:]
	}

	window := lo.Map(history, func(m domain.ChatMessage, _ int) llm.Message {
		role := llm.RoleModel
		if m.Role == domain.RoleUser {
			role = llm.RoleUser
		}
		return llm.Message{Role: role, Text: m.Text}
	})

	return append(window, llm.Message{Role: llm.RoleUser, Text: newMessage})
}
