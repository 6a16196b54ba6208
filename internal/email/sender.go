package email

import (
	"context"

	"ecofolio/internal/domain"
)

// Sender define la interfaz para reenviar los mensajes del formulario de contacto.
type Sender interface {
	SendContactNotification(ctx context.Context, msg domain.ContactMessage) error
}
