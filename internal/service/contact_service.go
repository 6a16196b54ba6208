package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecofolio/internal/domain"
	"ecofolio/internal/email"
	"ecofolio/internal/repository"
)

var (
	ErrContactInvalidInput = errors.New("contact invalid input")
	ErrContactDelivery     = errors.New("contact delivery failed")
)

var validate = validator.New()

type contactInput struct {
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email,max=254"`
	Message string `validate:"required,max=5000"`
}

// ContactService recibe los envios del formulario de contacto. El repositorio y
// el sender son opcionales; sin ninguno el envio solo queda registrado en el log.
type ContactService struct {
	logger *zap.Logger
	repo   repository.ContactRepository
	sender email.Sender
}

func NewContactService(logger *zap.Logger, repo repository.ContactRepository, sender email.Sender) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{logger: logger, repo: repo, sender: sender}
}

func (s *ContactService) Submit(ctx context.Context, name, emailAddr, message string) (domain.ContactMessage, error) {
	in := contactInput{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(emailAddr),
		Message: strings.TrimSpace(message),
	}
	if err := validate.Struct(in); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("%w: %v", ErrContactInvalidInput, err)
	}

	msg := domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, msg); err != nil {
			s.logger.Error("persist contact message failed", zap.Error(err), zap.String("contact_id", msg.ID))
			return domain.ContactMessage{}, fmt.Errorf("%w: %v", ErrContactDelivery, err)
		}
	}

	if s.sender != nil {
		if err := s.sender.SendContactNotification(ctx, msg); err != nil {
			// Si ya quedo guardado no se pierde; solo se avisa.
			if s.repo != nil {
				s.logger.Warn("contact notification failed", zap.Error(err), zap.String("contact_id", msg.ID))
			} else {
				s.logger.Error("contact notification failed", zap.Error(err), zap.String("contact_id", msg.ID))
				return domain.ContactMessage{}, fmt.Errorf("%w: %v", ErrContactDelivery, err)
			}
		}
	}

	s.logger.Info("contact message received", zap.String("contact_id", msg.ID))
	return msg, nil
}
