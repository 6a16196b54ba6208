package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"ecofolio/internal/domain"
)

type mockContactRepo struct {
	created []domain.ContactMessage
	err     error
}

func (m *mockContactRepo) Create(_ context.Context, msg domain.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, msg)
	return nil
}

type mockContactSender struct {
	sent []domain.ContactMessage
	err  error
}

func (m *mockContactSender) SendContactNotification(_ context.Context, msg domain.ContactMessage) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func TestContactServiceSubmit_NormalizesAndDelivers(t *testing.T) {
	repo := &mockContactRepo{}
	sender := &mockContactSender{}
	svc := NewContactService(zap.NewNop(), repo, sender)

	msg, err := svc.Submit(context.Background(), " Ana ", " ana@example.com ", " Olá! ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if msg.ID == "" || msg.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at defaults")
	}
	if msg.Name != "Ana" || msg.Email != "ana@example.com" || msg.Message != "Olá!" {
		t.Fatalf("expected trimmed fields, got %+v", msg)
	}
	if len(repo.created) != 1 || len(sender.sent) != 1 {
		t.Fatalf("expected persisted and notified once, got %d/%d", len(repo.created), len(sender.sent))
	}
}

func TestContactServiceSubmit_Validation(t *testing.T) {
	svc := NewContactService(zap.NewNop(), nil, nil)
	cases := []struct {
		name, email, message string
	}{
		{"", "ana@example.com", "oi"},
		{"Ana", "", "oi"},
		{"Ana", "nao-e-email", "oi"},
		{"Ana", "ana@example.com", "   "},
	}
	for i, c := range cases {
		if _, err := svc.Submit(context.Background(), c.name, c.email, c.message); !errors.Is(err, ErrContactInvalidInput) {
			t.Fatalf("case %d expected ErrContactInvalidInput, got %v", i, err)
		}
	}
}

func TestContactServiceSubmit_NoBackendsStillAccepts(t *testing.T) {
	svc := NewContactService(nil, nil, nil)
	if _, err := svc.Submit(context.Background(), "Ana", "ana@example.com", "oi"); err != nil {
		t.Fatalf("expected acceptance without backends, got %v", err)
	}
}

func TestContactServiceSubmit_Failures(t *testing.T) {
	t.Run("falla el repositorio", func(t *testing.T) {
		sender := &mockContactSender{}
		svc := NewContactService(zap.NewNop(), &mockContactRepo{err: errors.New("db down")}, sender)
		if _, err := svc.Submit(context.Background(), "Ana", "ana@example.com", "oi"); !errors.Is(err, ErrContactDelivery) {
			t.Fatalf("expected ErrContactDelivery, got %v", err)
		}
		if len(sender.sent) != 0 {
			t.Fatalf("must not notify when persistence fails")
		}
	})

	t.Run("falla el email sin repositorio", func(t *testing.T) {
		svc := NewContactService(zap.NewNop(), nil, &mockContactSender{err: errors.New("smtp down")})
		if _, err := svc.Submit(context.Background(), "Ana", "ana@example.com", "oi"); !errors.Is(err, ErrContactDelivery) {
			t.Fatalf("expected ErrContactDelivery, got %v", err)
		}
	})

	t.Run("falla el email con repositorio", func(t *testing.T) {
		repo := &mockContactRepo{}
		svc := NewContactService(zap.NewNop(), repo, &mockContactSender{err: errors.New("smtp down")})
		if _, err := svc.Submit(context.Background(), "Ana", "ana@example.com", "oi"); err != nil {
			t.Fatalf("stored message must be accepted, got %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected message stored")
		}
	})
}
