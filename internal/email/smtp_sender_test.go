package email

import (
	"strings"
	"testing"
	"time"

	"ecofolio/internal/domain"
)

func TestNewSMTPSenderValidation(t *testing.T) {
	if _, err := NewSMTPSender("", 0, "", "", "from@x.com", "", "to@x.com", false); err == nil {
		t.Fatalf("expected error without host")
	}
	if _, err := NewSMTPSender("smtp.x.com", 0, "", "", "", "", "to@x.com", false); err == nil {
		t.Fatalf("expected error without from")
	}
	if _, err := NewSMTPSender("smtp.x.com", 0, "", "", "from@x.com", "", " ", false); err == nil {
		t.Fatalf("expected error without recipient")
	}
	s, err := NewSMTPSender("smtp.x.com", 0, "", "", "from@x.com", "", "to@x.com", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.port != 587 {
		t.Fatalf("expected default port 587, got %d", s.port)
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	raw := buildMessage("from@x.com", "EcoFolio", "to@x.com", "visitor@y.com", "Portfolio Contact: Ana", "corpo")

	needles := []string{
		"From: EcoFolio <from@x.com>\r\n",
		"To: to@x.com\r\n",
		"Reply-To: visitor@y.com\r\n",
		"Subject: Portfolio Contact: Ana\r\n",
		"\r\n\r\ncorpo",
	}
	for _, n := range needles {
		if !strings.Contains(raw, n) {
			t.Fatalf("message missing %q: %q", n, raw)
		}
	}
}

func TestSanitizeHeaderStripsNewlines(t *testing.T) {
	got := sanitizeHeader("Ana\r\nBcc: spam@x.com")
	if strings.ContainsAny(got, "\r\n") {
		t.Fatalf("expected no newlines, got %q", got)
	}
}

func TestBuildContactBody(t *testing.T) {
	body := buildContactBody(domain.ContactMessage{
		Name:      "Ana",
		Email:     "ana@y.com",
		Message:   "Olá, tenho um projeto.",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	for _, n := range []string{"Nome: Ana", "Email: ana@y.com", "2026-01-02T03:04:05Z", "tenho um projeto"} {
		if !strings.Contains(body, n) {
			t.Fatalf("body missing %q: %q", n, body)
		}
	}
}
