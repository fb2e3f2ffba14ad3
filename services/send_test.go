package services

import (
	"context"
	"testing"
)

func TestStubSender(t *testing.T) {
	err := StubSender{}.Send(context.Background(), []byte("%PDF-fake"), "MERAV_Cotizacion_proyecto.pdf", "client@example.com")
	if err != nil {
		t.Fatalf("StubSender.Send() error = %v", err)
	}
}

func TestMailSender_MissingRecipient(t *testing.T) {
	s := NewMailSender(nil)
	if err := s.Send(context.Background(), []byte("doc"), "f.pdf", ""); err == nil {
		t.Fatal("expected error for empty recipient")
	}
}
