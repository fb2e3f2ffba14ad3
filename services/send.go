package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/mail"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/mailer"
)

// DocumentSender delivers a rendered quote document to a client.
// Sending never mutates the quote; a failure only surfaces to the
// caller so the user can retry.
type DocumentSender interface {
	Send(ctx context.Context, document []byte, filename, recipientEmail string) error
}

// MailSender delivers quote documents as email attachments through the
// app's configured mail client.
type MailSender struct {
	app core.App
}

// NewMailSender creates a sender backed by the app's mail settings.
func NewMailSender(app core.App) *MailSender {
	return &MailSender{app: app}
}

// Send mails the document to the recipient as a single attachment.
func (s *MailSender) Send(ctx context.Context, document []byte, filename, recipientEmail string) error {
	if recipientEmail == "" {
		return fmt.Errorf("missing recipient email")
	}

	meta := s.app.Settings().Meta
	message := &mailer.Message{
		From: mail.Address{
			Name:    meta.SenderName,
			Address: meta.SenderAddress,
		},
		To:      []mail.Address{{Address: recipientEmail}},
		Subject: "Cotización",
		Text:    "Adjunto encontrará la cotización solicitada.",
		Attachments: map[string]io.Reader{
			filename: bytes.NewReader(document),
		},
	}

	if err := s.app.NewMailClient().Send(message); err != nil {
		return fmt.Errorf("send quote to %s: %w", recipientEmail, err)
	}
	return nil
}

// StubSender logs the send and reports success without any network
// I/O. It stands in until a real transport is configured.
type StubSender struct{}

// Send logs the would-be delivery and returns nil.
func (StubSender) Send(ctx context.Context, document []byte, filename, recipientEmail string) error {
	log.Printf("send: stub delivery of %s (%d bytes) to %s", filename, len(document), recipientEmail)
	return nil
}
