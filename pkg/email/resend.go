package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// ResendSender dispatches through the Resend HTTP API
type ResendSender struct {
	client  *resend.Client
	apiKey  string
	account string
}

// NewResendSender creates a sender; account is the verified sending address
func NewResendSender(apiKey, account string) *ResendSender {
	return &ResendSender{
		client:  resend.NewClient(apiKey),
		apiKey:  apiKey,
		account: account,
	}
}

func (s *ResendSender) Name() string { return "resend" }

func (s *ResendSender) IsConfigured() bool {
	return s.apiKey != "" && s.account != ""
}

func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    formatAddress(msg.FromName, s.account),
		To:      msg.To,
		Subject: sanitizeHeader(msg.Subject),
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}
