package email

import (
	"fmt"

	"portfolio-contact/config"
)

// NewSender builds the provider named by MAIL_PROVIDER
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.MailProvider {
	case "", "smtp":
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass), nil
	case "resend":
		return NewResendSender(cfg.ResendAPIKey, cfg.EmailUser), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}
