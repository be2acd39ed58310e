package usecase

import (
	"context"
	"fmt"
	"time"

	"portfolio-contact/internal/domain"
	"portfolio-contact/pkg/email"
	"portfolio-contact/pkg/logger"
	"portfolio-contact/pkg/metrics"
	"portfolio-contact/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// contactRecipient is fixed at build time:
//
//	go build -ldflags "-X portfolio-contact/internal/usecase.contactRecipient=me@example.com" ./cmd/api
var contactRecipient = "hello@example.com"

// ContactRecipient returns the address every submission is delivered to
func ContactRecipient() string {
	return contactRecipient
}

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. A nil validate relays
// submissions as-is; pass validation.New() to reject malformed fields.
func NewContactUsecase(sender email.Sender, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
	}
}

// SendContactMessage composes the email and hands it to the provider.
// Every call dispatches; there is no deduplication.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.SubmissionPayload) error {
	if uc.validate != nil {
		if err := uc.validate.StructCtx(ctx, req); err != nil {
			metrics.RecordContactDispatch(uc.sender.Name(), metrics.StatusRejected, 0)
			return fmt.Errorf("%w: %s", domain.ErrInvalidSubmission, validation.Join(err))
		}
	}

	text, html, err := email.RenderContact(email.ContactEmailData{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Message:     req.Message,
	})
	if err != nil {
		return err
	}

	msg := &email.Message{
		FromName: domain.ContactFromName,
		To:       []string{contactRecipient},
		ReplyTo:  email.ReplyAddress(req.Name, req.Email),
		Subject:  domain.ContactSubject,
		Text:     text,
		HTML:     html,
	}

	start := time.Now()
	if err := uc.sender.Send(ctx, msg); err != nil {
		metrics.RecordContactDispatch(uc.sender.Name(), metrics.StatusFailed, time.Since(start))
		logger.Log.ErrorContext(ctx, "Contact email dispatch failed",
			"request_id", logger.RequestID(ctx),
			"provider", uc.sender.Name(),
			"error", err,
		)
		return err
	}

	metrics.RecordContactDispatch(uc.sender.Name(), metrics.StatusSuccess, time.Since(start))
	logger.Log.InfoContext(ctx, "Contact email dispatched",
		"request_id", logger.RequestID(ctx),
		"provider", uc.sender.Name(),
	)
	return nil
}
