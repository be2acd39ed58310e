package usecase

import (
	"context"

	"portfolio-contact/internal/domain"
	"portfolio-contact/pkg/email"
)

type healthUsecase struct {
	sender email.Sender
}

func NewHealthUsecase(sender email.Sender) domain.HealthUsecase {
	return &healthUsecase{sender: sender}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	mail := "unconfigured"
	if u.sender != nil && u.sender.IsConfigured() {
		mail = "configured"
	}
	return map[string]string{
		"status": "ok",
		"mail":   mail,
	}
}
