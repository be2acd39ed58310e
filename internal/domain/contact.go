package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

const (
	ContactSubject    = "New Contact Form Submission"
	ContactFromName   = "Contact Form"
	MsgEmailSent      = "Email sent successfully!"
	MsgGenericFailure = "Internal Server Error"
)

// ErrInvalidSubmission is returned when strict validation rejects a payload
var ErrInvalidSubmission = errors.New("invalid submission")

// SubmissionPayload represents a contact form submission.
// Validation tags only apply when strict validation is enabled; by default
// the relay forwards whatever it receives, including empty strings.
type SubmissionPayload struct {
	Name    string `json:"name" validate:"required,not_blank,max=100,valid_name,no_header_break"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,not_blank,max=5000"`
}

// UnmarshalJSON relays non-string values as their JSON text, so a number
// submitted as a name arrives as "42". Absent and null fields are empty.
func (p *SubmissionPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    json.RawMessage `json:"name"`
		Email   json.RawMessage `json:"email"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	if p.Name, err = fieldText(raw.Name); err != nil {
		return err
	}
	if p.Email, err = fieldText(raw.Email); err != nil {
		return err
	}
	p.Message, err = fieldText(raw.Message)
	return err
}

func fieldText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RelayResult is the terminal outcome of one relay invocation
type RelayResult struct {
	StatusCode int
	Message    string
	Error      string
}

func RelaySuccess() RelayResult {
	return RelayResult{StatusCode: http.StatusOK, Message: MsgEmailSent}
}

// RelayFailure carries the cause's text verbatim
func RelayFailure(statusCode int, err error) RelayResult {
	text := MsgGenericFailure
	if err != nil && err.Error() != "" {
		text = err.Error()
	}
	return RelayResult{StatusCode: statusCode, Error: text}
}

func (r RelayResult) Succeeded() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage composes the submission into an email and dispatches it
	SendContactMessage(ctx context.Context, req *SubmissionPayload) error
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}
