package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"portfolio-contact/pkg/logger"
)

const (
	// DefaultEndpoint is the relay path the portfolio page posts to
	DefaultEndpoint = "/.netlify/functions/contact"

	PendingLabel   = "Sending..."
	MsgSent        = "Message sent successfully!"
	MsgUnreachable = "Something went wrong. Please try again."
)

const maxResponseBytes = 1 << 20

var ErrSubmitDisabled = errors.New("contactform: submit control is disabled")

// Outcome describes what a submission did. StatusCode is zero when no
// response was received.
type Outcome struct {
	StatusCode int
	Kind       Kind
	Message    string
	Err        error
}

type relayResponse struct {
	Message string  `json:"message"`
	Error   *string `json:"error"`
}

type Controller struct {
	form          *Form
	notifications *Notifications
	endpoint      string
	client        *http.Client
	log           *slog.Logger
}

type Option func(*Controller)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) { c.client = client }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// NewController binds a form and its notification area to the relay at
// endpoint, an absolute URL.
func NewController(form *Form, notifications *Notifications, endpoint string, opts ...Option) *Controller {
	c := &Controller{
		form:          form,
		notifications: notifications,
		endpoint:      endpoint,
		client:        &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EndpointURL joins a site base URL with DefaultEndpoint
func EndpointURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + DefaultEndpoint
}

// Submit posts the current field values to the relay and reports the result
// through a notification. The submit control is disabled for the duration
// and always restored. The form is reset only on success.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	original, ok := c.form.beginSubmit(PendingLabel)
	if !ok {
		return Outcome{}, ErrSubmitDisabled
	}
	defer c.form.endSubmit(original)

	outcome := c.post(ctx, c.form.Values())
	if outcome.Err != nil {
		c.logger().Error("Contact form submission failed", "endpoint", c.endpoint, "error", outcome.Err)
	}

	c.notifications.Show(outcome.Message, outcome.Kind)
	if outcome.Kind == KindSuccess {
		c.form.Reset()
	}
	return outcome, nil
}

func (c *Controller) post(ctx context.Context, values map[string]string) Outcome {
	body, err := json.Marshal(values)
	if err != nil {
		return unreachable(0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return unreachable(0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return unreachable(0, err)
	}
	defer resp.Body.Close()

	// The body is parsed before the status is looked at, so a non-JSON
	// reply is a failure even on 2xx.
	var result relayResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return unreachable(resp.StatusCode, fmt.Errorf("failed to decode relay response: %w", err))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Outcome{StatusCode: resp.StatusCode, Kind: KindSuccess, Message: MsgSent}
	}

	msg := MsgUnreachable
	if result.Error != nil && *result.Error != "" {
		msg = "Error: " + *result.Error
	}
	return Outcome{StatusCode: resp.StatusCode, Kind: KindError, Message: msg}
}

func (c *Controller) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Log
}

func unreachable(status int, err error) Outcome {
	return Outcome{StatusCode: status, Kind: KindError, Message: MsgUnreachable, Err: err}
}
