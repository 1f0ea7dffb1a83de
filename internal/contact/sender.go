package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	folioerrors "github.com/folio-sh/folio/pkg/errors"
)

// Message is the payload handed to the send collaborator.
type Message struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// MessageFromRecord builds the outgoing payload from a validated record.
func MessageFromRecord(record Record) Message {
	return Message{
		Name:    record.Name,
		Email:   record.Email,
		Message: record.Message,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// ValidatePayload re-checks the outgoing payload at the collaborator
// boundary. The form rules should already guarantee this; a failure
// here means the caller skipped them.
func ValidatePayload(msg Message) error {
	err := validatorInstance().Struct(msg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return folioerrors.NewValidationError(first.Field(), fmt.Sprintf("failed %q rule", first.Tag()), err)
	}
	return err
}

// Sender delivers a submitted contact message. Implementations own their
// transport; the form only sees success or failure.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// HTTPSender posts the message as JSON to a configured endpoint. Any
// transport error or non-2xx status is a failure; there are no retries.
type HTTPSender struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSender creates an HTTPSender with the given request timeout.
func NewHTTPSender(endpoint string, timeout time.Duration) *HTTPSender {
	return &HTTPSender{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Send implements Sender.
func (s *HTTPSender) Send(ctx context.Context, msg Message) error {
	if err := ValidatePayload(msg); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return folioerrors.NewSendError(s.endpoint, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return folioerrors.NewSendError(s.endpoint, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return folioerrors.NewSendError(s.endpoint, 0, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return folioerrors.NewSendError(s.endpoint, resp.StatusCode, nil)
	}

	return nil
}

// SenderLogger is the subset of the application logger the log sender needs.
type SenderLogger interface {
	Info(msg string)
}

// LogSender accepts every message and logs it. It stands in for the real
// collaborator when no endpoint is configured, keeping the app usable
// offline.
type LogSender struct {
	log SenderLogger
}

// NewLogSender creates a LogSender.
func NewLogSender(log SenderLogger) *LogSender {
	return &LogSender{log: log}
}

// Send implements Sender.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	if err := ValidatePayload(msg); err != nil {
		return err
	}
	if s.log != nil {
		s.log.Info(fmt.Sprintf("contact message from %s <%s> accepted (no endpoint configured)", msg.Name, msg.Email))
	}
	return nil
}
