package errors

import (
	"fmt"
)

// ParseError represents a content file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures content or form validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SendError represents a failure delivering a contact message to the
// configured collaborator endpoint.
type SendError struct {
	Endpoint string
	Status   int
	Err      error
}

// NewSendError constructs a SendError.
func NewSendError(endpoint string, status int, err error) error {
	return &SendError{Endpoint: endpoint, Status: status, Err: err}
}

func (e *SendError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status > 0 {
		return fmt.Sprintf("send error: %s: unexpected status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("send error: %s: %v", e.Endpoint, e.Err)
}

// Unwrap exposes the root error.
func (e *SendError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
