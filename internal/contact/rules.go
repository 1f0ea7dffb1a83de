package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names the three contact form inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists every form field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

const (
	minNameLength    = 2
	minMessageLength = 10
)

// emailPattern accepts local@domain.tld: no whitespace, a single @, and
// at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateField applies the field's rules in order and returns the first
// failing rule's message, or "" when the value passes. It is a pure
// function of its inputs.
func ValidateField(field Field, value string) string {
	trimmed := strings.TrimSpace(value)

	switch field {
	case FieldName:
		if trimmed == "" {
			return "Name is required"
		}
		if utf8.RuneCountInString(trimmed) < minNameLength {
			return "Name must be at least 2 characters"
		}
	case FieldEmail:
		if trimmed == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(trimmed) {
			return "Please enter a valid email address"
		}
	case FieldMessage:
		if trimmed == "" {
			return "Message is required"
		}
		if utf8.RuneCountInString(trimmed) < minMessageLength {
			return "Message must be at least 10 characters"
		}
	}

	return ""
}

// ValidateRecord validates all three fields and returns exactly the
// failing ones. The record is valid iff the returned map is empty.
func ValidateRecord(record Record) map[Field]string {
	errs := make(map[Field]string)
	for _, field := range Fields {
		if msg := ValidateField(field, record.Get(field)); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
