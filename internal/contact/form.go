package contact

import (
	"time"
)

// Record holds the raw values of the three contact fields.
type Record struct {
	Name    string
	Email   string
	Message string
}

// Get returns the value of the named field.
func (r Record) Get(field Field) string {
	switch field {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldMessage:
		return r.Message
	}
	return ""
}

func (r *Record) set(field Field, value string) {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldMessage:
		r.Message = value
	}
}

// SubmissionState is the contact form's submission machine state.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s SubmissionState) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// ResetDelay is how long the success and error banners stay up before
// the form returns to idle.
const ResetDelay = 5 * time.Second

// Form tracks the contact form's record, per-field errors, touched
// state, and submission state. Errors surface only for touched fields;
// Submit touches everything. The form is not safe for concurrent use:
// it belongs to a single UI component on the event loop.
type Form struct {
	record     Record
	errors     map[Field]string
	touched    map[Field]struct{}
	state      SubmissionState
	generation int
}

// NewForm returns an empty idle form.
func NewForm() *Form {
	return &Form{
		errors:  make(map[Field]string),
		touched: make(map[Field]struct{}),
	}
}

// Record returns the current field values.
func (f *Form) Record() Record {
	return f.record
}

// State returns the submission state.
func (f *Form) State() SubmissionState {
	return f.state
}

// Submitting reports whether a send is in flight; the submit trigger
// must stay disabled while it is.
func (f *Form) Submitting() bool {
	return f.state == StateSubmitting
}

// Touched reports whether the user has left the field at least once.
func (f *Form) Touched(field Field) bool {
	_, ok := f.touched[field]
	return ok
}

// Error returns the visible error for a field. Untouched fields never
// show errors, even when their current value is invalid.
func (f *Form) Error(field Field) string {
	if !f.Touched(field) {
		return ""
	}
	return f.errors[field]
}

// Change updates a field value. Fields the user has already left get
// live re-validation; pristine fields stay quiet until first blur.
func (f *Form) Change(field Field, value string) {
	f.record.set(field, value)
	if f.Touched(field) {
		f.revalidate(field)
	}
}

// Blur marks the field as touched and re-validates it unconditionally.
func (f *Form) Blur(field Field, value string) {
	f.record.set(field, value)
	f.touched[field] = struct{}{}
	f.revalidate(field)
}

// Submit attempts to start a submission. All fields become touched and
// the whole record is validated. It returns true when the form is valid
// and the state moved to submitting; the caller then runs the send and
// reports back via Resolve. Submit is a no-op while a send is in flight
// or a banner is still showing.
func (f *Form) Submit() bool {
	if f.state != StateIdle {
		return false
	}

	for _, field := range Fields {
		f.touched[field] = struct{}{}
	}
	f.errors = ValidateRecord(f.record)

	if len(f.errors) > 0 {
		return false
	}

	f.state = StateSubmitting
	f.generation++
	return true
}

// Resolve records the outcome of the in-flight send and returns the
// generation token for the scheduled return to idle. Success resets the
// record, touched set, and errors together; failure keeps the record so
// the user can retry. Resolve is ignored unless a send is in flight.
func (f *Form) Resolve(err error) (generation int, ok bool) {
	if f.state != StateSubmitting {
		return 0, false
	}

	f.generation++
	if err != nil {
		f.state = StateError
		return f.generation, true
	}

	f.state = StateSuccess
	f.record = Record{}
	f.errors = make(map[Field]string)
	f.touched = make(map[Field]struct{})
	return f.generation, true
}

// ResetToIdle returns the form to idle if the generation token still
// matches. Stale tokens (a newer transition superseded the timer, or
// the component restarted) are ignored.
func (f *Form) ResetToIdle(generation int) bool {
	if generation != f.generation {
		return false
	}
	if f.state != StateSuccess && f.state != StateError {
		return false
	}
	f.state = StateIdle
	return true
}

func (f *Form) revalidate(field Field) {
	if msg := ValidateField(field, f.record.Get(field)); msg != "" {
		f.errors[field] = msg
	} else {
		delete(f.errors, field)
	}
}
