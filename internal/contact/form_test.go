package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsHiddenUntilTouched(t *testing.T) {
	t.Parallel()

	form := NewForm()
	form.Change(FieldName, "")

	require.Empty(t, form.Error(FieldName), "pristine field shows no error")

	form.Blur(FieldName, "")

	require.Equal(t, "Name is required", form.Error(FieldName))
}

func TestChangeRevalidatesOnlyTouchedFields(t *testing.T) {
	t.Parallel()

	form := NewForm()
	form.Blur(FieldEmail, "bad")
	require.Equal(t, "Please enter a valid email address", form.Error(FieldEmail))

	form.Change(FieldEmail, "jo@example.com")
	require.Empty(t, form.Error(FieldEmail), "touched field gets live feedback")

	form.Change(FieldMessage, "short")
	require.Empty(t, form.Error(FieldMessage), "untouched field stays quiet")
}

func TestSubmitBlockedShowsOnlyFailingField(t *testing.T) {
	t.Parallel()

	form := NewForm()
	form.Change(FieldEmail, "a@b.com")
	form.Change(FieldMessage, "hello there")

	require.False(t, form.Submit())
	require.Equal(t, StateIdle, form.State())
	require.Equal(t, "Name is required", form.Error(FieldName))
	require.Empty(t, form.Error(FieldEmail))
	require.Empty(t, form.Error(FieldMessage))
}

func TestSubmitTouchesAllFields(t *testing.T) {
	t.Parallel()

	form := NewForm()
	form.Change(FieldName, "Jo")
	form.Change(FieldEmail, "not-an-email")
	form.Change(FieldMessage, "short")

	require.False(t, form.Submit())

	for _, field := range Fields {
		require.True(t, form.Touched(field))
	}
	require.Empty(t, form.Error(FieldName), "length 2 passes")
	require.Equal(t, "Please enter a valid email address", form.Error(FieldEmail))
	require.Equal(t, "Message must be at least 10 characters", form.Error(FieldMessage))
}

func TestSubmitSuccessResetsEverything(t *testing.T) {
	t.Parallel()

	form := NewForm()
	form.Change(FieldName, "Jo Lee")
	form.Change(FieldEmail, "jo@example.com")
	form.Change(FieldMessage, "This is a valid message.")

	require.True(t, form.Submit())
	require.Equal(t, StateSubmitting, form.State())
	require.True(t, form.Submitting())

	generation, ok := form.Resolve(nil)
	require.True(t, ok)
	require.Equal(t, StateSuccess, form.State())
	require.Equal(t, Record{}, form.Record(), "record cleared on success")
	for _, field := range Fields {
		require.False(t, form.Touched(field), "touched set cleared on success")
	}

	require.True(t, form.ResetToIdle(generation))
	require.Equal(t, StateIdle, form.State())
}

func TestSubmitFailureKeepsRecord(t *testing.T) {
	t.Parallel()

	record := Record{
		Name:    "Jo Lee",
		Email:   "jo@example.com",
		Message: "This is a valid message.",
	}

	form := NewForm()
	for _, field := range Fields {
		form.Change(field, record.Get(field))
	}

	require.True(t, form.Submit())

	generation, ok := form.Resolve(errors.New("collaborator down"))
	require.True(t, ok)
	require.Equal(t, StateError, form.State())
	require.Equal(t, record, form.Record(), "record survives a failed send")

	require.True(t, form.ResetToIdle(generation))
	require.Equal(t, StateIdle, form.State())
}

func TestSecondSubmitWhileSubmittingIsNoOp(t *testing.T) {
	t.Parallel()

	form := NewForm()
	form.Change(FieldName, "Jo Lee")
	form.Change(FieldEmail, "jo@example.com")
	form.Change(FieldMessage, "This is a valid message.")

	require.True(t, form.Submit())
	require.False(t, form.Submit(), "no duplicate send while in flight")
	require.Equal(t, StateSubmitting, form.State())
}

func TestStaleResetIgnored(t *testing.T) {
	t.Parallel()

	form := NewForm()
	form.Change(FieldName, "Jo Lee")
	form.Change(FieldEmail, "jo@example.com")
	form.Change(FieldMessage, "This is a valid message.")

	require.True(t, form.Submit())
	stale, _ := form.Resolve(errors.New("boom"))
	require.True(t, form.ResetToIdle(stale))

	// A new submission supersedes the old banner's timer.
	require.True(t, form.Submit())
	fresh, _ := form.Resolve(nil)

	require.False(t, form.ResetToIdle(stale), "stale generation must not reset")
	require.Equal(t, StateSuccess, form.State())
	require.True(t, form.ResetToIdle(fresh))
}

func TestResolveIgnoredWhenNotSubmitting(t *testing.T) {
	t.Parallel()

	form := NewForm()
	_, ok := form.Resolve(nil)
	require.False(t, ok)
	require.Equal(t, StateIdle, form.State())
}
