package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	folioerrors "github.com/folio-sh/folio/pkg/errors"
)

func validMessage() Message {
	return Message{
		Name:    "Jo Lee",
		Email:   "jo@example.com",
		Message: "This is a valid message.",
	}
}

func TestHTTPSenderPostsJSON(t *testing.T) {
	t.Parallel()

	var received Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)

	require.NoError(t, sender.Send(context.Background(), validMessage()))
	require.Equal(t, validMessage(), received)
}

func TestHTTPSenderFailsOnServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)
	err := sender.Send(context.Background(), validMessage())

	var sendErr *folioerrors.SendError
	require.ErrorAs(t, err, &sendErr)
	require.Equal(t, http.StatusInternalServerError, sendErr.Status)
}

func TestHTTPSenderFailsOnUnreachableEndpoint(t *testing.T) {
	t.Parallel()

	sender := NewHTTPSender("http://127.0.0.1:1/contact", time.Second)
	err := sender.Send(context.Background(), validMessage())

	var sendErr *folioerrors.SendError
	require.ErrorAs(t, err, &sendErr)
}

func TestHTTPSenderRejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	sender := NewHTTPSender("http://127.0.0.1:1/contact", time.Second)
	err := sender.Send(context.Background(), Message{Name: "J"})

	var validationErr *folioerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLogSenderAcceptsValidMessage(t *testing.T) {
	t.Parallel()

	sender := NewLogSender(nil)

	require.NoError(t, sender.Send(context.Background(), validMessage()))
	require.Error(t, sender.Send(context.Background(), Message{}))
}
