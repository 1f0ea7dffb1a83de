package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load()
	require.NoError(t, err)

	require.Empty(t, settings.ContactEndpoint)
	require.Equal(t, 10*time.Second, settings.ContactTimeout)
	require.Equal(t, "info", settings.LogLevel)
	require.Zero(t, settings.EnvironmentPollInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FOLIO_CONTACT_ENDPOINT", "https://example.com/contact")
	t.Setenv("FOLIO_CONTACT_TIMEOUT", "3s")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")
	t.Setenv("FOLIO_ENV_POLL_INTERVAL", "30s")

	settings, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://example.com/contact", settings.ContactEndpoint)
	require.Equal(t, 3*time.Second, settings.ContactTimeout)
	require.Equal(t, "debug", settings.LogLevel)
	require.Equal(t, 30*time.Second, settings.EnvironmentPollInterval)
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("FOLIO_CONTACT_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
