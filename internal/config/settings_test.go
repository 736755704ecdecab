package config_test

import (
	"testing"

	"github.com/drpcorg/chainquery/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Setenv(config.EndpointVar, "app.example.com")
	t.Setenv(config.SecureVar, "false")
	t.Setenv(config.UsernameVar, "user")
	t.Setenv(config.PasswordVar, "pass")

	settings, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, &config.Settings{
		Endpoint: "app.example.com",
		Secure:   false,
		Username: "user",
		Password: "pass",
	}, settings)
}

func TestLoadSettingsSecureByDefault(t *testing.T) {
	t.Setenv(config.EndpointVar, "app.example.com")
	t.Setenv(config.SecureVar, "")

	settings, err := config.Load()
	require.NoError(t, err)
	assert.True(t, settings.Secure)
}

func TestLoadSettingsWithoutEndpoint(t *testing.T) {
	t.Setenv(config.EndpointVar, "")

	_, err := config.Load()
	require.ErrorContains(t, err, config.EndpointVar)
}

func TestLoadSettingsInvalidSecure(t *testing.T) {
	t.Setenv(config.EndpointVar, "app.example.com")
	t.Setenv(config.SecureVar, "not-a-bool")

	_, err := config.Load()
	require.ErrorContains(t, err, config.SecureVar)
}
