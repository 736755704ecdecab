package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	EndpointVar = "CHAINQUERY_ENDPOINT"
	SecureVar   = "CHAINQUERY_SECURE"
	UsernameVar = "CHAINQUERY_USERNAME"
	PasswordVar = "CHAINQUERY_PASSWORD"
)

// Settings hold the connection parameters of one backend endpoint.
type Settings struct {
	Endpoint string
	Secure   bool
	Username string
	Password string
}

// Load reads the settings from the environment, with an optional .env file
// as a fallback for local runs.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	endpoint := os.Getenv(EndpointVar)
	if endpoint == "" {
		return nil, fmt.Errorf("%s is not set", EndpointVar)
	}

	secure := true
	if rawSecure := os.Getenv(SecureVar); rawSecure != "" {
		parsed, err := cast.ToBoolE(rawSecure)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value '%s': %v", SecureVar, rawSecure, err)
		}
		secure = parsed
	}

	return &Settings{
		Endpoint: endpoint,
		Secure:   secure,
		Username: os.Getenv(UsernameVar),
		Password: os.Getenv(PasswordVar),
	}, nil
}
