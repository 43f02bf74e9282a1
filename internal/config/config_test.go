package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{
			name:        "missing port",
			cfg:         Config{JWTSecret: "x"},
			expectError: true,
		},
		{
			name:        "missing jwt secret",
			cfg:         Config{Port: "8480"},
			expectError: true,
		},
		{
			name: "development defaults pass",
			cfg: Config{
				Port:      "8480",
				JWTSecret: "change-me-in-production",
				Env:       "development",
			},
			expectError: false,
		},
		{
			name: "production rejects default secret",
			cfg: Config{
				Port:      "8480",
				JWTSecret: "change-me-in-production",
				Env:       "production",
			},
			expectError: true,
		},
		{
			name: "production rejects short secret",
			cfg: Config{
				Port:       "8480",
				JWTSecret:  "short-secret",
				DBPassword: "strong-password",
				DBSSLMode:  "require",
				Env:        "production",
			},
			expectError: true,
		},
		{
			name: "production rejects ssl disable",
			cfg: Config{
				Port:       "8480",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "strong-password",
				DBSSLMode:  "disable",
				Env:        "production",
			},
			expectError: true,
		},
		{
			name: "production ok",
			cfg: Config{
				Port:       "8480",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "strong-password",
				DBSSLMode:  "require",
				Env:        "production",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_SSLModeNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
}
