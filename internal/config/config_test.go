package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:            "8080",
		Env:             "development",
		JWTSecret:       "your-secret-key-change-in-production",
		JWTExpiryHours:  72,
		DBPassword:      "password",
		UploadMaxSizeMB: 10,
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 72, cfg.JWTExpiryHours)
	assert.Equal(t, "https://api.cloudinary.com", cfg.CloudinaryBaseURL)
	assert.Equal(t, 10, cfg.UploadMaxSizeMB)
	assert.NotEmpty(t, cfg.UploadTempDir)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_EXPIRY_HOURS", "24")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 24, cfg.JWTExpiryHours)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive expiry", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTExpiryHours = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive upload limit", func(t *testing.T) {
		cfg := validConfig()
		cfg.UploadMaxSizeMB = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production requires cloudinary credentials", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-very-long-production-secret-value!"
		cfg.DBPassword = "sup3r-s3cret"
		assert.Error(t, cfg.Validate())

		cfg.CloudinaryCloudName = "demo"
		cfg.CloudinaryAPIKey = "key"
		cfg.CloudinaryAPISecret = "secret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("production rejects weak db password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-very-long-production-secret-value!"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})
}
