package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/scoring")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$14$hash")
	t.Setenv("ATTENDANT_PASSWORD", "feria2024")
	t.Setenv("R2_ACCOUNT_ID", "account")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret-key")
	t.Setenv("R2_BUCKET_NAME", "logos")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com/")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "logos", cfg.R2BucketName)
}

func TestLoadMissingRequiredVariables(t *testing.T) {
	required := []string{
		"DATABASE_URL",
		"JWT_SECRET_KEY",
		"ADMIN_PASSWORD_HASH",
		"ATTENDANT_PASSWORD",
		"R2_ACCOUNT_ID",
		"R2_ACCESS_KEY_ID",
		"R2_SECRET_ACCESS_KEY",
		"R2_BUCKET_NAME",
		"R2_PUBLIC_BASE_URL",
	}

	for _, name := range required {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(name, "")

			_, err := Load()
			require.Error(t, err)
			// The error names the variable, so a misconfigured deployment
			// fails at startup with an actionable message.
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoadInvalidPort(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("SERVER_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SERVER_PORT", "70000")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRefreshInterval(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("REFRESH_INTERVAL", "30s")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)

	t.Setenv("REFRESH_INTERVAL", "-1m")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("REFRESH_INTERVAL", "soon")
	_, err = Load()
	assert.Error(t, err)
}
