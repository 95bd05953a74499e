package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "APP_ENV", "NODE_ENV", "DATA_DIR", "STATIC_DIR", "CORS_ORIGINS", "LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.False(t, cfg.Permissive())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "http")

	_, err := Load()
	assert.ErrorContains(t, err, "PORT")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

func TestPermissive(t *testing.T) {
	tests := []struct {
		name    string
		appEnv  string
		nodeEnv string
		want    bool
	}{
		{"app env development", "development", "", true},
		{"node env fallback", "", "development", true},
		{"app env wins", "production", "development", false},
		{"unset", "", "", false},
		{"case sensitive", "Development", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AppEnv: tt.appEnv, NodeEnv: tt.nodeEnv}
			assert.Equal(t, tt.want, cfg.Permissive())
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
