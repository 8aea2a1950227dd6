package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 120, cfg.WriteLimit)
	assert.Empty(t, cfg.SeedPath)
	assert.Empty(t, cfg.CurrentUserID)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"CHORECHART_PORT":            "9000",
		"CHORECHART_LOG_LEVEL":       "debug",
		"CHORECHART_LOG_FORMAT":      "JSON",
		"CHORECHART_SEED_PATH":       "/etc/chorechart/seed.yaml",
		"CHORECHART_CURRENT_USER":    "u2",
		"CHORECHART_WRITE_LIMIT":     "30",
		"CHORECHART_ALLOWED_ORIGINS": "kitchen.local, tablet.local,,",
		"CHORECHART_TRUST_PROXY":     "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/etc/chorechart/seed.yaml", cfg.SeedPath)
	assert.Equal(t, "u2", cfg.CurrentUserID)
	assert.Equal(t, 30, cfg.WriteLimit)
	assert.Equal(t, []string{"kitchen.local", "tablet.local"}, cfg.AllowedOrigins)
	assert.True(t, cfg.TrustProxy)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"log format", map[string]string{"CHORECHART_LOG_FORMAT": "xml"}},
		{"write limit text", map[string]string{"CHORECHART_WRITE_LIMIT": "lots"}},
		{"write limit zero", map[string]string{"CHORECHART_WRITE_LIMIT": "0"}},
		{"trust proxy", map[string]string{"CHORECHART_TRUST_PROXY": "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("CHORECHART_PORT=7070\nCHORECHART_CURRENT_USER=u3\n"), 0o600))
	t.Chdir(dir)

	// Values already in the environment win over .env.
	t.Setenv("CHORECHART_CURRENT_USER", "u1")
	t.Cleanup(func() { os.Unsetenv("CHORECHART_PORT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "u1", cfg.CurrentUserID)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CHORECHART_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}
