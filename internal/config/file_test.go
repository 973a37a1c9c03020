package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvRequestTimeout, "")
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultFile(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`api_url: http://api.example.edu
request_timeout: 15s
log_level: debug
refetch_after_save: true
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.edu", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.RefetchAfterSave)

	timeout, err := cfg.Timeout()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, timeout)
}

func TestLoadFileEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://file\nlog_level: warn\n"), 0o644))

	t.Setenv(EnvAPIURL, "http://env:9000")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvRequestTimeout, "20")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env:9000", cfg.APIURL)
	assert.Equal(t, "error", cfg.LogLevel)

	timeout, err := cfg.Timeout()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, timeout)
}

func TestLoadFileInvalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "api_url: [unclosed"},
		{"bad level", "log_level: loud"},
		{"bad timeout", "request_timeout: soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "academia", "config.yaml")

	cfg := DefaultFile()
	cfg.RequestTimeout = "45s"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
