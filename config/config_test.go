package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tablepipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
command: systemctl
format: yaml
delimiter: "|"
join: ["mounted on", "use%"]
ascii_only: true
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "systemctl", cfg.Command)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, []string{"mounted on", "use%"}, cfg.Join)
	assert.True(t, cfg.ASCIIOnly)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "pre", cfg.Selector)

	r, err := cfg.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, '|', r)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "format: yaml\n")
	t.Setenv("TABLEPIPE_FORMAT", "markdown")
	t.Setenv("TABLEPIPE_JOIN", "start time,mounted on")
	t.Setenv("TABLEPIPE_QUIET", "true")
	t.Setenv("TABLEPIPE_ASCII_ONLY", "not-a-bool")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, []string{"start time", "mounted on"}, cfg.Join)
	assert.True(t, cfg.Quiet)
	assert.False(t, cfg.ASCIIOnly)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "format: [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "format: csv\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{name: "defaults", modify: func(*Config) {}, ok: true},
		{name: "empty command", modify: func(c *Config) { c.Command = "" }},
		{name: "bad log level", modify: func(c *Config) { c.LogLevel = "trace" }},
		{name: "bad log format", modify: func(c *Config) { c.LogFormat = "xml" }},
		{name: "multi char delimiter", modify: func(c *Config) { c.Delimiter = "||" }},
		{name: "whitespace delimiter", modify: func(c *Config) { c.Delimiter = " " }},
		{name: "unicode delimiter", modify: func(c *Config) { c.Delimiter = "¦" }, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
