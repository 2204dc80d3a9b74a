// Package config loads tablepipe settings.
// Settings come from built-in defaults, an optional YAML file and
// TABLEPIPE_* environment variables, in that order of precedence (lowest
// first). Command-line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Supported values.
var (
	Formats    = []string{"json", "yaml", "markdown", "pdf"}
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Config is the full tablepipe configuration.
type Config struct {
	// Command is the table consumer used when none is given on the
	// command line ("simple", "sparse", "systemctl").
	Command string `yaml:"command"`
	// Format is the output format.
	Format string `yaml:"format"`
	// Delimiter overrides the sparse parser sentinel. It must be a single
	// character; empty keeps the default.
	Delimiter string `yaml:"delimiter"`
	// Join lists multi-word header labels to join with underscores.
	Join []string `yaml:"join"`
	// ASCIIOnly drops non-ASCII characters from the input.
	ASCIIOnly bool `yaml:"ascii_only"`
	// Selector picks the HTML block holding the table for URL sources.
	Selector  string `yaml:"selector"`
	OutputDir string `yaml:"output_dir"`
	Metadata  bool   `yaml:"metadata"`
	Pretty    bool   `yaml:"pretty"`
	Quiet     bool   `yaml:"quiet"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Command:   "sparse",
		Format:    "json",
		Selector:  "pre",
		Pretty:    true,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Variables use the format TABLEPIPE_FIELD.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("TABLEPIPE_COMMAND"); val != "" {
		cfg.Command = val
	}
	if val := os.Getenv("TABLEPIPE_FORMAT"); val != "" {
		cfg.Format = val
	}
	if val := os.Getenv("TABLEPIPE_DELIMITER"); val != "" {
		cfg.Delimiter = val
	}
	if val := os.Getenv("TABLEPIPE_JOIN"); val != "" {
		cfg.Join = strings.Split(val, ",")
	}
	if val := os.Getenv("TABLEPIPE_ASCII_ONLY"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.ASCIIOnly = b
		}
	}
	if val := os.Getenv("TABLEPIPE_SELECTOR"); val != "" {
		cfg.Selector = val
	}
	if val := os.Getenv("TABLEPIPE_OUTPUT_DIR"); val != "" {
		cfg.OutputDir = val
	}
	if val := os.Getenv("TABLEPIPE_QUIET"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Quiet = b
		}
	}
	if val := os.Getenv("TABLEPIPE_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("TABLEPIPE_LOG_FORMAT"); val != "" {
		cfg.LogFormat = val
	}
}

// Validate checks enumerated values and the delimiter.
func (c *Config) Validate() error {
	if c.Command == "" {
		return fmt.Errorf("%w: command must not be empty", ErrInvalidConfig)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q (must be one of %v)", ErrInvalidConfig, c.Format, Formats)
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q (must be one of %v)", ErrInvalidConfig, c.LogLevel, LogLevels)
	}
	if !slices.Contains(LogFormats, c.LogFormat) {
		return fmt.Errorf("%w: log_format %q (must be one of %v)", ErrInvalidConfig, c.LogFormat, LogFormats)
	}
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	return nil
}

// DelimiterRune returns the configured sentinel, or 0 when the default
// should be used.
func (c *Config) DelimiterRune() (rune, error) {
	if c.Delimiter == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("%w: delimiter %q must be a single character", ErrInvalidConfig, c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == ' ' || r == '\t' {
		return 0, fmt.Errorf("%w: delimiter must not be whitespace", ErrInvalidConfig)
	}
	return r, nil
}
