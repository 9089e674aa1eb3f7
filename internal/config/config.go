// Package config provides configuration for the blindfold converter.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/blindfold-chess-go/internal/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // console, json
}

// Config holds all program configuration.
type Config struct {
	// Conversion switches.
	IncludeSideLines bool `yaml:"include_side_lines" toml:"include_side_lines"`
	IncludeComments  bool `yaml:"include_comments" toml:"include_comments"`

	// Lexer behaviour.
	AllowNestedComments bool `yaml:"allow_nested_comments" toml:"allow_nested_comments"`

	// Output format, FormatText or FormatJSON.
	Format string `yaml:"format" toml:"format"`

	Log LogConfig `yaml:"log" toml:"log"`

	// Logger receives lexer warnings and conversion diagnostics.
	Logger *zap.Logger `yaml:"-" toml:"-"`

	// SkippingCurrentGame silences lexer warnings while a game or side
	// line is being skipped.
	SkippingCurrentGame bool `yaml:"-" toml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format: FormatText,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Logger: zap.NewNop(),
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path) //nolint:gosec // G304: config path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parse %s: %v: %w", path, err, errors.ErrInvalidConfig)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %v: %w", path, err, errors.ErrInvalidConfig)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q: %w", ext, errors.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format %q: %w", c.Format, errors.ErrInvalidConfig)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level %q: %w", c.Log.Level, errors.ErrInvalidConfig)
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, errors.ErrInvalidConfig)
	}
	return nil
}

// L returns the configured logger, never nil.
func (c *Config) L() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
