package config

import "go.uber.org/zap"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithSideLines controls whether side lines are converted.
func (b *ConfigBuilder) WithSideLines(enabled bool) *ConfigBuilder {
	b.cfg.IncludeSideLines = enabled
	return b
}

// WithComments controls whether comments are copied into the output.
func (b *ConfigBuilder) WithComments(enabled bool) *ConfigBuilder {
	b.cfg.IncludeComments = enabled
	return b
}

// WithNestedComments allows braces to nest inside comments.
func (b *ConfigBuilder) WithNestedComments(enabled bool) *ConfigBuilder {
	b.cfg.AllowNestedComments = enabled
	return b
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format string) *ConfigBuilder {
	b.cfg.Format = format
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogger sets the logger.
func (b *ConfigBuilder) WithLogger(logger *zap.Logger) *ConfigBuilder {
	b.cfg.Logger = logger
	return b
}
