package config

import (
	"time"

	"github.com/quantmind-br/mginspect/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Format    string `mapstructure:"format" yaml:"format"`
	Overwrite bool   `mapstructure:"overwrite" yaml:"overwrite"`
}

// CacheConfig contains summary cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DisplayConfig contains terminal display settings
type DisplayConfig struct {
	Color    bool `mapstructure:"color" yaml:"color"`
	Progress bool `mapstructure:"progress" yaml:"progress"`
}

// validFormats are the summary output formats the renderer understands
var validFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// Validate validates the configuration. Out-of-range values are clamped
// to defaults; impossible values are rejected.
func (c *Config) Validate() error {
	if !validFormats[c.Output.Format] {
		return &domain.ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: "must be one of: text, json, yaml",
		}
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.Directory == "" {
		c.Cache.Directory = CacheDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format != "json" && c.Logging.Format != "pretty" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
