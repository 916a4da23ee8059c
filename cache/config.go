package cache

import (
	"errors"
	"fmt"
)

// DefaultMemoryBudget is the texture memory a RenderCache keeps by default.
const DefaultMemoryBudget = 64 << 20

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("cache: invalid config")

// ConfigError reports the Config field that failed validation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cache: invalid config.%s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Config holds the settings of a RenderCache.
type Config struct {
	// MemoryBudget is the total texture memory, in bytes, the cache keeps
	// before it evicts least recently used atlases. 0 means unlimited.
	MemoryBudget int64

	// MaxTextureSize limits atlas pages below the context's own limit.
	// 0 uses the context limit.
	MaxTextureSize int
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{MemoryBudget: DefaultMemoryBudget}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MemoryBudget < 0 {
		return &ConfigError{Field: "MemoryBudget", Reason: "must be non-negative"}
	}
	if c.MaxTextureSize < 0 {
		return &ConfigError{Field: "MaxTextureSize", Reason: "must be non-negative"}
	}
	return nil
}

// Option configures a RenderCache.
type Option func(*Config)

// WithMemoryBudget sets the texture memory budget in bytes. 0 disables
// eviction.
func WithMemoryBudget(bytes int64) Option {
	return func(c *Config) {
		c.MemoryBudget = bytes
	}
}

// WithMaxTextureSize limits the page size of cached atlases.
func WithMaxTextureSize(n int) Option {
	return func(c *Config) {
		c.MaxTextureSize = n
	}
}
