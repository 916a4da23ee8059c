package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrNoGlyphs is returned when an atlas is built from no glyphs.
	ErrNoGlyphs = errors.New("atlas: no glyphs")

	// ErrGlyphTooLarge is returned when the first glyph's final pixel size
	// exceeds MaxGlyphSize.
	ErrGlyphTooLarge = errors.New("atlas: glyph too large")

	// ErrInvalidConfig is returned for a non-positive scale or texture size.
	ErrInvalidConfig = errors.New("atlas: invalid config")
)

// GlyphSizeError reports the font size and scale that made a glyph too large.
type GlyphSizeError struct {
	Size  float32
	Scale float32
}

func (e *GlyphSizeError) Error() string {
	return fmt.Sprintf("atlas: glyph too large: font size %g at scale %g exceeds %d px",
		e.Size, e.Scale, MaxGlyphSize)
}

func (e *GlyphSizeError) Unwrap() error {
	return ErrGlyphTooLarge
}

// ConfigError represents an invalid build parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
