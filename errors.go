package textatlas

import "errors"

// Sentinel errors for textatlas package.
var (
	// ErrNilSource is returned when Build is called without a glyph source.
	ErrNilSource = errors.New("textatlas: nil glyph source")

	// ErrNilContext is returned when the provider has no render context.
	ErrNilContext = errors.New("textatlas: nil render context")
)
