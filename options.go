package textatlas

// Option configures a text atlas build.
//
// Example:
//
//	ta, err := textatlas.Build(glyphs, provider, 2, textatlas.WithMaxTextureSize(1024))
type Option func(*options)

// options holds optional configuration for Build.
type options struct {
	maxTextureSize int
}

// WithMaxTextureSize limits atlas pages to n pixels per side. The limit
// never exceeds the context's MaxTextureSize; non-positive values are
// ignored.
func WithMaxTextureSize(n int) Option {
	return func(o *options) {
		o.maxTextureSize = n
	}
}

// pageLimit returns the page size limit under a context limit.
func (o options) pageLimit(contextMax int) int {
	if o.maxTextureSize > 0 && o.maxTextureSize < contextMax {
		return o.maxTextureSize
	}
	return contextMax
}
