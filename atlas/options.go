package atlas

// Option configures an atlas build.
type Option func(*options)

type options struct {
	color bool
	label string
}

// WithColor builds pages on color surfaces instead of alpha-only ones.
// Use it for glyphs of color typefaces.
func WithColor(color bool) Option {
	return func(o *options) {
		o.color = color
	}
}

// WithLabel names the atlas in log records. The default is "mask" or
// "color" depending on WithColor.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.label == "" {
		o.label = "mask"
		if o.color {
			o.label = "color"
		}
	}
	return o
}
