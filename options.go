package tiptapify

// ConvertOptions holds options for text and markdown conversion.
type ConvertOptions struct {
	Config *Config
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// WithAutolink sets whether bare URLs get a link mark.
// The config is copied so the shared default is never modified.
func WithAutolink(enable bool) Option {
	return func(opts *ConvertOptions) {
		cfg := *opts.Config
		cfg.Autolink = enable
		opts.Config = &cfg
	}
}

// WithLinkProtocols sets the URL schemes accepted by the autolinker.
func WithLinkProtocols(protocols ...string) Option {
	return func(opts *ConvertOptions) {
		cfg := *opts.Config
		cfg.LinkProtocols = append([]string(nil), protocols...)
		opts.Config = &cfg
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
