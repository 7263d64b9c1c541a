package multimap

// Options configures a MultiMap.
type Options struct {
	logger Logger // Receives maintenance and corruption reports. Never lookups.
}

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		logger: DiscardLogger{},
	}
}

// Option configures a MultiMap using the functional options pattern.
type Option func(*Options)

// WithLogger routes log output to logger. A nil logger discards output.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger Logger) Option {
	return func(opts *Options) {
		if logger == nil {
			logger = DiscardLogger{}
		}
		opts.logger = logger
	}
}
