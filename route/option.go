package route

import "github.com/alexhholmes/multimap"

// Options configures a Table.
type Options struct {
	cacheSize uint32          // Number of destinations whose hops are kept materialized.
	logger    multimap.Logger // Receives route changes.
}

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		cacheSize: 1024,
		logger:    multimap.DiscardLogger{},
	}
}

// Option configures a Table using the functional options pattern.
type Option func(*Options)

// WithCacheSize sets how many destinations the lookup cache holds.
func WithCacheSize(n uint32) Option {
	return func(opts *Options) {
		opts.cacheSize = n
	}
}

// WithLogger routes log output to logger. A nil logger discards output.
func WithLogger(logger multimap.Logger) Option {
	return func(opts *Options) {
		if logger == nil {
			logger = multimap.DiscardLogger{}
		}
		opts.logger = logger
	}
}
