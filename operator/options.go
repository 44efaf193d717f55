package operator

import (
	"log/slog"
	"runtime"
)

type options struct {
	logger      *slog.Logger
	parallelism int
}

// Option configures an operator.
type Option func(*options)

// WithLogger sets the logger. Nil disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithParallelism bounds the number of chunks filtered concurrently.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.parallelism <= 0 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	return o
}
