package storage

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/colstore/resource"
)

type options struct {
	logger             *slog.Logger
	compressionWorkers int
	resources          *resource.Controller
}

// Option configures a Table.
type Option func(*options)

// WithLogger sets the logger for the table. Nil disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCompressionWorkers bounds the goroutines one CompressChunk call uses.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithCompressionWorkers(n int) Option {
	return func(o *options) {
		o.compressionWorkers = n
	}
}

// WithResourceController shares worker and memory limits between tables.
// Nil imposes no shared limits.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.compressionWorkers <= 0 {
		o.compressionWorkers = runtime.GOMAXPROCS(0)
	}
	return o
}
