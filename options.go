package colstore

import (
	"log/slog"

	"github.com/hupe1980/colstore/resource"
)

type options struct {
	metricsCollector   MetricsCollector
	logger             *Logger
	chunkSize          uint32
	scanParallelism    int
	compressionWorkers int
	resources          *resource.Controller
}

// Option configures a Store.
type Option func(*options)

// WithChunkSize sets the row capacity of chunks in tables created by the
// store. If 0, storage.DefaultChunkSize is used, which keeps every table in
// a single chunk.
func WithChunkSize(n uint32) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithScanParallelism bounds the chunks a scan filters concurrently.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithScanParallelism(n int) Option {
	return func(o *options) {
		o.scanParallelism = n
	}
}

// WithCompressionWorkers bounds the columns one chunk compression encodes
// concurrently. If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithCompressionWorkers(n int) Option {
	return func(o *options) {
		o.compressionWorkers = n
	}
}

// WithResourceController shares compression limits across all tables of
// the store.
//
// Example:
//
//	rc := resource.NewController(resource.Config{
//	    MaxCompressionWorkers: 4,
//	    MemoryLimitBytes:      256 << 20,
//	})
//	store := colstore.New(colstore.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &colstore.BasicMetricsCollector{}
//	store := colstore.New(colstore.WithMetricsCollector(metrics))
//	// ... use store ...
//	stats := metrics.GetStats()
//	fmt.Printf("Scans: %d, Avg latency: %dns\n", stats.ScanCount, stats.ScanAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := colstore.NewJSONLogger(slog.LevelInfo)
//	store := colstore.New(colstore.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
