// Package resource bounds the work that table compression may run at once.
//
// A Controller is shared by any number of tables. It limits the number of
// column-compression tasks in flight and, optionally, the transient memory
// those tasks materialize. A nil *Controller imposes no limits.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes caps the bytes reserved by in-flight compression tasks.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxCompressionWorkers is the maximum number of concurrent column
	// compression tasks across all tables sharing the controller.
	// If 0, defaults to 1.
	MaxCompressionWorkers int64
}

// Controller manages shared resources (memory, concurrency).
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Concurrency
	workerSem *semaphore.Weighted
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxCompressionWorkers <= 0 {
		cfg.MaxCompressionWorkers = 1
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxCompressionWorkers),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	return c
}

// AcquireMemory reserves memory for a compression task.
// If a hard limit is configured and usage would exceed it, this blocks until
// memory is released or ctx is canceled. A request larger than the limit
// reserves the whole limit, so it runs alone instead of blocking forever.
//
// The returned amount must be passed to ReleaseMemory.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) (int64, error) {
	if c == nil || bytes <= 0 {
		return 0, nil
	}

	if c.memSem != nil {
		bytes = min(bytes, c.cfg.MemoryLimitBytes)
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return 0, err
		}
	}

	c.memUsed.Add(bytes)
	return bytes, nil
}

// ReleaseMemory releases memory reserved by AcquireMemory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the bytes currently reserved.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// AcquireWorker reserves a compression worker slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// ReleaseWorker releases a compression worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}
