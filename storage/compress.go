package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/colstore/model"
	"golang.org/x/sync/errgroup"
)

// CompressChunk replaces every segment of chunk id with a DictionarySegment.
//
// Columns are encoded concurrently from the chunk as it was when the call
// started. Once all columns are done, the new segment set is installed with
// a single atomic store, so readers see either the old or the new chunk.
// Calls for the same chunk are serialized. On error, including cancellation
// of ctx, the chunk is left untouched.
func (t *Table) CompressChunk(ctx context.Context, id model.ChunkID) error {
	slot, err := t.slot(id)
	if err != nil {
		return err
	}

	slot.compressMu.Lock()
	defer slot.compressMu.Unlock()

	start := time.Now()
	src := slot.chunk.Load()
	segments := src.Segments()
	compressed := make([]Segment, len(segments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.opts.compressionWorkers)
	for i, s := range segments {
		g.Go(func() error {
			out, err := t.compressSegment(gctx, s)
			if err != nil {
				return fmt.Errorf("column %d: %w", i, err)
			}
			compressed[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if t.opts.logger != nil {
			t.opts.logger.Error("chunk compression failed", "chunk", id, "error", err)
		}
		return fmt.Errorf("compress chunk %d: %w", id, err)
	}

	next := &Chunk{segments: compressed}
	slot.chunk.Store(next)

	if t.opts.logger != nil {
		t.opts.logger.Info("chunk compressed",
			"chunk", id,
			"rows", next.Size(),
			"columns", len(compressed),
			"bytes_before", src.EstimateMemoryUsage(),
			"bytes_after", next.EstimateMemoryUsage(),
			"memory_limit", t.opts.resources.MemoryLimit(),
			"duration", time.Since(start),
		)
	}
	return nil
}

func (t *Table) compressSegment(ctx context.Context, src Segment) (Segment, error) {
	rc := t.opts.resources
	if err := rc.AcquireWorker(ctx); err != nil {
		return nil, err
	}
	defer rc.ReleaseWorker()

	reserved, err := rc.AcquireMemory(ctx, int64(src.EstimateMemoryUsage()))
	if err != nil {
		return nil, err
	}
	defer rc.ReleaseMemory(reserved)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Compress(src)
}
