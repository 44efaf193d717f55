package operator

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/colstore/internal/conv"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/storage"
	"github.com/hupe1980/colstore/variant"
	"golang.org/x/sync/errgroup"
)

// TableScan selects the rows of its input whose value in one column
// satisfies a comparison with a search value.
type TableScan struct {
	state
	input    Operator
	column   model.ColumnID
	scanType ScanType
	search   variant.Value
	opts     options
}

// NewTableScan creates a scan of column of in's output.
func NewTableScan(in Operator, column model.ColumnID, scanType ScanType, search variant.Value, optFns ...Option) *TableScan {
	return &TableScan{
		input:    in,
		column:   column,
		scanType: scanType,
		search:   search,
		opts:     applyOptions(optFns),
	}
}

// Column returns the scanned column.
func (s *TableScan) Column() model.ColumnID { return s.column }

// ScanType returns the comparison.
func (s *TableScan) ScanType() ScanType { return s.scanType }

// SearchValue returns the value rows are compared against.
func (s *TableScan) SearchValue() variant.Value { return s.search }

// Execute runs the scan.
//
// It fails with ErrNotExecuted if the input has no output, a
// *model.NotFoundError if the column does not exist and a
// *model.TypeMismatchError if the search value is not of the column's kind.
// An input without rows yields an empty result with the input's schema.
func (s *TableScan) Execute(ctx context.Context) error {
	return s.run(func() (*storage.Table, error) {
		return s.execute(ctx)
	})
}

func (s *TableScan) execute(ctx context.Context) (*storage.Table, error) {
	start := time.Now()

	in := s.input.Output()
	if in == nil {
		return nil, ErrNotExecuted
	}
	if !s.scanType.Valid() {
		return nil, &model.NotFoundError{What: "scan type", ID: int(s.scanType)}
	}

	kind, err := in.ColumnType(s.column)
	if err != nil {
		return nil, err
	}
	if err := variant.Check(kind, s.search); err != nil {
		return nil, err
	}

	r := variant.Dispatch[filterResult](kind, filterFactory{scanType: s.scanType, search: s.search})
	if r.err != nil {
		return nil, r.err
	}

	positions, err := s.collect(ctx, in, r.filter)
	if err != nil {
		if s.opts.logger != nil {
			s.opts.logger.Error("table scan failed", "column", s.column, "error", err)
		}
		return nil, err
	}

	out, err := referenceTable(in, positions)
	if err != nil {
		return nil, err
	}

	if s.opts.logger != nil {
		s.opts.logger.Debug("table scan completed",
			"column", s.column,
			"scan_type", s.scanType.String(),
			"chunks", in.ChunkCount(),
			"matches", len(positions),
			"duration", time.Since(start),
		)
	}
	return out, nil
}

// collect filters every chunk and concatenates the matches in chunk order.
func (s *TableScan) collect(ctx context.Context, in *storage.Table, f chunkFilter) (model.PosList, error) {
	fragments := make([]model.PosList, in.ChunkCount())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.parallelism)
	for i := range fragments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id, err := conv.IntToChunkID(i)
			if err != nil {
				return err
			}
			frag, err := s.filterChunk(in, id, f)
			if err != nil {
				return fmt.Errorf("scan chunk %d: %w", id, err)
			}
			fragments[i] = frag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, frag := range fragments {
		n += len(frag)
	}
	positions := make(model.PosList, 0, n)
	for _, frag := range fragments {
		positions = append(positions, frag...)
	}
	return positions, nil
}

func (s *TableScan) filterChunk(in *storage.Table, id model.ChunkID, f chunkFilter) (model.PosList, error) {
	c, err := in.GetChunk(id)
	if err != nil {
		return nil, err
	}
	if c.Size() == 0 {
		return nil, nil
	}
	seg, err := c.Segment(s.column)
	if err != nil {
		return nil, err
	}

	matches := getMatchSet()
	defer putMatchSet(matches)

	if err := f.filter(seg, matches); err != nil {
		return nil, err
	}
	return matches.positions(id), nil
}

// referenceTable builds a table with the schema of in and one chunk of
// ReferenceSegments that all share positions.
func referenceTable(in *storage.Table, positions model.PosList) (*storage.Table, error) {
	chunkSize, err := conv.IntToUint32(in.MaxChunkSize())
	if err != nil {
		return nil, err
	}
	out := storage.NewTable(chunkSize)

	names := in.ColumnNames()
	kinds := in.ColumnTypes()
	segments := make([]storage.Segment, len(names))
	for i, name := range names {
		if err := out.AddColumnDefinition(name, kinds[i]); err != nil {
			return nil, err
		}
		id, err := conv.IntToColumnID(i)
		if err != nil {
			return nil, err
		}
		if segments[i], err = storage.NewReferenceSegment(in, id, positions); err != nil {
			return nil, err
		}
	}

	c, err := storage.NewChunk(segments...)
	if err != nil {
		return nil, err
	}
	if err := out.EmplaceChunk(c); err != nil {
		return nil, err
	}
	return out, nil
}
