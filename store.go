package colstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/colstore/catalog"
	"github.com/hupe1980/colstore/internal/conv"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/operator"
	"github.com/hupe1980/colstore/storage"
	"github.com/hupe1980/colstore/variant"
)

// ColumnDefinition names and types a column.
type ColumnDefinition struct {
	Name string
	Kind variant.Kind
}

// Store is a set of named tables that share configuration.
//
// The zero value is not usable; create stores with New. A Store owns its
// registry, so stores are independent of each other.
type Store struct {
	registry *catalog.Registry
	opts     options
}

// New creates an empty store.
func New(optFns ...Option) *Store {
	return &Store{
		registry: catalog.NewRegistry(),
		opts:     applyOptions(optFns),
	}
}

// Registry returns the registry holding the store's tables.
func (s *Store) Registry() *catalog.Registry { return s.registry }

// CreateTable creates and registers an empty table.
// It fails with a *model.SchemaError if name is taken or a column is invalid.
func (s *Store) CreateTable(name string, columns ...ColumnDefinition) (*storage.Table, error) {
	t := storage.NewTable(s.opts.chunkSize,
		storage.WithLogger(s.opts.logger.WithTable(name).Logger),
		storage.WithCompressionWorkers(s.opts.compressionWorkers),
		storage.WithResourceController(s.opts.resources),
	)
	for _, c := range columns {
		if err := t.AddColumn(c.Name, c.Kind); err != nil {
			return nil, fmt.Errorf("create table %q: %w", name, err)
		}
	}
	if err := s.registry.Add(name, t); err != nil {
		return nil, err
	}

	s.opts.logger.Debug("table created", "table", name, "columns", len(columns))
	return t, nil
}

// Table returns the named table.
func (s *Store) Table(name string) (*storage.Table, error) {
	return s.registry.Get(name)
}

// DropTable removes the named table. Scan results that reference it stay valid.
func (s *Store) DropTable(name string) error {
	return s.registry.Drop(name)
}

// TableNames returns the table names in ascending order.
func (s *Store) TableNames() []string {
	return s.registry.Names()
}

// Reset drops all tables.
func (s *Store) Reset() {
	s.registry.Reset()
}

// Insert appends one row to the named table.
func (s *Store) Insert(ctx context.Context, table string, row ...variant.Value) (err error) {
	start := time.Now()
	defer func() {
		s.opts.metricsCollector.RecordAppend(time.Since(start), err)
		s.opts.logger.LogAppend(ctx, table, err)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	t, err := s.registry.Get(table)
	if err != nil {
		return err
	}
	return t.Append(row)
}

// Compress dictionary-encodes one chunk of the named table.
func (s *Store) Compress(ctx context.Context, table string, chunk model.ChunkID) (err error) {
	defer func() {
		s.opts.logger.WithChunk(chunk).LogCompress(ctx, table, 1, err)
	}()

	t, err := s.registry.Get(table)
	if err != nil {
		return err
	}
	return s.compressChunk(ctx, t, chunk)
}

// CompressAll dictionary-encodes every chunk of the named table that holds
// rows and is not compressed yet. Later inserts start a new chunk.
func (s *Store) CompressAll(ctx context.Context, table string) (err error) {
	n := 0
	defer func() {
		s.opts.logger.LogCompress(ctx, table, n, err)
	}()

	t, err := s.registry.Get(table)
	if err != nil {
		return err
	}
	for i := 0; i < t.ChunkCount(); i++ {
		id, err := conv.IntToChunkID(i)
		if err != nil {
			return err
		}
		c, err := t.GetChunk(id)
		if err != nil {
			return err
		}
		if c.Size() == 0 || c.Compressed() {
			continue
		}
		if err := s.compressChunk(ctx, t, id); err != nil {
			return err
		}
		n++
	}
	return nil
}

func (s *Store) compressChunk(ctx context.Context, t *storage.Table, id model.ChunkID) (err error) {
	start := time.Now()
	before, after := 0, 0
	defer func() {
		s.opts.metricsCollector.RecordCompress(before, after, time.Since(start), err)
	}()

	c, err := t.GetChunk(id)
	if err != nil {
		return err
	}
	before = c.EstimateMemoryUsage()

	if err := t.CompressChunk(ctx, id); err != nil {
		return err
	}

	c, err = t.GetChunk(id)
	if err != nil {
		return err
	}
	after = c.EstimateMemoryUsage()
	return nil
}

// Scan returns the rows of the named table whose column satisfies the
// comparison with search. The result is a table of references into the
// scanned table; it is not registered in the store.
func (s *Store) Scan(ctx context.Context, table, column string, scanType operator.ScanType, search variant.Value) (out *storage.Table, err error) {
	start := time.Now()
	defer func() {
		matches := 0
		if out != nil {
			matches = out.RowCount()
		}
		s.opts.metricsCollector.RecordScan(matches, time.Since(start), err)
		s.opts.logger.LogScan(ctx, table, column, scanType.String(), matches, time.Since(start), err)
	}()

	get := operator.NewGetTable(s.registry, table)
	if err := get.Execute(ctx); err != nil {
		return nil, err
	}
	id, err := get.Output().ColumnIDByName(column)
	if err != nil {
		return nil, err
	}

	scan := operator.NewTableScan(get, id, scanType, search,
		operator.WithParallelism(s.opts.scanParallelism),
		operator.WithLogger(s.opts.logger.WithTable(table).Logger),
	)
	if err := scan.Execute(ctx); err != nil {
		return nil, err
	}
	return scan.Output(), nil
}

// Describe writes a summary of every table to w.
func (s *Store) Describe(w io.Writer) error {
	return s.registry.Print(w)
}
