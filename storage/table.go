package storage

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/colstore/internal/conv"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/variant"
)

// DefaultChunkSize is the chunk capacity used when none is given.
// It is large enough that a table effectively keeps a single chunk.
const DefaultChunkSize = math.MaxUint32 - 1

// chunkSlot is the stable home of one chunk position. Compression replaces
// the chunk behind the pointer; the position itself never changes.
type chunkSlot struct {
	chunk      atomic.Pointer[Chunk]
	compressMu sync.Mutex
}

func newChunkSlot(c *Chunk) *chunkSlot {
	s := &chunkSlot{}
	s.chunk.Store(c)
	return s
}

// Table is an ordered sequence of chunks plus the column schema.
type Table struct {
	mu           sync.RWMutex
	maxChunkSize int
	columnNames  []string
	columnTypes  []variant.Kind
	chunks       []*chunkSlot
	opts         options
}

// NewTable creates an empty table with one empty chunk.
// If maxChunkSize is 0, DefaultChunkSize is used.
func NewTable(maxChunkSize uint32, optFns ...Option) *Table {
	if maxChunkSize == 0 {
		maxChunkSize = DefaultChunkSize
	}
	return &Table{
		maxChunkSize: int(maxChunkSize),
		chunks:       []*chunkSlot{newChunkSlot(&Chunk{})},
		opts:         applyOptions(optFns),
	}
}

// AddColumnDefinition adds a column to the schema without adding segments.
//
// It is used to build tables whose chunks are emplaced afterwards, such as
// operator outputs.
func (t *Table) AddColumnDefinition(name string, kind variant.Kind) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkColumnLocked(name, kind); err != nil {
		return err
	}
	t.columnNames = append(t.columnNames, name)
	t.columnTypes = append(t.columnTypes, kind)
	return nil
}

// AddColumn adds a column and an empty ValueSegment to every chunk.
// It fails with a *model.SchemaError if the table holds any row.
//
// Since the table is empty, every chunk is replaced by a fresh chunk of
// ValueSegments for the new schema, including chunks that were compressed
// or emplaced while empty.
func (t *Table) AddColumn(name string, kind variant.Kind) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.rowCountLocked() > 0 {
		return &model.SchemaError{Op: "add column", Column: name, Reason: "table is not empty"}
	}
	if err := t.checkColumnLocked(name, kind); err != nil {
		return err
	}

	kinds := append(slices.Clip(t.columnTypes), kind)
	next := make([]*chunkSlot, len(t.chunks))
	for i := range t.chunks {
		c, err := newMutableChunk(kinds)
		if err != nil {
			return err
		}
		next[i] = newChunkSlot(c)
	}

	t.chunks = next
	t.columnNames = append(t.columnNames, name)
	t.columnTypes = kinds
	return nil
}

func (t *Table) checkColumnLocked(name string, kind variant.Kind) error {
	if !kind.Valid() {
		return &model.TypeMismatchError{Expected: "column type", Actual: kind.String()}
	}
	if slices.Contains(t.columnNames, name) {
		return &model.SchemaError{Op: "add column", Column: name, Reason: "duplicate column name"}
	}
	if _, err := conv.IntToColumnID(len(t.columnNames)); err != nil {
		return &model.SchemaError{Op: "add column", Column: name, Reason: "too many columns"}
	}
	return nil
}

// Append adds a row.
//
// The row must have one value per column, each of the column's declared
// kind. If the last chunk is full or no longer holds only ValueSegments, a new
// chunk of empty ValueSegments is started first. A chunk of ReferenceSegments
// rejects the row with a *model.ImmutableError. A failed Append leaves the
// table unchanged.
func (t *Table) Append(row []variant.Value) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(row) != len(t.columnTypes) {
		return &model.SchemaError{Op: "append", Expected: len(t.columnTypes), Actual: len(row), Reason: "row length mismatch"}
	}
	for i, kind := range t.columnTypes {
		if err := variant.Check(kind, row[i]); err != nil {
			return fmt.Errorf("append column %q: %w", t.columnNames[i], err)
		}
	}

	last := t.chunks[len(t.chunks)-1].chunk.Load()
	if last.hasEncoding(EncodingReference) {
		return &model.ImmutableError{Encoding: EncodingReference.String()}
	}
	if last.Size() < t.maxChunkSize && last.Mutable() {
		return last.Append(row)
	}

	id, err := chunkIDFor("append", len(t.chunks))
	if err != nil {
		return err
	}
	c, err := t.newMutableChunkLocked()
	if err != nil {
		return err
	}
	if err := c.Append(row); err != nil {
		return err
	}
	t.chunks = append(t.chunks, newChunkSlot(c))

	if t.opts.logger != nil {
		t.opts.logger.Debug("chunk added", "chunk", id, "columns", len(t.columnTypes))
	}
	return nil
}

func (t *Table) newMutableChunkLocked() (*Chunk, error) {
	return newMutableChunk(t.columnTypes)
}

func newMutableChunk(kinds []variant.Kind) (*Chunk, error) {
	c := &Chunk{segments: make([]Segment, 0, len(kinds))}
	for _, kind := range kinds {
		s, err := NewValueSegmentOf(kind)
		if err != nil {
			return nil, err
		}
		c.segments = append(c.segments, s)
	}
	return c, nil
}

// chunkIDFor returns the id of chunk position n, or a *model.SchemaError if
// the table cannot address another chunk.
func chunkIDFor(op string, n int) (model.ChunkID, error) {
	id, err := conv.IntToChunkID(n)
	if err != nil {
		return 0, &model.SchemaError{Op: op, Reason: "too many chunks"}
	}
	return id, nil
}

// EmplaceChunk adds a prebuilt chunk.
//
// If the table consists of a single empty chunk, that chunk is replaced;
// otherwise c is appended. The segments of c must match the schema.
func (t *Table) EmplaceChunk(c *Chunk) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if c.ColumnCount() != len(t.columnTypes) {
		return &model.SchemaError{Op: "emplace chunk", Expected: len(t.columnTypes), Actual: c.ColumnCount(), Reason: "column count mismatch"}
	}
	for i, s := range c.segments {
		if s.Kind() != t.columnTypes[i] {
			return &model.TypeMismatchError{Expected: t.columnTypes[i].String(), Actual: s.Kind().String()}
		}
	}

	if len(t.chunks) == 1 && t.chunks[0].chunk.Load().Size() == 0 {
		t.chunks[0] = newChunkSlot(c)
		return nil
	}
	if _, err := chunkIDFor("emplace chunk", len(t.chunks)); err != nil {
		return err
	}
	t.chunks = append(t.chunks, newChunkSlot(c))
	return nil
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.columnNames)
}

// RowCount returns the sum of all chunk sizes.
func (t *Table) RowCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rowCountLocked()
}

func (t *Table) rowCountLocked() int {
	n := 0
	for _, slot := range t.chunks {
		n += slot.chunk.Load().Size()
	}
	return n
}

// ChunkCount returns the number of chunks.
func (t *Table) ChunkCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.chunks)
}

// MaxChunkSize returns the target chunk capacity.
func (t *Table) MaxChunkSize() int { return t.maxChunkSize }

// GetChunk returns the current chunk at id.
//
// The returned chunk is a consistent snapshot: a concurrent CompressChunk
// installs a new chunk instead of modifying this one.
func (t *Table) GetChunk(id model.ChunkID) (*Chunk, error) {
	slot, err := t.slot(id)
	if err != nil {
		return nil, err
	}
	return slot.chunk.Load(), nil
}

func (t *Table) slot(id model.ChunkID) (*chunkSlot, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if uint64(id) >= uint64(len(t.chunks)) {
		return nil, &model.NotFoundError{What: "chunk", ID: int(id)}
	}
	return t.chunks[id], nil
}

// ColumnIDByName returns the position of the named column.
func (t *Table) ColumnIDByName(name string) (model.ColumnID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i := slices.Index(t.columnNames, name)
	if i < 0 {
		return 0, &model.NotFoundError{What: "column", Name: name}
	}
	return model.ColumnID(i), nil
}

// ColumnName returns the name of column id.
func (t *Table) ColumnName(id model.ColumnID) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(id) >= len(t.columnNames) {
		return "", &model.NotFoundError{What: "column", ID: int(id)}
	}
	return t.columnNames[id], nil
}

// ColumnType returns the declared kind of column id.
func (t *Table) ColumnType(id model.ColumnID) (variant.Kind, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(id) >= len(t.columnTypes) {
		return variant.KindNull, &model.NotFoundError{What: "column", ID: int(id)}
	}
	return t.columnTypes[id], nil
}

// ColumnNames returns a copy of the column names in order.
func (t *Table) ColumnNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.columnNames)
}

// ColumnTypes returns a copy of the column kinds in order.
func (t *Table) ColumnTypes() []variant.Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.columnTypes)
}

// Value returns the value of column at row.
func (t *Table) Value(column model.ColumnID, row model.RowID) (variant.Value, error) {
	c, err := t.GetChunk(row.ChunkID)
	if err != nil {
		return variant.Value{}, err
	}
	s, err := c.Segment(column)
	if err != nil {
		return variant.Value{}, err
	}
	return s.ValueAt(row.ChunkOffset)
}

// EstimateMemoryUsage returns the sum over all chunks.
func (t *Table) EstimateMemoryUsage() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, slot := range t.chunks {
		n += slot.chunk.Load().EstimateMemoryUsage()
	}
	return n
}
