package storage

import (
	"slices"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/variant"
)

// Chunk holds one segment per column. All segments have the same length.
type Chunk struct {
	segments []Segment
}

// NewChunk creates a chunk from segments.
// It fails with a *model.SchemaError if the segments differ in length.
func NewChunk(segments ...Segment) (*Chunk, error) {
	c := &Chunk{segments: make([]Segment, 0, len(segments))}
	for _, s := range segments {
		if err := c.AddSegment(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddSegment adds the segment of the next column.
// It fails with a *model.SchemaError if s differs in length from the others.
func (c *Chunk) AddSegment(s Segment) error {
	if len(c.segments) > 0 && s.Size() != c.Size() {
		return &model.SchemaError{Op: "add segment", Expected: c.Size(), Actual: s.Size(), Reason: "segment length mismatch"}
	}
	c.segments = append(c.segments, s)
	return nil
}

// Append adds one value to each segment.
//
// The row is validated against every segment first, so a failed Append
// leaves the chunk unchanged.
func (c *Chunk) Append(row []variant.Value) error {
	if len(row) != len(c.segments) {
		return &model.SchemaError{Op: "append", Expected: len(c.segments), Actual: len(row), Reason: "row length mismatch"}
	}
	for i, s := range c.segments {
		if s.Encoding() != EncodingValue {
			return &model.ImmutableError{Encoding: s.Encoding().String()}
		}
		if err := variant.Check(s.Kind(), row[i]); err != nil {
			return err
		}
	}
	for i, s := range c.segments {
		if err := s.Append(row[i]); err != nil {
			return err
		}
	}
	return nil
}

// Segment returns the segment of column id.
func (c *Chunk) Segment(id model.ColumnID) (Segment, error) {
	if int(id) >= len(c.segments) {
		return nil, &model.NotFoundError{What: "column", ID: int(id)}
	}
	return c.segments[id], nil
}

// Segments returns a copy of the segment list.
func (c *Chunk) Segments() []Segment { return slices.Clone(c.segments) }

// ColumnCount returns the number of segments.
func (c *Chunk) ColumnCount() int { return len(c.segments) }

// Size returns the number of rows.
func (c *Chunk) Size() int {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[0].Size()
}

// Mutable reports whether every segment accepts appends.
func (c *Chunk) Mutable() bool {
	return c.allEncoded(EncodingValue)
}

// Compressed reports whether every segment is dictionary-encoded.
// A chunk without columns is never compressed.
func (c *Chunk) Compressed() bool {
	return len(c.segments) > 0 && c.allEncoded(EncodingDictionary)
}

func (c *Chunk) allEncoded(e Encoding) bool {
	for _, s := range c.segments {
		if s.Encoding() != e {
			return false
		}
	}
	return true
}

// EstimateMemoryUsage returns the sum over all segments.
func (c *Chunk) EstimateMemoryUsage() int {
	n := 0
	for _, s := range c.segments {
		n += s.EstimateMemoryUsage()
	}
	return n
}

func (c *Chunk) hasEncoding(e Encoding) bool {
	for _, s := range c.segments {
		if s.Encoding() == e {
			return true
		}
	}
	return false
}
