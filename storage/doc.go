// Package storage implements the in-memory columnar data model.
//
// A Table is an ordered sequence of Chunks. Each Chunk holds one Segment per
// column, and all segments of a chunk have the same length. Segments come in
// three encodings:
//
//   - ValueSegment: an uncompressed, appendable list of values
//   - DictionarySegment: a sorted dictionary of distinct values plus an
//     AttributeVector mapping each row to its dictionary id
//   - ReferenceSegment: a PosList addressing rows of a column of another table
//
// # Compression
//
// Table.CompressChunk rebuilds every segment of a chunk as a
// DictionarySegment, one goroutine per column, and then swaps the whole
// segment set in with a single atomic pointer store. Readers observe either
// the old or the new chunk, never a mix. Compressions of one chunk are
// serialized; compressions of different chunks run independently.
//
// # Concurrency
//
// Tables follow a single-writer model: AddColumn and Append must not run
// concurrently with each other or with CompressChunk on the same table.
// Reads (GetChunk, Value, scans) may overlap with CompressChunk freely.
package storage
