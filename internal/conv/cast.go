package conv

import (
	"fmt"
	"math"

	"github.com/hupe1980/colstore/model"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToChunkID converts int to model.ChunkID safely.
func IntToChunkID(v int) (model.ChunkID, error) {
	u, err := IntToUint32(v)
	return model.ChunkID(u), err
}

// IntToChunkOffset converts int to model.ChunkOffset safely.
func IntToChunkOffset(v int) (model.ChunkOffset, error) {
	u, err := IntToUint32(v)
	return model.ChunkOffset(u), err
}

// IntToColumnID converts int to model.ColumnID safely.
func IntToColumnID(v int) (model.ColumnID, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint16", v)
	}
	return model.ColumnID(v), nil
}
