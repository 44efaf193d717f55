package operator

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colstore/model"
)

// matchSet collects the matching offsets of one chunk.
type matchSet struct {
	rb *roaring.Bitmap
}

// matchSetPool reuses bitmaps across chunks and scans.
var matchSetPool = sync.Pool{
	New: func() any {
		return &matchSet{rb: roaring.New()}
	},
}

func getMatchSet() *matchSet {
	m := matchSetPool.Get().(*matchSet)
	m.rb.Clear()
	return m
}

func putMatchSet(m *matchSet) {
	if m == nil {
		return
	}
	m.rb.Clear()
	matchSetPool.Put(m)
}

func (m *matchSet) add(offset int) {
	m.rb.Add(uint32(offset))
}

// addAll adds the offsets [0, n).
func (m *matchSet) addAll(n int) {
	m.rb.AddRange(0, uint64(n))
}

func (m *matchSet) cardinality() int {
	return int(m.rb.GetCardinality())
}

// positions returns the matches as ascending RowIDs of chunk id.
func (m *matchSet) positions(id model.ChunkID) model.PosList {
	out := make(model.PosList, 0, m.cardinality())
	it := m.rb.Iterator()
	for it.HasNext() {
		out = append(out, model.RowID{ChunkID: id, ChunkOffset: model.ChunkOffset(it.Next())})
	}
	return out
}
