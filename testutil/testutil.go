package testutil

import (
	"math"
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/colstore/storage"
	"github.com/hupe1980/colstore/variant"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int32s returns n values uniform in [0, limit).
func (r *RNG) Int32s(n int, limit int32) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int32, n)
	for i := range out {
		out[i] = r.rand.Int31n(limit)
	}
	return out
}

// Float64s returns n values uniform in [0, 1).
func (r *RNG) Float64s(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()
	}
	return out
}

// Strings returns n values drawn uniformly from distinct strings "s0".."s<distinct-1>".
func (r *RNG) Strings(n, distinct int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, n)
	for i := range out {
		out[i] = "s" + strconv.Itoa(r.rand.Intn(distinct))
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfInt32s returns n Zipfian-distributed values in [0, limit).
// Low values dominate, which yields small dictionaries with skewed ids.
func (r *RNG) ZipfInt32s(n int, limit int32, s float64) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.zipfLocked(int(limit), s))
	}
	return out
}

// Column describes one column of a table built by BuildTable.
type Column struct {
	Name string
	Kind variant.Kind
}

// BuildTable creates a table with the given chunk size and columns and
// appends rows in order.
func BuildTable(chunkSize uint32, columns []Column, rows [][]variant.Value, opts ...storage.Option) (*storage.Table, error) {
	t := storage.NewTable(chunkSize, opts...)
	for _, c := range columns {
		if err := t.AddColumn(c.Name, c.Kind); err != nil {
			return nil, err
		}
	}
	for _, row := range rows {
		if err := t.Append(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Rows turns per-column value slices into rows. All columns must have the
// same length.
func Rows(columns ...[]variant.Value) [][]variant.Value {
	if len(columns) == 0 {
		return nil
	}
	rows := make([][]variant.Value, len(columns[0]))
	for i := range rows {
		row := make([]variant.Value, len(columns))
		for j, col := range columns {
			row[j] = col[i]
		}
		rows[i] = row
	}
	return rows
}

// Values wraps typed values.
func Values[T variant.Scalar](xs ...T) []variant.Value {
	out := make([]variant.Value, len(xs))
	for i, x := range xs {
		out[i] = variant.Of(x)
	}
	return out
}

// Int32Rows returns single-column int32 rows.
func Int32Rows(xs ...int32) [][]variant.Value {
	return Rows(Values(xs...))
}
