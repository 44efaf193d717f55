package colstore

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/operator"
	"github.com/hupe1980/colstore/resource"
	"github.com/hupe1980/colstore/testutil"
	"github.com/hupe1980/colstore/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPeopleStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s := New(opts...)
	_, err := s.CreateTable("people",
		ColumnDefinition{Name: "name", Kind: variant.KindString},
		ColumnDefinition{Name: "age", Kind: variant.KindInt32},
	)
	require.NoError(t, err)

	ctx := context.Background()
	rows := []struct {
		name string
		age  int32
	}{
		{"Bill", 68}, {"Steve", 56}, {"Alexander", 40}, {"Steve", 33}, {"Hasso", 80}, {"Bill", 21},
	}
	for _, r := range rows {
		require.NoError(t, s.Insert(ctx, "people", variant.String(r.name), variant.Int32(r.age)))
	}
	return s
}

func TestStoreTables(t *testing.T) {
	s := New()

	_, err := s.CreateTable("b", ColumnDefinition{Name: "x", Kind: variant.KindInt64})
	require.NoError(t, err)
	tbl, err := s.CreateTable("a", ColumnDefinition{Name: "x", Kind: variant.KindFloat32})
	require.NoError(t, err)

	_, err = s.CreateTable("a")
	assert.ErrorIs(t, err, ErrSchema)

	_, err = s.CreateTable("c", ColumnDefinition{Name: "x", Kind: variant.KindInt32}, ColumnDefinition{Name: "x", Kind: variant.KindInt32})
	assert.ErrorIs(t, err, ErrSchema)
	assert.False(t, s.Registry().Has("c"))

	got, err := s.Table("a")
	require.NoError(t, err)
	assert.Same(t, tbl, got)
	assert.Equal(t, []string{"a", "b"}, s.TableNames())

	require.NoError(t, s.DropTable("a"))
	_, err = s.Table("a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DropTable("a"), ErrNotFound)

	s.Reset()
	assert.Empty(t, s.TableNames())
}

func TestStoreInsert(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	s := newPeopleStore(t, WithMetricsCollector(metrics))
	ctx := context.Background()

	err := s.Insert(ctx, "people", variant.String("x"))
	assert.ErrorIs(t, err, ErrSchema)

	err = s.Insert(ctx, "people", variant.Int32(1), variant.Int32(2))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	err = s.Insert(ctx, "missing", variant.Int32(1))
	assert.ErrorIs(t, err, ErrNotFound)

	tbl, err := s.Table("people")
	require.NoError(t, err)
	assert.Equal(t, 6, tbl.RowCount())

	stats := metrics.GetStats()
	assert.Equal(t, int64(9), stats.AppendCount)
	assert.Equal(t, int64(3), stats.AppendErrors)
}

func TestStoreScan(t *testing.T) {
	s := newPeopleStore(t, WithChunkSize(4), WithScanParallelism(2))
	ctx := context.Background()

	out, err := s.Scan(ctx, "people", "name", operator.Equals, variant.String("Steve"))
	require.NoError(t, err)
	assert.Equal(t, 2, out.RowCount())
	assert.Equal(t, []string{"name", "age"}, out.ColumnNames())

	ages := make([]variant.Value, 0, 2)
	for i := 0; i < out.RowCount(); i++ {
		v, err := out.Value(1, model.RowID{ChunkOffset: model.ChunkOffset(i)})
		require.NoError(t, err)
		ages = append(ages, v)
	}
	assert.Equal(t, []variant.Value{variant.Int32(56), variant.Int32(33)}, ages)

	_, err = s.Scan(ctx, "people", "height", operator.Equals, variant.Int32(1))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Scan(ctx, "people", "age", operator.Equals, variant.Int64(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = s.Scan(ctx, "nobody", "age", operator.Equals, variant.Int32(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCompress(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	rc := resource.NewController(resource.Config{MaxCompressionWorkers: 2})
	s := newPeopleStore(t,
		WithChunkSize(4),
		WithMetricsCollector(metrics),
		WithCompressionWorkers(2),
		WithResourceController(rc),
	)
	ctx := context.Background()

	before, err := s.Scan(ctx, "people", "age", operator.LessThanOrEqual, variant.Int32(56))
	require.NoError(t, err)

	require.NoError(t, s.Compress(ctx, "people", 0))
	assert.ErrorIs(t, s.Compress(ctx, "people", 7), ErrNotFound)
	require.NoError(t, s.CompressAll(ctx, "people"))

	tbl, err := s.Table("people")
	require.NoError(t, err)
	for i := 0; i < tbl.ChunkCount(); i++ {
		c, err := tbl.GetChunk(model.ChunkID(i))
		require.NoError(t, err)
		assert.True(t, c.Compressed())
	}

	after, err := s.Scan(ctx, "people", "age", operator.LessThanOrEqual, variant.Int32(56))
	require.NoError(t, err)
	assert.Equal(t, before.RowCount(), after.RowCount())
	for i := 0; i < after.RowCount(); i++ {
		row := model.RowID{ChunkOffset: model.ChunkOffset(i)}
		want, err := before.Value(1, row)
		require.NoError(t, err)
		got, err := after.Value(1, row)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	require.NoError(t, s.Insert(ctx, "people", variant.String("Ada"), variant.Int32(36)))
	assert.Equal(t, 3, tbl.ChunkCount())

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.CompressCount)
	assert.Equal(t, int64(1), stats.CompressErrors)
	assert.Positive(t, stats.BytesBefore)
	assert.Positive(t, stats.BytesAfter)
	assert.Equal(t, int64(2), stats.ScanCount)
}

func TestStoreRandomData(t *testing.T) {
	rng := testutil.NewRNG(42)
	values := rng.Int32s(500, 1000)

	s := New(WithChunkSize(128))
	_, err := s.CreateTable("t", ColumnDefinition{Name: "v", Kind: variant.KindInt32})
	require.NoError(t, err)
	ctx := context.Background()
	for _, v := range values {
		require.NoError(t, s.Insert(ctx, "t", variant.Int32(v)))
	}

	want := 0
	for _, v := range values {
		if v >= 500 {
			want++
		}
	}

	out, err := s.Scan(ctx, "t", "v", operator.GreaterThanOrEqual, variant.Int32(500))
	require.NoError(t, err)
	assert.Equal(t, want, out.RowCount())

	require.NoError(t, s.CompressAll(ctx, "t"))
	out, err = s.Scan(ctx, "t", "v", operator.GreaterThanOrEqual, variant.Int32(500))
	require.NoError(t, err)
	assert.Equal(t, want, out.RowCount())
}

func TestStoreDescribe(t *testing.T) {
	s := newPeopleStore(t, WithChunkSize(4))

	var buf bytes.Buffer
	require.NoError(t, s.Describe(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"people", "2", "6", "2"}, strings.Fields(lines[1]))
}

func TestStoreLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newPeopleStore(t, WithLogger(logger))
	ctx := context.Background()

	require.NoError(t, s.CompressAll(ctx, "people"))
	_, err := s.Scan(ctx, "people", "age", operator.GreaterThan, variant.Int32(50))
	require.NoError(t, err)
	_, err = s.Scan(ctx, "people", "age", operator.GreaterThan, variant.String("x"))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"insert completed"`)
	assert.Contains(t, out, `"msg":"chunk compressed"`)
	assert.Contains(t, out, `"msg":"compression completed"`)
	assert.Contains(t, out, `"msg":"scan completed"`)
	assert.Contains(t, out, `"msg":"scan failed"`)
	assert.Contains(t, out, `"table":"people"`)
}

func TestStoreNilOptions(t *testing.T) {
	s := New(WithLogger(nil), WithMetricsCollector(nil), nil)
	_, err := s.CreateTable("t", ColumnDefinition{Name: "v", Kind: variant.KindInt32})
	require.NoError(t, err)
	require.NoError(t, s.Insert(context.Background(), "t", variant.Int32(1)))
}
