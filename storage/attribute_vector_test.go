//go:build amd64 || arm64

package storage

import (
	"math"
	"testing"

	"github.com/hupe1980/colstore/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttributeVectorWidth(t *testing.T) {
	tests := []struct {
		unique int
		width  int
	}{
		{0, 1},
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 4},
		{math.MaxUint32, 4},
	}
	for _, tt := range tests {
		av, err := NewAttributeVector(tt.unique, 3)
		require.NoError(t, err)
		assert.Equal(t, tt.width, av.Width(), "unique=%d", tt.unique)
		assert.Equal(t, 3, av.Len())
	}
}

func TestNewAttributeVectorCapacity(t *testing.T) {
	_, err := NewAttributeVector(math.MaxUint32+1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCapacity)
}

func TestAttributeVectorSetGet(t *testing.T) {
	av, err := NewAttributeVector(10, 4)
	require.NoError(t, err)

	require.NoError(t, av.Set(0, 3))
	require.NoError(t, av.Set(3, 9))
	assert.Equal(t, model.ValueID(3), av.Get(0))
	assert.Equal(t, model.ValueID(0), av.Get(1))
	assert.Equal(t, model.ValueID(9), av.Get(3))

	err = av.Set(4, 1)
	assert.ErrorIs(t, err, model.ErrOutOfRange)

	err = av.Set(1, 256)
	assert.ErrorIs(t, err, model.ErrCapacity)
	assert.Equal(t, model.ValueID(0), av.Get(1))

	assert.Panics(t, func() { av.Get(4) })
}
