//go:build amd64 || arm64

package storage

import (
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/colstore/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkIDFor(t *testing.T) {
	id, err := chunkIDFor("append", 7)
	require.NoError(t, err)
	assert.Equal(t, model.ChunkID(7), id)

	for _, n := range []int{-1, math.MaxUint32 + 1} {
		_, err := chunkIDFor("append", n)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrSchema)
		assert.NotErrorIs(t, err, model.ErrCapacity)

		var se *model.SchemaError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "append", se.Op)
		assert.Equal(t, "too many chunks", se.Reason)
		assert.Equal(t, "schema error: append: too many chunks", err.Error())
	}
}
