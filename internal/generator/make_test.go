package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeAt_EpochZero(t *testing.T) {
	r := NewRegistry()
	r.Init("orders")

	id, err := r.MakeAt("orders", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7001010000000100001), id)
}

func TestMakeAt_SequentialSeeds(t *testing.T) {
	r := NewRegistry()
	r.Init("orders")

	first, err := r.MakeAt("orders", 1, 0)
	require.NoError(t, err)
	second, err := r.MakeAt("orders", 1, 0)
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

func TestMakeAt_InvalidBlockID(t *testing.T) {
	r := NewRegistry()
	r.Init("orders")

	for _, blockID := range []int{-1, 0, 100, 101, 1000} {
		id, err := r.MakeAt("orders", blockID, 0)
		assert.ErrorIs(t, err, ErrInvalidBlockID, "block_id=%d", blockID)
		assert.EqualError(t, err, "block_id must be in the range (0,100)")
		assert.Zero(t, id)
	}

	// Failed calls must not advance the counter.
	id, err := r.MakeAt("orders", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7001010000000100001), id)
}

func TestMakeAt_InvalidTimestamp(t *testing.T) {
	r := NewRegistry()
	r.Init("orders")

	// Epoch seconds far enough in the past map to year zero or below.
	const beforeYearOne = -62_200_000_000

	id, err := r.MakeAt("orders", 1, beforeYearOne)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
	assert.EqualError(t, err, "unixtime is invalid")
	assert.Zero(t, id)

	// The counter was not advanced by the failed call.
	id, err = r.MakeAt("orders", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7001010000000100001), id)
}

func TestMakeAt_BlockValidatedBeforeTimestamp(t *testing.T) {
	r := NewRegistry()
	r.Init("orders")

	_, err := r.MakeAt("orders", 0, -62_200_000_000)
	assert.ErrorIs(t, err, ErrInvalidBlockID)
}

func TestMakeAt_BoundaryBlocks(t *testing.T) {
	r := NewRegistry()
	r.Init("orders")

	id, err := r.MakeAt("orders", 99, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7001010000009900001), id)

	id, err = r.MakeAt("orders", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7001010000000100002), id)
}

func TestMake_UsesWallClock(t *testing.T) {
	r := NewRegistry()
	r.Init("orders")

	before := time.Now().Unix()
	id, err := r.Make("orders", 7)
	require.NoError(t, err)
	after := time.Now().Unix()

	lo := Encode(time.Unix(before, 0), 7, 1)
	hi := Encode(time.Unix(after, 0), 7, 1)
	assert.GreaterOrEqual(t, id, lo)
	assert.LessOrEqual(t, id, hi)
}

func TestMakeAt_ValidationDoesNotRequireInit(t *testing.T) {
	r := NewRegistry()

	// Validation failures short-circuit before the seed is drawn, so
	// they never hit the registry lookup.
	_, err := r.MakeAt("never-initialized", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidBlockID)

	assert.Panics(t, func() {
		_, _ = r.MakeAt("never-initialized", 1, 0)
	})
}
