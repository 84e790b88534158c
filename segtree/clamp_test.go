package segtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointValues reads back the whole array through point queries.
func pointValues(t *testing.T, tree *MaxTree) []uint32 {
	t.Helper()

	out := make([]uint32, tree.Len())
	for i := 1; i <= tree.Len(); i++ {
		v, err := tree.RangeMax(i, i)
		require.NoError(t, err)
		out[i-1] = v
	}
	return out
}

func TestRangeClampTightensMax(t *testing.T) {
	tree, err := New([]uint32{19, 23, 17, 14, 9, 11, 7})
	require.NoError(t, err)

	require.NoError(t, tree.RangeClamp(1, 4, 22))

	got, err := tree.RangeMax(1, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(22), got)

	require.NoError(t, tree.RangeClamp(3, 5, 15))

	// Indices 1-2 are untouched by the second clamp.
	got, err = tree.RangeMax(1, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(22), got)

	got, err = tree.RangeMax(3, 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(15), got)
}

func TestRangeClampAboveMaxIsNoop(t *testing.T) {
	values := []uint32{5, 4, 3, 2, 9, 1, 7}
	tree, err := New(values)
	require.NoError(t, err)

	require.NoError(t, tree.RangeClamp(1, 7, 100))
	assert.Equal(t, values, pointValues(t, tree))
}

func TestRangeClampIdempotent(t *testing.T) {
	once, err := New([]uint32{6, 2, 8, 4, 10, 1})
	require.NoError(t, err)
	twice, err := New([]uint32{6, 2, 8, 4, 10, 1})
	require.NoError(t, err)

	require.NoError(t, once.RangeClamp(2, 5, 5))

	require.NoError(t, twice.RangeClamp(2, 5, 5))
	require.NoError(t, twice.RangeClamp(2, 5, 5))

	assert.Equal(t, pointValues(t, once), pointValues(t, twice))
}

// TestRangeClampMonotone checks that a looser clamp after a tighter one
// over the same range changes nothing.
func TestRangeClampMonotone(t *testing.T) {
	tight, err := New([]uint32{6, 2, 8, 4, 10, 1})
	require.NoError(t, err)
	loosened, err := New([]uint32{6, 2, 8, 4, 10, 1})
	require.NoError(t, err)

	require.NoError(t, tight.RangeClamp(1, 6, 3))

	require.NoError(t, loosened.RangeClamp(1, 6, 3))
	require.NoError(t, loosened.RangeClamp(1, 6, 7))

	assert.Equal(t, pointValues(t, tight), pointValues(t, loosened))
}

func TestPointClamp(t *testing.T) {
	tree, err := New([]uint32{5, 4, 3})
	require.NoError(t, err)

	require.NoError(t, tree.RangeClamp(1, 1, 2))
	assert.Equal(t, []uint32{2, 4, 3}, pointValues(t, tree))
}

func TestFlushPendingClearsAllSlots(t *testing.T) {
	tree, err := New([]uint32{19, 23, 17, 14, 9, 11, 7})
	require.NoError(t, err)

	require.NoError(t, tree.RangeClamp(1, 7, 10))
	require.NoError(t, tree.RangeClamp(2, 6, 8))

	tree.FlushPending()

	for i, p := range tree.pending {
		assert.Equal(t, noPending, p, "pending slot %d", i)
	}
	assert.Equal(t, []uint32{10, 8, 8, 8, 8, 8, 7}, pointValues(t, tree))
}

// TestRangeClampModel replays a fixed pseudo-random op stream against a
// plain slice model and checks every max query agrees.
func TestRangeClampModel(t *testing.T) {
	const (
		size    = 37
		opCount = 400
		maxVal  = 50
	)

	rng := rand.New(rand.NewSource(1))

	model := make([]uint32, size)
	for i := range model {
		model[i] = uint32(rng.Intn(maxVal))
	}

	tree, err := New(model)
	require.NoError(t, err)

	for op := 0; op < opCount; op++ {
		start := rng.Intn(size) + 1
		end := start + rng.Intn(size-start+1)

		if rng.Intn(2) == 0 {
			v := uint32(rng.Intn(maxVal))
			require.NoError(t, tree.RangeClamp(start, end, v))
			for i := start - 1; i < end; i++ {
				model[i] = min(model[i], v)
			}
			continue
		}

		want := uint32(0)
		for i := start - 1; i < end; i++ {
			want = max(want, model[i])
		}

		got, err := tree.RangeMax(start, end)
		require.NoError(t, err)
		require.Equalf(t, want, got, "op %d: RangeMax(%d, %d)", op, start, end)
	}
}
