package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapCounts(t *testing.T) {
	type args struct {
		intervals []Interval
		n         int
	}
	tests := []struct {
		name string
		args args
		want []uint32
	}{
		{
			"no intervals",
			args{nil, 4},
			[]uint32{0, 0, 0, 0},
		},
		{
			"single interval covering everything",
			args{[]Interval{{1, 3}}, 3},
			[]uint32{1, 1, 1},
		},
		{
			"two intervals meeting at a point",
			args{[]Interval{{1, 2}, {2, 3}}, 3},
			[]uint32{1, 2, 1},
		},
		{
			"disjoint pair",
			args{[]Interval{{1, 2}, {3, 5}}, 5},
			[]uint32{1, 1, 1, 1, 1},
		},
		{
			"nested and point intervals",
			args{[]Interval{{1, 4}, {2, 3}, {2, 2}, {4, 4}}, 4},
			[]uint32{1, 3, 2, 2},
		},
		{
			"interval ending at n",
			args{[]Interval{{3, 3}}, 3},
			[]uint32{0, 0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OverlapCounts(tt.args.intervals, tt.args.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestOverlapCountsAgainstBruteForce cross-checks the sweep against direct
// per-position counting.
func TestOverlapCountsAgainstBruteForce(t *testing.T) {
	const n = 12

	intervals := []Interval{
		{1, 12}, {3, 7}, {3, 3}, {5, 9}, {9, 9}, {10, 12}, {2, 11},
	}

	want := make([]uint32, n)
	for p := uint32(1); p <= n; p++ {
		for _, iv := range intervals {
			if iv.Start <= p && p <= iv.End {
				want[p-1]++
			}
		}
	}

	got, err := OverlapCounts(intervals, n)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOverlapCountsRejectsBadIntervals(t *testing.T) {
	_, err := OverlapCounts([]Interval{{0, 2}}, 3)
	assert.ErrorIs(t, err, ErrIntervalOutOfRange)

	_, err = OverlapCounts([]Interval{{1, 4}}, 3)
	assert.ErrorIs(t, err, ErrIntervalOutOfRange)

	_, err = OverlapCounts([]Interval{{3, 2}}, 3)
	assert.ErrorIs(t, err, ErrIntervalOutOfRange)
}
