// Package sweep computes interval overlap counts over a fixed 1 based
// position domain, using a sweep line over endpoint deltas followed by a
// prefix sum. The resulting count array is what the existence queries in
// the companion exercise run against.
package sweep

import (
	"errors"
	"fmt"
)

var ErrIntervalOutOfRange = errors.New("sweep: interval outside [1, n]")

// Interval is a closed range of 1 based positions.
type Interval struct {
	Start uint32
	End   uint32
}

// OverlapCounts returns, for each position 1..n, the number of intervals
// covering it. The result is indexed from 0, so position p maps to
// counts[p-1]. Intervals must satisfy 1 <= Start <= End <= n.
func OverlapCounts(intervals []Interval, n int) ([]uint32, error) {
	// One delta slot per position plus one past the end, so closing an
	// interval at position n never writes out of range.
	deltas := make([]int32, n+2)

	for _, iv := range intervals {
		if iv.Start < 1 || uint64(iv.End) > uint64(n) || iv.Start > iv.End {
			return nil, fmt.Errorf("%w: [%d, %d] with n=%d", ErrIntervalOutOfRange, iv.Start, iv.End, n)
		}
		deltas[iv.Start]++
		deltas[iv.End+1]--
	}

	counts := make([]uint32, n)
	running := int32(0)
	for p := 1; p <= n; p++ {
		running += deltas[p]
		counts[p-1] = uint32(running)
	}

	return counts, nil
}
