package segtree

import "math"

// RangeMax returns the maximum value in the 1 based inclusive range
// [start, end]. The traversal drains pending clamps at every node it
// visits, so the result is always exact with respect to all prior
// RangeClamp calls. Disjoint sub-ranges contribute the identity 0; values
// are non-negative magnitudes, so 0 never masks a real maximum.
func (t *MaxTree) RangeMax(start, end int) (uint32, error) {
	if err := t.checkRange(start, end); err != nil {
		return 0, err
	}
	return t.rangeMax(0, start-1, end-1), nil
}

// rangeMax is the recursive descent for RangeMax over 0 based ranges. The
// pending drain must happen before overlap classification is acted on: a
// node's value on total overlap is only correct once its own lazy state has
// been folded in.
func (t *MaxTree) rangeMax(node, start, end int) uint32 {
	t.resolvePending(node, math.MaxUint32)

	s := t.spans[node]

	if s.start >= start && s.end <= end {
		// Total overlap.
		return t.nodes[node]
	}

	if end < s.start || s.end < start {
		// No overlap.
		return 0
	}

	// Partial overlap.
	mid := (s.start + s.end) / 2
	left := t.rangeMax(leftChild(node), start, min(mid, end))
	right := t.rangeMax(rightChild(node), max(mid+1, start), end)

	return max(left, right)
}
