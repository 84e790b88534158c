package segtree

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyValues      = errors.New("segtree: values must not be empty")
	ErrRangeOutOfBounds = errors.New("segtree: range outside [1, n]")
	ErrRangeInverted    = errors.New("segtree: range start exceeds end")
)

// noPending marks an empty lazy slot. Pending clamps are stored as int64 so
// that every uint32 clamp value remains representable alongside the marker.
const noPending int64 = -1

// span is the 0 based inclusive array range a node covers. Spans are fixed
// at build time and never mutated afterwards.
type span struct {
	start int
	end   int
}

// MaxTree is a max segment tree over a fixed length uint32 array, with
// lazily propagated range clamps. Construct with New.
type MaxTree struct {
	nodes   []uint32
	spans   []span
	pending []int64
	n       int
}

// New builds a MaxTree over values. The array length is fixed for the life
// of the tree. Returns ErrEmptyValues when values is empty.
func New(values []uint32) (*MaxTree, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyValues
	}

	t := &MaxTree{
		nodes:   make([]uint32, 4*n),
		spans:   make([]span, 4*n),
		pending: make([]int64, 4*n),
		n:       n,
	}
	for i := range t.pending {
		t.pending[i] = noPending
	}

	t.build(values, 0, 0, n-1)

	return t, nil
}

// build populates the subtree rooted at node for values[start..end],
// splitting at the midpoint and aggregating child maxima bottom up.
func (t *MaxTree) build(values []uint32, node, start, end int) {
	t.spans[node] = span{start: start, end: end}
	if start == end {
		t.nodes[node] = values[start]
		return
	}

	mid := (start + end) / 2
	t.build(values, leftChild(node), start, mid)
	t.build(values, rightChild(node), mid+1, end)
	t.nodes[node] = max(t.nodes[leftChild(node)], t.nodes[rightChild(node)])
}

// Len returns the length of the underlying array.
func (t *MaxTree) Len() int {
	return t.n
}

func leftChild(i int) int {
	return 2*i + 1
}

func rightChild(i int) int {
	return 2*i + 2
}

// checkRange validates a 1 based inclusive query range against the array
// bounds.
func (t *MaxTree) checkRange(start, end int) error {
	if start < 1 || end > t.n {
		return fmt.Errorf("%w: [%d, %d] with n=%d", ErrRangeOutOfBounds, start, end, t.n)
	}
	if start > end {
		return fmt.Errorf("%w: [%d, %d]", ErrRangeInverted, start, end)
	}
	return nil
}
