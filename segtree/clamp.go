package segtree

import "math"

// RangeClamp sets a[i] = min(a[i], value) for every i in the 1 based
// inclusive range [start, end]. The update is recorded lazily: subtrees the
// range fully covers receive a pending clamp that later traversals drain.
// Clamping is idempotent, and clamping with a value at or above an earlier
// one over the same range is a no-op.
func (t *MaxTree) RangeClamp(start, end int, value uint32) error {
	if err := t.checkRange(start, end); err != nil {
		return err
	}
	t.clamp(0, start-1, end-1, value)
	return nil
}

// clamp is the recursive descent for RangeClamp, working on 0 based ranges.
// Every branch drains the node's own pending clamp before reading or writing
// its value, so the node is current with respect to its own lazy state at
// the moment of descent.
func (t *MaxTree) clamp(node, start, end int, value uint32) {
	s := t.spans[node]

	if s.start >= start && s.end <= end {
		// Total overlap. Fold the pending clamp into the incoming value,
		// tighten this node, and defer the rest of the subtree.
		value = t.resolvePending(node, value)
		t.nodes[node] = min(t.nodes[node], value)
		t.pushDown(node, value)
		return
	}

	if end < s.start || s.end < start {
		// No overlap. Still drain the pending clamp so the node value is
		// exact for the caller's post-recursion max recomputation.
		t.resolvePending(node, math.MaxUint32)
		return
	}

	// Partial overlap. Recurse with the range clipped to each child's side
	// of the midpoint, then recompute this node from the updated children.
	value = t.resolvePending(node, value)

	mid := (s.start + s.end) / 2
	t.clamp(leftChild(node), start, min(mid, end), value)
	t.clamp(rightChild(node), max(mid+1, start), end, value)

	t.nodes[node] = max(t.nodes[leftChild(node)], t.nodes[rightChild(node)])
}

// resolvePending drains the pending clamp at node, if any: the clamp is
// folded into the incoming value, applied to the node's own value, and
// re-recorded on the children. Returns the possibly tightened value.
func (t *MaxTree) resolvePending(node int, value uint32) uint32 {
	if t.pending[node] == noPending {
		return value
	}

	update := uint32(t.pending[node])
	t.pending[node] = noPending

	value = min(value, update)
	t.nodes[node] = min(t.nodes[node], update)
	t.pushDown(node, update)

	return value
}

// pushDown records value as a pending clamp on both children of node.
// Leaves have no children and take no pending state.
func (t *MaxTree) pushDown(node int, value uint32) {
	s := t.spans[node]
	if s.start == s.end {
		return
	}
	t.mergePending(leftChild(node), value)
	t.mergePending(rightChild(node), value)
}

// mergePending merges value into the pending slot at node, keeping the
// tighter of the two clamps.
func (t *MaxTree) mergePending(node int, value uint32) {
	if t.pending[node] == noPending || int64(value) < t.pending[node] {
		t.pending[node] = int64(value)
	}
}

// FlushPending drains every outstanding pending clamp in the tree, leaving
// all node values eagerly maximal. It walks the whole tree, so it costs
// O(n); use it to re-establish the Contains precondition after RangeClamp
// calls rather than as part of a query loop.
func (t *MaxTree) FlushPending() {
	t.flush(0)
}

func (t *MaxTree) flush(node int) {
	t.resolvePending(node, math.MaxUint32)

	s := t.spans[node]
	if s.start == s.end {
		return
	}
	t.flush(leftChild(node))
	t.flush(rightChild(node))
}
