package segtree

// Contains reports whether k occurs at some index in the 1 based inclusive
// range [start, end].
//
// The traversal prunes by subtree max over the tree as it eagerly stands
// and does not drain pending clamps. Results are exact only when no clamps
// are outstanding on the paths it takes: either no RangeClamp has happened
// since the last covering RangeMax, or FlushPending has been called since.
// Interleaving RangeClamp and Contains without one of those leaves Contains
// observing pre-clamp values.
func (t *MaxTree) Contains(start, end int, k uint32) (bool, error) {
	if err := t.checkRange(start, end); err != nil {
		return false, err
	}
	return t.countOccurrences(0, start-1, end-1, k) >= 1, nil
}

// countOccurrences returns a count of indices in the 0 based range
// [start, end] holding k, short-circuiting to 1 wherever existence is
// certain. The count is therefore a lower bound used only for the >= 1
// test.
func (t *MaxTree) countOccurrences(node, start, end int, k uint32) int {
	s := t.spans[node]

	if s.start >= start && s.end <= end {
		// Total overlap. The node value is the subtree max, so anything
		// below it is at most that.
		if t.nodes[node] < k {
			return 0
		}
		return t.checkFullSpan(node, k)
	}

	if end < s.start || s.end < start {
		// No overlap.
		return 0
	}

	// Partial overlap.
	mid := (s.start + s.end) / 2
	left := t.countOccurrences(leftChild(node), start, min(mid, end), k)
	right := t.countOccurrences(rightChild(node), max(mid+1, start), end, k)

	return left + right
}

// checkFullSpan searches for k below node, whose span lies entirely inside
// the query range. A subtree max below k rules the subtree out; a subtree
// max equal to k certifies existence, since some leaf attains the max. Only
// when the max exceeds k must both children be searched.
func (t *MaxTree) checkFullSpan(node int, k uint32) int {
	s := t.spans[node]

	if s.start == s.end {
		if t.nodes[node] == k {
			return 1
		}
		return 0
	}

	if t.nodes[node] < k {
		return 0
	}
	if t.nodes[node] == k {
		return 1
	}

	return t.checkFullSpan(leftChild(node), k) + t.checkFullSpan(rightChild(node), k)
}
