package segtree

import (
	"fmt"
	"strings"
)

// debug utilities

// dumpString renders the populated nodes in preorder, one per line, as
// "(start,end): value" with the pending clamp appended when one is set.
func (t *MaxTree) dumpString() string {
	var b strings.Builder
	t.dumpNode(&b, 0, 0)
	return b.String()
}

func (t *MaxTree) dumpNode(b *strings.Builder, node, depth int) {
	s := t.spans[node]

	fmt.Fprintf(b, "%s(%d,%d): %d", strings.Repeat("  ", depth), s.start, s.end, t.nodes[node])
	if t.pending[node] != noPending {
		fmt.Fprintf(b, " pending=%d", t.pending[node])
	}
	b.WriteByte('\n')

	if s.start == s.end {
		return
	}
	t.dumpNode(b, leftChild(node), depth+1)
	t.dumpNode(b, rightChild(node), depth+1)
}
