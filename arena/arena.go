// Package arena implements a binary tree whose nodes live in a flat arena
// and reference their children by index rather than by pointer, plus two
// whole-tree checks: the binary search tree property and the maximum
// leaf-to-leaf path sum.
package arena

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoSuchParent = errors.New("arena: parent node does not exist")
	ErrChildTaken   = errors.New("arena: child slot already set")
)

// none marks an absent child index.
const none = -1

type node struct {
	key   uint32
	left  int
	right int
}

// Tree is an arena backed binary tree rooted at index 0. Nodes are only
// ever added, never removed.
type Tree struct {
	nodes []node
}

// NewTree creates a tree holding a single root node with the given key.
func NewTree(rootKey uint32) *Tree {
	return &Tree{
		nodes: []node{{key: rootKey, left: none, right: none}},
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// AddNode attaches a new node with the given key as the left or right child
// of parent, returning the new node's index. Fails when parent is out of
// range or the chosen child slot is already occupied.
func (t *Tree) AddNode(parent int, key uint32, left bool) (int, error) {
	if parent < 0 || parent >= len(t.nodes) {
		return 0, fmt.Errorf("%w: %d", ErrNoSuchParent, parent)
	}

	slot := &t.nodes[parent].right
	if left {
		slot = &t.nodes[parent].left
	}
	if *slot != none {
		return 0, fmt.Errorf("%w: node %d", ErrChildTaken, parent)
	}

	id := len(t.nodes)
	t.nodes = append(t.nodes, node{key: key, left: none, right: none})
	*slot = id

	return id, nil
}

// IsSearchTree reports whether the tree satisfies the binary search tree
// ordering: every node's key is at least every key in its left subtree and
// strictly below every key in its right subtree.
func (t *Tree) IsSearchTree() bool {
	ok, _, _ := t.checkSearchOrder(0)
	return ok
}

// checkSearchOrder returns whether the subtree at id is ordered, together
// with its maximum and minimum keys. An absent subtree is ordered with the
// identities (0, MaxUint32), so the parent's comparisons hold vacuously.
func (t *Tree) checkSearchOrder(id int) (bool, uint32, uint32) {
	if id == none {
		return true, 0, math.MaxUint32
	}

	n := t.nodes[id]
	okLeft, maxLeft, minLeft := t.checkSearchOrder(n.left)
	okRight, maxRight, minRight := t.checkSearchOrder(n.right)

	ok := okLeft && okRight && n.key >= maxLeft && n.key < minRight

	return ok, max(n.key, maxLeft, maxRight), min(n.key, minLeft, minRight)
}

// MaxLeafPathSum returns the largest key sum over simple paths connecting
// two leaves. The second result is false when no such path exists, which
// is the case until some node has both children.
func (t *Tree) MaxLeafPathSum() (uint32, bool) {
	best, hasBest, _, _ := t.maxLeafPath(0)
	return best, hasBest
}

// maxLeafPath returns, for the subtree at id: the best leaf-to-leaf path
// sum found so far (and whether one exists), and the best node-to-leaf sum
// descending from id (and whether the subtree exists at all).
func (t *Tree) maxLeafPath(id int) (uint32, bool, uint32, bool) {
	if id == none {
		return 0, false, 0, false
	}

	n := t.nodes[id]
	bestLeft, hasBestLeft, downLeft, hasLeft := t.maxLeafPath(n.left)
	bestRight, hasBestRight, downRight, hasRight := t.maxLeafPath(n.right)

	switch {
	case hasLeft && hasRight:
		// A leaf-to-leaf path turns here.
		best := n.key + downLeft + downRight
		if hasBestLeft {
			best = max(best, bestLeft)
		}
		if hasBestRight {
			best = max(best, bestRight)
		}
		return best, true, n.key + max(downLeft, downRight), true

	case hasLeft:
		return bestLeft, hasBestLeft, n.key + downLeft, true

	case hasRight:
		return bestRight, hasBestRight, n.key + downRight, true

	default:
		// Leaf.
		return 0, false, n.key, true
	}
}
