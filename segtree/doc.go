package segtree

/*
Package segtree implements a maximum segment tree over a fixed length array
of uint32 values, with lazily propagated range clamp updates.

The tree supports three operations after construction:

  - RangeClamp(start, end, value): set a[i] = min(a[i], value) for every i in
    [start, end].
  - RangeMax(start, end): the maximum of a[i] over [start, end].
  - Contains(start, end, k): whether k occurs at some index in [start, end].

All three take 1 based inclusive bounds, matching the exercise query file
format. Internally everything is 0 based; the
translation happens once, at the exported method boundary.

# Layout

Nodes live in a flat array of 4n slots and are addressed by index arithmetic
alone: the children of node i are 2i+1 and 2i+2. No node pointers are ever
materialised. Each node carries the max of the array span it covers, the
span itself (fixed at build time), and an optional deferred clamp that has
been applied to the node but not yet to its children.

For the array [5, 4, 3, 2, 9, 1, 7] the node spans form the following tree,
labelled with 0 based array indices:

	                 [0,6]
	             /           \
	        [0,3]             [4,6]
	       /     \            /    \
	   [0,1]      [2,3]    [4,5]   [6,6]
	   /   \      /   \    /   \
	[0,0] [1,1] [2,2] [3,3] [4,4] [5,5]

A span [s, e] splits at mid = (s+e)/2 into [s, mid] and [mid+1, e], and a
node is a leaf exactly when s == e.

# Lazy clamps

A range clamp touching a node that its query range fully covers records the
clamp on the node's children as pending work and stops descending. Any later
traversal through a node first drains the node's own pending clamp: it
tightens the node value, re-records the clamp on the children (merging with
min into whatever they already hold), and clears the slot. RangeMax performs
this drain at every node it visits, so its results are always exact.

Contains deliberately does not: it prunes by subtree max over the tree as it
eagerly stands, and is only exact when no clamps are outstanding along the
paths it takes. Call FlushPending between a RangeClamp and a Contains when
interleaving the two; see the method comments.

# Ownership

A MaxTree is an exclusively owned mutable structure. Queries mutate internal
lazy state, so even read-style calls require external serialisation if the
tree is shared between goroutines.
*/
