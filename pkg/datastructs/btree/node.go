package btree

import "slices"

// node is one level unit of the tree.
// A leaf has no children; an internal node has exactly len(keys)+1.
// Children are owned by exactly one parent.
type node[K any] struct {
	keys     []K
	children []*node[K]
}

func (n *node[K]) isLeaf() bool { return len(n.children) == 0 }

// search returns the number of keys strictly less than key, which is also the
// index of the child that would hold it, and whether key sits in this node.
func (n *node[K]) search(key K, compare func(a, b K) int) (int, bool) {
	return slices.BinarySearchFunc(n.keys, key, compare)
}

func (n *node[K]) insertKeyAt(i int, key K) {
	n.keys = slices.Insert(n.keys, i, key)
}

func (n *node[K]) removeKeyAt(i int) K {
	key := n.keys[i]
	n.keys = slices.Delete(n.keys, i, i+1)
	return key
}

func (n *node[K]) insertChildAt(i int, child *node[K]) {
	n.children = slices.Insert(n.children, i, child)
}

func (n *node[K]) removeChildAt(i int) *node[K] {
	child := n.children[i]
	n.children = slices.Delete(n.children, i, i+1)
	return child
}

// truncate keeps the first k keys and, for an internal node, the first k+1
// children. Dropped slots are zeroed so they release what they referenced.
func (n *node[K]) truncate(k int) {
	clear(n.keys[k:])
	n.keys = n.keys[:k]
	if !n.isLeaf() {
		clear(n.children[k+1:])
		n.children = n.children[:k+1]
	}
}

// minKey walks leftmost children down to a leaf.
func minKey[K any](n *node[K]) K {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n.keys[0]
}

// maxKey walks rightmost children down to a leaf.
func maxKey[K any](n *node[K]) K {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1]
}
