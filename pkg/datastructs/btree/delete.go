package btree

// Delete removes key from the tree. Deleting an absent key is a no-op.
func (t *Tree[K]) Delete(key K) {
	if !t.Find(key) {
		return
	}
	t.length--
	t.delete(t.root, key, 0)

	if len(t.root.keys) > 0 {
		return
	}
	// An emptied root has at most one child left: promote it, or drop the
	// tree entirely when the root was the last leaf.
	if t.root.isLeaf() {
		t.root = nil
	} else {
		t.root = t.root.children[0]
	}
	t.tracer.Shrink(t.Height())
}

// delete removes key from the subtree rooted at n. Keys are only ever removed
// from leaves: a key found in an internal node is overwritten by its
// predecessor (slot 0) or successor (any other slot), and that key is then
// deleted from the leaf it came from. Children left short on the way back up
// are repaired by mergeChild.
func (t *Tree[K]) delete(n *node[K], key K, depth int) {
	i, found := n.search(key, t.compare)
	if n.isLeaf() {
		if found {
			n.removeKeyAt(i)
		}
		return
	}

	if found {
		slot := i
		var replacement K
		if slot == 0 {
			replacement = maxKey(n.children[0])
		} else {
			i = slot + 1
			replacement = minKey(n.children[i])
		}
		n.keys[slot] = replacement
		key = replacement
	}

	t.delete(n.children[i], key, depth+1)
	i = t.mergeChild(n, i, depth)
	t.splitChild(n, i, depth)
}

// mergeChild repairs parent.children[i] when it holds fewer than minKeys keys.
// The short child is joined with a neighbour (the right one for child 0, the
// left one otherwise) through the separator key in parent, leaving one node in
// the left position. It returns the index of the node that remains where the
// short child was.
//
// The merged node may exceed order-1 keys when the neighbour was well filled;
// the caller's splitChild then redistributes it into two valid siblings, so
// borrowing is merge followed by split.
func (t *Tree[K]) mergeChild(parent *node[K], i, depth int) int {
	if len(parent.children[i].keys) >= t.minKeys() {
		return i
	}

	sep := i - 1
	if i == 0 {
		sep = 0
	}
	left, right := parent.children[sep], parent.children[sep+1]

	left.keys = append(left.keys, parent.removeKeyAt(sep))
	left.keys = append(left.keys, right.keys...)
	left.children = append(left.children, right.children...)
	parent.removeChildAt(sep + 1)

	t.tracer.Merge(depth + 1)
	return sep
}
