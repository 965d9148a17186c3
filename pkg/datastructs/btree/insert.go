package btree

// Insert adds key to the tree. Inserting a key that is already present is a no-op.
func (t *Tree[K]) Insert(key K) {
	if t.Find(key) {
		return
	}
	t.length++
	if t.root == nil {
		t.root = &node[K]{keys: []K{key}}
		return
	}
	t.insert(t.root, key, 0)
	t.fixRootOverflow()
}

// insert places key in the leaf it routes to and splits overflowing children
// on the way back up.
func (t *Tree[K]) insert(n *node[K], key K, depth int) {
	i, _ := n.search(key, t.compare)
	if n.isLeaf() {
		n.insertKeyAt(i, key)
		return
	}
	t.insert(n.children[i], key, depth+1)
	t.splitChild(n, i, depth)
}

// fixRootOverflow hangs an overflowing root under a fresh empty root and
// splits it as child 0. This is the only way the tree grows a level.
func (t *Tree[K]) fixRootOverflow() {
	if t.root == nil || len(t.root.keys) <= t.maxKeys() {
		return
	}
	t.root = &node[K]{children: []*node[K]{t.root}}
	t.splitChild(t.root, 0, 0)
	t.tracer.Grow(t.Height())
}

// splitChild splits parent.children[i] around its median when it holds order
// keys or more. The median moves up to parent.keys[i], the child keeps the lower
// half and a new right sibling takes the upper half at parent.children[i+1].
// It is a no-op for a child within bounds.
//
// Insertion overflows a child by exactly one key. A merge during delete can
// leave up to order-1+minKeys keys; splitting at len/2 still leaves both
// halves within [minKeys, order-1].
func (t *Tree[K]) splitChild(parent *node[K], i, depth int) {
	if i >= len(parent.children) {
		return
	}
	child := parent.children[i]
	if len(child.keys) <= t.maxKeys() {
		return
	}

	mid := len(child.keys) / 2
	median := child.keys[mid]
	right := &node[K]{keys: append([]K(nil), child.keys[mid+1:]...)}
	if !child.isLeaf() {
		right.children = append([]*node[K](nil), child.children[mid+1:]...)
	}
	child.truncate(mid)

	parent.insertKeyAt(i, median)
	parent.insertChildAt(i+1, right)
	t.tracer.Split(depth + 1)
}
