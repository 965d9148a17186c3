package btree

import (
	"cmp"

	"github.com/pkg/errors"
)

// Tree is an in-memory multi-way balanced search tree holding a set of keys.
// Every leaf sits at the same depth and every node other than the root holds
// between ceil(order/2)-1 and order-1 keys once an operation returns.
//
// A Tree is not safe for concurrent use.
type Tree[K any] struct {
	root    *node[K]
	order   int
	compare func(a, b K) int
	length  int
	tracer  Tracer
}

// New returns an empty tree of the given order over the natural ordering of K.
func New[K cmp.Ordered](order int, opts ...Option) (*Tree[K], error) {
	return NewFunc(order, cmp.Compare[K], opts...)
}

// NewFunc returns an empty tree of the given order. compare must define a total
// order: negative when a < b, zero when equal, positive when a > b.
func NewFunc[K any](order int, compare func(a, b K) int, opts ...Option) (*Tree[K], error) {
	if order < MinOrder {
		return nil, errors.Wrapf(ErrInvalidOrder, "got %d", order)
	}
	if compare == nil {
		return nil, errors.WithStack(ErrNilCompare)
	}

	o := options{tracer: NopTracer{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K]{
		order:   order,
		compare: compare,
		tracer:  o.tracer,
	}, nil
}

// Order returns the maximum number of children per node.
func (t *Tree[K]) Order() int { return t.order }

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.length }

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	h := 0
	for n := t.root; n != nil; h++ {
		if n.isLeaf() {
			return h + 1
		}
		n = n.children[0]
	}
	return h
}

// Reset drops every key.
func (t *Tree[K]) Reset() {
	t.root = nil
	t.length = 0
}

func (t *Tree[K]) maxKeys() int { return maxKeysFor(t.order) }

func (t *Tree[K]) minKeys() int { return minKeysFor(t.order) }

// Find reports whether key is in the tree.
func (t *Tree[K]) Find(key K) bool {
	for n := t.root; n != nil; {
		i, found := n.search(key, t.compare)
		if found {
			return true
		}
		if n.isLeaf() {
			return false
		}
		n = n.children[i]
	}
	return false
}

// Min returns the smallest key, or false if the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return minKey(t.root), true
}

// Max returns the largest key, or false if the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return maxKey(t.root), true
}
