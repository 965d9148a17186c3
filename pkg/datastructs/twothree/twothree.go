// Package twothree provides a 2-3 tree: a B-tree whose nodes hold one or two
// keys and, when internal, two or three children.
package twothree

import (
	"cmp"

	"github.com/huynhanx03/go-btree/pkg/datastructs/btree"
)

// Tree is a set of keys kept in a 2-3 tree. It is not safe for concurrent use.
type Tree[K any] struct {
	t *btree.Tree[K]
}

// New returns an empty 2-3 tree over the natural ordering of K.
func New[K cmp.Ordered](opts ...btree.Option) *Tree[K] {
	return NewFunc(cmp.Compare[K], opts...)
}

// NewFunc returns an empty 2-3 tree ordered by compare. It panics if compare is nil.
func NewFunc[K any](compare func(a, b K) int, opts ...btree.Option) *Tree[K] {
	t, err := btree.NewFunc(btree.TwoThreeOrder, compare, opts...)
	if err != nil {
		panic(err)
	}
	return &Tree[K]{t: t}
}

func (t *Tree[K]) Insert(key K) { t.t.Insert(key) }

func (t *Tree[K]) Find(key K) bool { return t.t.Find(key) }

func (t *Tree[K]) Delete(key K) { t.t.Delete(key) }

func (t *Tree[K]) Len() int { return t.t.Len() }

func (t *Tree[K]) Height() int { return t.t.Height() }

func (t *Tree[K]) Min() (K, bool) { return t.t.Min() }

func (t *Tree[K]) Max() (K, bool) { return t.t.Max() }

func (t *Tree[K]) Reset() { t.t.Reset() }

func (t *Tree[K]) Levels() [][][]K { return t.t.Levels() }

func (t *Tree[K]) String() string { return t.t.String() }

func (t *Tree[K]) Verify() error { return t.t.Verify() }

// Nodes counts 2-nodes (one key) and 3-nodes (two keys).
func (t *Tree[K]) Nodes() (twoNodes, threeNodes int) {
	for _, level := range t.t.Levels() {
		for _, keys := range level {
			switch len(keys) {
			case 1:
				twoNodes++
			case 2:
				threeNodes++
			}
		}
	}
	return twoNodes, threeNodes
}
