package btree

import (
	"fmt"

	"github.com/pkg/errors"
)

// VerifyError describes the first broken invariant found by Verify.
type VerifyError struct {
	// Path is the child index taken at each level from the root to the
	// offending node. Empty means the root.
	Path   []int
	Reason string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("btree: node %v: %s", e.Path, e.Reason)
}

// Verify walks the whole tree and checks the structural invariants: key counts
// per node, child counts, strict key ordering against the node's bounds, equal
// leaf depth, and that the number of keys matches Len.
//
// It is meant for tests and debugging; the mutation paths never call it.
func (t *Tree[K]) Verify() error {
	if t.root == nil {
		if t.length != 0 {
			return errors.WithStack(&VerifyError{Reason: fmt.Sprintf("empty tree reports %d keys", t.length)})
		}
		return nil
	}

	v := verifier[K]{tree: t, leafDepth: -1}
	if err := v.walk(t.root, nil, nil, nil); err != nil {
		return errors.WithStack(err)
	}
	if v.count != t.length {
		return errors.WithStack(&VerifyError{Reason: fmt.Sprintf("counted %d keys, Len is %d", v.count, t.length)})
	}
	return nil
}

type verifier[K any] struct {
	tree      *Tree[K]
	leafDepth int
	count     int
}

// walk checks n, whose keys must lie strictly between lo and hi when set.
func (v *verifier[K]) walk(n *node[K], path []int, lo, hi *K) *VerifyError {
	fail := func(format string, args ...any) *VerifyError {
		return &VerifyError{Path: append([]int(nil), path...), Reason: fmt.Sprintf(format, args...)}
	}

	minKeys := v.tree.minKeys()
	if len(path) == 0 {
		minKeys = 1
	}
	if len(n.keys) < minKeys {
		return fail("%d keys, want at least %d", len(n.keys), minKeys)
	}
	if len(n.keys) > v.tree.maxKeys() {
		return fail("%d keys, want at most %d", len(n.keys), v.tree.maxKeys())
	}
	if !n.isLeaf() && len(n.children) != len(n.keys)+1 {
		return fail("%d children for %d keys", len(n.children), len(n.keys))
	}

	compare := v.tree.compare
	for i, k := range n.keys {
		if i > 0 && compare(n.keys[i-1], k) >= 0 {
			return fail("keys not strictly increasing at slot %d", i)
		}
		if lo != nil && compare(*lo, k) >= 0 {
			return fail("key at slot %d not above the parent separator", i)
		}
		if hi != nil && compare(k, *hi) >= 0 {
			return fail("key at slot %d not below the parent separator", i)
		}
	}
	v.count += len(n.keys)

	if n.isLeaf() {
		depth := len(path)
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if depth != v.leafDepth {
			return fail("leaf at depth %d, others at %d", depth, v.leafDepth)
		}
		return nil
	}

	for i, child := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := v.walk(child, append(path, i), childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
