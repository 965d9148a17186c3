package btree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Levels returns the keys of every node in level order: Levels()[d][j] is the
// key slice of the j-th node, left to right, at depth d. The slices are copies.
func (t *Tree[K]) Levels() [][][]K {
	var out [][][]K
	t.walkLevels(func(depth int, n *node[K]) {
		if depth == len(out) {
			out = append(out, nil)
		}
		out[depth] = append(out[depth], append([]K(nil), n.keys...))
	})
	return out
}

// walkLevels visits nodes breadth first.
func (t *Tree[K]) walkLevels(fn func(depth int, n *node[K])) {
	if t.root == nil {
		return
	}
	level := []*node[K]{t.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K]
		for _, n := range level {
			fn(depth, n)
			next = append(next, n.children...)
		}
		level = next
	}
}

// String renders the tree one level per line:
//
//	Level 0: [20]
//	Level 1: [10] [30]
func (t *Tree[K]) String() string {
	if t.root == nil {
		return "(empty tree)"
	}
	var sb strings.Builder
	t.writeLevels(&sb)
	return sb.String()
}

func (t *Tree[K]) writeLevels(sb io.StringWriter) {
	current := -1
	t.walkLevels(func(depth int, n *node[K]) {
		if depth != current {
			if current >= 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("Level " + strconv.Itoa(depth) + ":")
			current = depth
		}
		sb.WriteString(" [")
		for i, k := range n.keys {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprint(k))
		}
		sb.WriteString("]")
	})
}

// Fingerprint hashes the level-order layout of the tree. Two trees with the
// same shape and keys share a fingerprint.
func (t *Tree[K]) Fingerprint() uint64 {
	d := xxhash.New()
	t.writeLevels(d)
	return d.Sum64()
}
