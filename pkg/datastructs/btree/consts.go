package btree

import "github.com/pkg/errors"

const (
	// MinOrder is the smallest supported fan-out. With order 2 a split of a
	// two-key node leaves the right sibling empty.
	MinOrder = 3

	// TwoThreeOrder is the fan-out of the fixed 2-3 specialisation:
	// at most 2 keys and 3 children per node.
	TwoThreeOrder = 3
)

var (
	ErrInvalidOrder = errors.New("btree: order must be at least 3")
	ErrNilCompare   = errors.New("btree: compare function is nil")
)

// maxKeysFor returns the largest key count a node may settle at.
func maxKeysFor(order int) int { return order - 1 }

// minKeysFor returns ceil(order/2) - 1, the floor for every non-root node.
func minKeysFor(order int) int { return (order+1)/2 - 1 }
