// Package band defines the Node and Band types plus sentinel errors.
package band

import "errors"

var (
	// ErrNilField indicates Extract received a nil *grid.Field.
	ErrNilField = errors.New("band: nil field")

	// ErrBadWidth indicates Extract received a negative or NaN width.
	ErrBadWidth = errors.New("band: width must be a non-negative number")
)

// Node names a single grid point inside a narrow band: its multi-index
// and an auxiliary scalar such as the field value at that point.
type Node struct {
	Index []int
	Value float64
}

// Clone returns a deep copy of the Node, detaching its Index slice.
func (n Node) Clone() Node {
	return Node{
		Index: append([]int(nil), n.Index...),
		Value: n.Value,
	}
}

// Band is an ordered sequence of Nodes forming the working set of a
// narrow-banded evolution. The zero value is an empty, usable Band.
type Band struct {
	nodes []Node
}
