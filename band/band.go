package band

// New returns an empty Band with room for capacity nodes.
func New(capacity int) *Band {
	if capacity < 0 {
		capacity = 0
	}
	return &Band{nodes: make([]Node, 0, capacity)}
}

// FromNodes wraps the caller's slice as a Band without copying.
// The Band and the caller share storage; later mutations through either
// are visible to both.
func FromNodes(nodes []Node) *Band {
	return &Band{nodes: nodes}
}

// Len returns the number of nodes currently in the band.
// Safe on a nil Band, which counts as empty.
func (b *Band) Len() int {
	if b == nil {
		return 0
	}
	return len(b.nodes)
}

// Nodes returns the live node slice in installed order. Mutating the
// returned elements mutates the band. Nil on a nil Band.
func (b *Band) Nodes() []Node {
	if b == nil {
		return nil
	}
	return b.nodes
}

// Replace swaps the band's contents for the given slice without copying,
// for callers that rebuild their working set between iterations.
func (b *Band) Replace(nodes []Node) {
	b.nodes = nodes
}

// Append adds one node to the end of the band.
func (b *Band) Append(n Node) {
	b.nodes = append(b.nodes, n)
}

// Clone returns a deep copy: the node slice and every Node.Index are
// detached from the original. Nil in, nil out.
func (b *Band) Clone() *Band {
	if b == nil {
		return nil
	}
	out := &Band{nodes: make([]Node, len(b.nodes))}
	for i, n := range b.nodes {
		out.nodes[i] = n.Clone()
	}
	return out
}

// Reset empties the band while keeping its allocated capacity.
func (b *Band) Reset() {
	b.nodes = b.nodes[:0]
}
