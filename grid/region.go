package grid

import (
	"fmt"
	"strings"
)

// Dims returns the number of dimensions the Region spans.
func (r Region) Dims() int { return len(r.Size) }

// Validate checks structural sanity:
//   - at least one dimension,
//   - Origin and Size of equal length,
//   - no negative extent.
//
// A zero extent along any axis is legal; such a Region is valid but empty
// (Len()==0). Returns ErrDimensionMismatch or ErrNegativeSize.
func (r Region) Validate() error {
	if len(r.Size) == 0 {
		return fmt.Errorf("%w: region has no dimensions", ErrDimensionMismatch)
	}
	if len(r.Origin) != len(r.Size) {
		return fmt.Errorf("%w: origin has %d dims, size has %d",
			ErrDimensionMismatch, len(r.Origin), len(r.Size))
	}
	for d, s := range r.Size {
		if s < 0 {
			return fmt.Errorf("%w: size[%d] = %d", ErrNegativeSize, d, s)
		}
	}
	return nil
}

// Len returns the number of grid points the Region covers
// (the product of its sizes). Zero when any extent is zero.
func (r Region) Len() int {
	if len(r.Size) == 0 {
		return 0
	}
	n := 1
	for _, s := range r.Size {
		n *= s
	}
	return n
}

// Equal reports whether two Regions have identical origin and size.
func (r Region) Equal(o Region) bool {
	if len(r.Size) != len(o.Size) || len(r.Origin) != len(o.Origin) {
		return false
	}
	for d := range r.Size {
		if r.Size[d] != o.Size[d] || r.Origin[d] != o.Origin[d] {
			return false
		}
	}
	return true
}

// Contains reports whether o lies entirely inside r.
// An empty o is contained in any Region of the same dimensionality.
func (r Region) Contains(o Region) bool {
	if len(r.Size) != len(o.Size) {
		return false
	}
	for d := range r.Size {
		if o.Size[d] == 0 {
			continue
		}
		if o.Origin[d] < r.Origin[d] {
			return false
		}
		if o.Origin[d]+o.Size[d] > r.Origin[d]+r.Size[d] {
			return false
		}
	}
	return true
}

// ContainsIndex reports whether the multi-index idx falls inside r.
func (r Region) ContainsIndex(idx []int) bool {
	if len(idx) != len(r.Size) {
		return false
	}
	for d := range idx {
		if idx[d] < r.Origin[d] || idx[d] >= r.Origin[d]+r.Size[d] {
			return false
		}
	}
	return true
}

// Intersect returns the overlap of r and o, clipped axis by axis.
// When the Regions do not overlap the result is empty (Len()==0) with
// sizes clamped to zero; ok is false in that case.
func (r Region) Intersect(o Region) (Region, bool) {
	if len(r.Size) != len(o.Size) {
		return Region{}, false
	}
	out := Region{
		Origin: make([]int, len(r.Size)),
		Size:   make([]int, len(r.Size)),
	}
	ok := true
	for d := range r.Size {
		lo := max(r.Origin[d], o.Origin[d])
		hi := min(r.Origin[d]+r.Size[d], o.Origin[d]+o.Size[d])
		out.Origin[d] = lo
		if hi > lo {
			out.Size[d] = hi - lo
		} else {
			out.Size[d] = 0
			ok = false
		}
	}
	return out, ok
}

// Clone returns a deep copy; mutating the copy never touches the original.
func (r Region) Clone() Region { return Box(r.Origin, r.Size) }

// PosOf maps a multi-index to its flat offset within the Region's buffer,
// dimension 0 varying fastest. Returns ErrIndexOutOfRange when idx lies
// outside the Region and ErrDimensionMismatch on rank disagreement.
func (r Region) PosOf(idx []int) (int, error) {
	if len(idx) != len(r.Size) {
		return 0, fmt.Errorf("%w: index has %d dims, region has %d",
			ErrDimensionMismatch, len(idx), len(r.Size))
	}
	if !r.ContainsIndex(idx) {
		return 0, fmt.Errorf("%w: %v not in %s", ErrIndexOutOfRange, idx, r)
	}
	return r.offsetOf(idx), nil
}

// offsetOf is the unchecked flat-offset computation behind PosOf.
// Callers must have validated idx.
func (r Region) offsetOf(idx []int) int {
	off, stride := 0, 1
	for d := range r.Size {
		off += (idx[d] - r.Origin[d]) * stride
		stride *= r.Size[d]
	}
	return off
}

// IndexAt is the inverse of PosOf: it converts a flat offset back into a
// multi-index. Returns ErrIndexOutOfRange when pos is outside [0, Len()).
func (r Region) IndexAt(pos int) ([]int, error) {
	if pos < 0 || pos >= r.Len() {
		return nil, fmt.Errorf("%w: offset %d not in [0,%d)", ErrIndexOutOfRange, pos, r.Len())
	}
	idx := make([]int, len(r.Size))
	for d := range r.Size {
		idx[d] = r.Origin[d] + pos%r.Size[d]
		pos /= r.Size[d]
	}
	return idx, nil
}

// String renders the Region as "origin+size", e.g. "[0 0]+[4 3]".
func (r Region) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for d, v := range r.Origin {
		if d > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteString("]+[")
	for d, v := range r.Size {
		if d > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')
	return b.String()
}
