package evolve

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlset/grid"
)

// BufferPair owns the two fields of a double-buffered evolution: steps
// read from the input buffer and write to the output buffer, and Swap
// exchanges the roles in O(1) without touching sample data.
//
// The zero value is ready for Allocate.
type BufferPair struct {
	input  *grid.Field
	output *grid.Field
}

// Allocate sizes both buffers over region with the given per-axis spacing,
// nil meaning unit spacing. Existing buffers are reused only when region
// and spacing both match, so repeated runs over one geometry do not
// reallocate; reused samples are stale until overwritten. Spacing is part
// of the match: steppers read it off the buffers, and a Field's spacing is
// fixed at construction.
//
// With outputOnly set only the output buffer is touched, for pipelines
// that read their input in place. Field validation failures surface
// unchanged (grid.ErrEmptyRegion, grid.ErrBadSpacing and friends).
func (b *BufferPair) Allocate(region grid.Region, spacing []float64, outputOnly bool) error {
	var opts []grid.FieldOption
	if spacing != nil {
		opts = append(opts, grid.WithSpacing(spacing...))
	}
	if !outputOnly {
		if !reusable(b.input, region, spacing) {
			in, err := grid.NewField(region, opts...)
			if err != nil {
				return err
			}
			b.input = in
		}
	}
	if !reusable(b.output, region, spacing) {
		out, err := grid.NewField(region, opts...)
		if err != nil {
			return err
		}
		b.output = out
	}
	return nil
}

// reusable reports whether f already spans region with the wanted spacing,
// nil spacing standing for 1.0 along every axis.
func reusable(f *grid.Field, region grid.Region, spacing []float64) bool {
	if f == nil || !f.Region().Equal(region) {
		return false
	}
	got := f.Spacing()
	if spacing == nil {
		for _, h := range got {
			if h != 1 {
				return false
			}
		}
		return true
	}
	return floats.Equal(got, spacing)
}

// CopyIn fills the input buffer from src over the buffer's entire region.
// The source must cover it; grid.ErrRegionMismatch otherwise.
func (b *BufferPair) CopyIn(src *grid.Field) error {
	if src == nil {
		return ErrNilInput
	}
	if b.input == nil {
		return ErrNotAllocated
	}
	return b.input.CopyFrom(src)
}

// CopyOut drains the output buffer into dst over dst's entire region.
// The buffer must cover it; grid.ErrRegionMismatch otherwise.
func (b *BufferPair) CopyOut(dst *grid.Field) error {
	if dst == nil {
		return grid.ErrNilField
	}
	if b.output == nil {
		return ErrNotAllocated
	}
	return dst.CopyFrom(b.output)
}

// Swap exchanges the input and output roles by pointer, leaving all
// sample data in place.
func (b *BufferPair) Swap() {
	b.input, b.output = b.output, b.input
}

// Input returns the buffer currently playing the read role.
func (b *BufferPair) Input() *grid.Field { return b.input }

// Output returns the buffer currently playing the write role.
func (b *BufferPair) Output() *grid.Field { return b.output }
