package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field is a dense scalar function sampled over a Region, one float64 per
// grid point, stored flat with dimension 0 varying fastest.
//
// Checked access goes through At/Set; hot loops use Data() and flat
// offsets from Region.PosOf.
type Field struct {
	region  Region
	spacing []float64
	data    []float64
}

// FieldOption configures a Field before allocation.
type FieldOption func(f *Field)

// WithSpacing sets the physical distance between neighboring samples per
// axis. One value per dimension; every value must be positive.
// Default: 1.0 along every axis.
func WithSpacing(spacing ...float64) FieldOption {
	return func(f *Field) {
		f.spacing = append([]float64(nil), spacing...)
	}
}

// NewField allocates a zero-valued Field over region.
//
// Returns ErrDimensionMismatch or ErrNegativeSize when the region is
// malformed, ErrEmptyRegion when it covers no grid points, and
// ErrBadSpacing when WithSpacing supplied a non-positive or wrong-rank
// spacing vector.
func NewField(region Region, opts ...FieldOption) (*Field, error) {
	if err := region.Validate(); err != nil {
		return nil, err
	}
	if region.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRegion, region)
	}
	f := &Field{region: region.Clone()}
	for _, opt := range opts {
		opt(f)
	}
	if f.spacing == nil {
		f.spacing = make([]float64, region.Dims())
		for d := range f.spacing {
			f.spacing[d] = 1.0
		}
	}
	if len(f.spacing) != region.Dims() {
		return nil, fmt.Errorf("%w: %d spacing values for %d dims",
			ErrBadSpacing, len(f.spacing), region.Dims())
	}
	for d, h := range f.spacing {
		if h <= 0 || math.IsNaN(h) {
			return nil, fmt.Errorf("%w: spacing[%d] = %v", ErrBadSpacing, d, h)
		}
	}
	f.data = make([]float64, region.Len())
	return f, nil
}

// Region returns a copy of the Field's index region.
func (f *Field) Region() Region { return f.region.Clone() }

// Spacing returns a copy of the per-axis sample spacing.
func (f *Field) Spacing() []float64 {
	return append([]float64(nil), f.spacing...)
}

// Dims returns the number of dimensions the Field spans.
func (f *Field) Dims() int { return f.region.Dims() }

// Len returns the number of grid points stored.
func (f *Field) Len() int { return len(f.data) }

// At returns the value at multi-index idx.
// Returns ErrIndexOutOfRange or ErrDimensionMismatch on bad indices.
func (f *Field) At(idx []int) (float64, error) {
	pos, err := f.region.PosOf(idx)
	if err != nil {
		return 0, err
	}
	return f.data[pos], nil
}

// Set stores v at multi-index idx.
// Returns ErrIndexOutOfRange or ErrDimensionMismatch on bad indices.
func (f *Field) Set(idx []int, v float64) error {
	pos, err := f.region.PosOf(idx)
	if err != nil {
		return err
	}
	f.data[pos] = v
	return nil
}

// Data exposes the live backing slice, dimension 0 fastest.
// Mutations are visible through the Field; the slice must not be resized.
func (f *Field) Data() []float64 { return f.data }

// Fill sets every sample to v.
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// Clone returns an independent deep copy of the Field.
func (f *Field) Clone() *Field {
	return &Field{
		region:  f.region.Clone(),
		spacing: append([]float64(nil), f.spacing...),
		data:    append([]float64(nil), f.data...),
	}
}

// CopyFrom copies src's values over f's entire region. The source must
// cover the destination region; extra source samples are ignored.
//
// Returns ErrNilField on a nil source, ErrDimensionMismatch on rank
// disagreement and ErrRegionMismatch when src does not cover f.
func (f *Field) CopyFrom(src *Field) error {
	if src == nil {
		return ErrNilField
	}
	if f.region.Dims() != src.region.Dims() {
		return fmt.Errorf("%w: destination has %d dims, source has %d",
			ErrDimensionMismatch, f.region.Dims(), src.region.Dims())
	}
	if !src.region.Contains(f.region) {
		return fmt.Errorf("%w: destination %s exceeds source %s",
			ErrRegionMismatch, f.region, src.region)
	}
	if f.region.Equal(src.region) {
		copy(f.data, src.data)
		return nil
	}
	// Copy row by row: contiguous runs of Size[0] samples, walking the
	// remaining dimensions odometer-style in destination coordinates.
	w := f.region.Size[0]
	rows := f.region.Len() / w
	idx := make([]int, f.region.Dims())
	copy(idx, f.region.Origin)
	dstOff := 0
	for row := 0; row < rows; row++ {
		srcOff := src.region.offsetOf(idx)
		copy(f.data[dstOff:dstOff+w], src.data[srcOff:srcOff+w])
		dstOff += w
		for d := 1; d < len(idx); d++ {
			idx[d]++
			if idx[d] < f.region.Origin[d]+f.region.Size[d] {
				break
			}
			idx[d] = f.region.Origin[d]
		}
	}
	return nil
}

// EqualValues reports whether o spans the same region and holds exactly
// the same samples.
func (f *Field) EqualValues(o *Field) bool {
	if o == nil || !f.region.Equal(o.region) {
		return false
	}
	return floats.Equal(f.data, o.data)
}

// MaxAbsDiff returns the Chebyshev distance between two same-region
// Fields: the largest absolute per-sample difference.
// Returns ErrNilField or ErrRegionMismatch when the Fields do not line up.
func (f *Field) MaxAbsDiff(o *Field) (float64, error) {
	if o == nil {
		return 0, ErrNilField
	}
	if !f.region.Equal(o.region) {
		return 0, fmt.Errorf("%w: %s vs %s", ErrRegionMismatch, f.region, o.region)
	}
	return floats.Distance(f.data, o.data, math.Inf(1)), nil
}
