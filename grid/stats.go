package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Stats summarizes the sample distribution of a Field.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Summarize computes Min, Max and Mean over every sample of f.
// A Field always holds at least one sample, so the result is total.
func Summarize(f *Field) (Stats, error) {
	if f == nil {
		return Stats{}, ErrNilField
	}
	return Stats{
		Min:  floats.Min(f.data),
		Max:  floats.Max(f.data),
		Mean: floats.Sum(f.data) / float64(len(f.data)),
	}, nil
}

// Axis returns the physical coordinates of the grid points along axis d:
// (Origin[d] + i) * Spacing[d] for i in [0, Size[d]).
// Returns ErrAxisOutOfRange when d is not a valid dimension.
func Axis(f *Field, d int) ([]float64, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if d < 0 || d >= f.region.Dims() {
		return nil, fmt.Errorf("%w: axis %d of %d-dimensional field",
			ErrAxisOutOfRange, d, f.region.Dims())
	}
	n := f.region.Size[d]
	h := f.spacing[d]
	lo := float64(f.region.Origin[d]) * h
	coords := make([]float64, n)
	if n > 1 {
		// Span fills len(coords) points from lo to hi inclusive.
		hi := float64(f.region.Origin[d]+n-1) * h
		floats.Span(coords, lo, hi)
	} else {
		coords[0] = lo
	}
	return coords, nil
}
