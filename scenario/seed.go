package scenario

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlset/grid"
)

// Seed fills f with the initial level-set described by spec. Values
// follow the inside-negative convention: points inside the seeded front
// carry negative values, outside positive, the front itself zero.
func Seed(f *grid.Field, spec SeedSpec) error {
	if f == nil {
		return grid.ErrNilField
	}
	switch spec.Shape {
	case ShapeUniform:
		f.Fill(spec.Value)
		return nil
	case ShapePlane:
		return seedPlane(f, spec.Axis, spec.Offset)
	case ShapeSphere:
		return seedSphere(f, spec.Center, spec.Radius)
	case ShapeBox:
		return seedBox(f, spec.Center, spec.Halves)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, spec.Shape)
	}
}

// seedPlane writes the signed distance to the hyperplane
// coordinate[axis] == offset.
func seedPlane(f *grid.Field, axis int, offset float64) error {
	coords, err := grid.Axis(f, axis)
	if err != nil {
		return err
	}
	region := f.Region()
	data := f.Data()
	for pos := range data {
		idx, err := region.IndexAt(pos)
		if err != nil {
			return err
		}
		data[pos] = coords[idx[axis]-region.Origin[axis]] - offset
	}
	return nil
}

// seedSphere writes the signed Euclidean distance to a sphere surface.
func seedSphere(f *grid.Field, center []float64, radius float64) error {
	region := f.Region()
	spacing := f.Spacing()
	data := f.Data()
	point := make([]float64, region.Dims())
	for pos := range data {
		idx, err := region.IndexAt(pos)
		if err != nil {
			return err
		}
		for d := range point {
			point[d] = float64(idx[d]) * spacing[d]
		}
		data[pos] = floats.Distance(point, center, 2) - radius
	}
	return nil
}

// seedBox writes the Chebyshev distance to an axis-aligned box: the
// largest per-axis excursion beyond the half-width, negative strictly
// inside.
func seedBox(f *grid.Field, center, halves []float64) error {
	region := f.Region()
	spacing := f.Spacing()
	data := f.Data()
	for pos := range data {
		idx, err := region.IndexAt(pos)
		if err != nil {
			return err
		}
		worst := math.Inf(-1)
		for d := range halves {
			excursion := math.Abs(float64(idx[d])*spacing[d]-center[d]) - halves[d]
			if excursion > worst {
				worst = excursion
			}
		}
		data[pos] = worst
	}
	return nil
}
