// Package grid defines core types and sentinel errors for index regions
// and scalar fields used by the lvlset subpackages.
package grid

import "errors"

// Sentinel errors for region and field operations.
var (
	// ErrDimensionMismatch indicates origin/size/spacing/index dimension counts disagree.
	ErrDimensionMismatch = errors.New("grid: dimension count mismatch")
	// ErrNegativeSize indicates a region size below zero.
	ErrNegativeSize = errors.New("grid: region size must be non-negative")
	// ErrEmptyRegion indicates a field allocation over zero grid points.
	ErrEmptyRegion = errors.New("grid: region contains no grid points")
	// ErrBadSpacing indicates a non-positive grid spacing.
	ErrBadSpacing = errors.New("grid: spacing must be positive in every dimension")
	// ErrIndexOutOfRange indicates an index outside a field's region.
	ErrIndexOutOfRange = errors.New("grid: index outside region")
	// ErrAxisOutOfRange indicates an axis number outside [0, dims).
	ErrAxisOutOfRange = errors.New("grid: axis out of range")
	// ErrRegionMismatch indicates a source field that does not cover the destination region.
	ErrRegionMismatch = errors.New("grid: region not covered by source")
	// ErrNilField indicates a nil *Field argument.
	ErrNilField = errors.New("grid: nil field")
)

// Region is a rectangular N-dimensional index range: Origin is the lowest
// index per dimension, Size the number of grid points per dimension.
// Regions are compared and combined as values; methods never mutate the
// receiver or their arguments.
type Region struct {
	Origin []int
	Size   []int
}

// Box constructs a Region from origin and size, deep-copying both slices
// so the caller's backing arrays stay untouched.
func Box(origin, size []int) Region {
	o := make([]int, len(origin))
	copy(o, origin)
	s := make([]int, len(size))
	copy(s, size)

	return Region{Origin: o, Size: s}
}

// Sized constructs a zero-origin Region of the given sizes.
// Convenience for the common "grid of W×H×..." case.
func Sized(size ...int) Region {
	return Box(make([]int, len(size)), size)
}
