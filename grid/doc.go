// Package grid provides the rectangular index regions and scalar fields
// that the lvlset evolution machinery operates on.
//
// Overview:
//
//   - A Region is a bounded N-dimensional index range described by an
//     origin and a size per dimension. Regions are plain values; all
//     operations (containment, intersection, position mapping) are pure.
//   - A Field is a scalar-valued grid allocated over a Region with a
//     physical spacing per dimension. Values are stored row-major with
//     dimension 0 varying fastest, so hot loops can walk Data() directly
//     while occasional access goes through the bounds-checked At/Set pair.
//
// Copy semantics:
//
//   - CopyFrom deep-copies values over the destination's region and fails
//     with ErrRegionMismatch when the source does not cover it. This is the
//     primitive behind buffer fill and drain in the evolve package: a
//     source may always be larger than the destination, never smaller.
//
// Complexity:
//
//   - Region operations are O(dims).
//   - Field copies are O(points) with contiguous runs copied per row.
//
// Errors (sentinels, one per failure mode):
//
//	ErrDimensionMismatch — region/spacing/index dimension counts disagree.
//	ErrNegativeSize      — a region size is negative.
//	ErrEmptyRegion       — a field was requested over zero grid points.
//	ErrBadSpacing        — a spacing value is zero or negative.
//	ErrIndexOutOfRange   — an index lies outside the field's region.
//	ErrAxisOutOfRange    — an axis number is outside [0, dims).
//	ErrRegionMismatch    — a source field does not cover the destination.
//	ErrNilField          — a nil *Field was passed where one is required.
package grid
