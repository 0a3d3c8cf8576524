// Package band maintains the narrow-band working set for level-set
// evolution: the ordered list of grid nodes near the zero crossing that
// update steps may restrict themselves to.
//
// Overview:
//
//   - A Node names one grid point (multi-index) plus an auxiliary scalar,
//     typically the field value or signed distance at that point.
//   - A Band is an ordered Node sequence. Ordering is caller-significant
//     and never changed here: steppers that rely on a sweep order get the
//     nodes back exactly as installed.
//   - FromNodes installs the caller's slice without copying, and Nodes
//     returns the live slice. A stepper may therefore mutate node values
//     in place between iterations; use Clone when isolation is needed.
//   - Extract builds a Band from a field by collecting every point whose
//     absolute value is at most half the given width, in the field's
//     flat storage order (dimension 0 fastest).
//
// Complexity:
//
//   - Band operations are O(1) except Clone, which is O(nodes).
//   - Extract is O(points) over the source field.
//
// Errors:
//
//	ErrNilField — Extract was handed a nil field.
//	ErrBadWidth — Extract was handed a negative or NaN width.
package band
