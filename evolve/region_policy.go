package evolve

import "github.com/katalvlaran/lvlset/grid"

// RegionPolicy negotiates processing extents between a harness and the
// pipeline around it, in two phases:
//
//   - RequiredInputRegion answers "to produce the requested output, how
//     much input do I need?" — upstream uses it to prepare data.
//   - EnlargeOutputRegion answers "given that request, how much output
//     will I actually produce?" — stencil-based rules often cannot emit
//     less than a structurally determined extent.
//
// Both receive the caller's requested region and the available input
// extent, and must answer a region inside the available extent.
type RegionPolicy interface {
	RequiredInputRegion(requested, available grid.Region) grid.Region
	EnlargeOutputRegion(requested, available grid.Region) grid.Region
}

// FullExtent is the default policy: every negotiation answers the entire
// available extent, regardless of the requested sub-region. Evolution
// rules are global unless a specialization knows better.
type FullExtent struct{}

// RequiredInputRegion returns the whole available extent.
func (FullExtent) RequiredInputRegion(_, available grid.Region) grid.Region {
	return available.Clone()
}

// EnlargeOutputRegion returns the whole available extent.
func (FullExtent) EnlargeOutputRegion(_, available grid.Region) grid.Region {
	return available.Clone()
}
