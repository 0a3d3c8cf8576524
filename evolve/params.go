package evolve

import "math"

// Defaults for a freshly constructed Params.
const (
	DefaultTimeStepSize    = 0.5
	DefaultNarrowBandwidth = 12.0
	DefaultIterations      = 10
)

// Params carries the run parameters of one evolution. Fields are
// unexported and reached through clamping setters: a negative assignment
// reads back as zero, so a Params can never demand negative time or a
// negative iteration count. The zero value is usable but all-zero; start
// from DefaultParams for the documented defaults.
type Params struct {
	timeStepSize    float64
	narrowBanding   bool
	narrowBandwidth float64
	iterations      int
}

// DefaultParams returns the standard configuration: time step 0.5,
// narrow-banding off with bandwidth 12.0, ten iterations.
func DefaultParams() Params {
	return Params{
		timeStepSize:    DefaultTimeStepSize,
		narrowBandwidth: DefaultNarrowBandwidth,
		iterations:      DefaultIterations,
	}
}

// TimeStepSize returns the per-iteration time increment dt.
func (p Params) TimeStepSize() float64 { return p.timeStepSize }

// SetTimeStepSize assigns dt; negative values clamp to zero.
func (p *Params) SetTimeStepSize(dt float64) {
	p.timeStepSize = math.Max(0, dt)
}

// NarrowBanding reports whether update steps receive the working set.
func (p Params) NarrowBanding() bool { return p.narrowBanding }

// SetNarrowBanding toggles narrow-band operation.
func (p *Params) SetNarrowBanding(on bool) { p.narrowBanding = on }

// NarrowBandwidth returns the configured band width. The harness never
// filters by it; it is carried for steppers and band builders.
func (p Params) NarrowBandwidth() float64 { return p.narrowBandwidth }

// SetNarrowBandwidth assigns the band width; negatives clamp to zero.
func (p *Params) SetNarrowBandwidth(w float64) {
	p.narrowBandwidth = math.Max(0, w)
}

// Iterations returns the number of update steps a run executes.
func (p Params) Iterations() int { return p.iterations }

// SetIterations assigns the iteration count; negatives clamp to zero.
// Zero makes Run the identity transform.
func (p *Params) SetIterations(n int) {
	if n < 0 {
		n = 0
	}
	p.iterations = n
}
