package evolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlset/band"
	"github.com/katalvlaran/lvlset/grid"
)

// Harness drives a level-set evolution: it negotiates regions, owns the
// double-buffered field pair, executes the configured number of update
// steps and assembles the output field. The update rule itself is
// supplied as a Stepper; the harness never inspects sample values.
//
// A Harness is not safe for concurrent use. Parameters changed between
// runs take effect on the next Run; a run works on the snapshot taken
// when it started.
type Harness struct {
	stepper   Stepper
	params    Params
	inputBand *band.Band
	policy    RegionPolicy
	observer  Observer
	tokens    TokenSource

	buffers BufferPair
}

// New builds a Harness around stepper. Defaults: DefaultParams, the
// FullExtent region policy, UUID run tokens, no band, no observer.
// Returns ErrNilStepper when no update rule is given.
func New(stepper Stepper, opts ...Option) (*Harness, error) {
	if stepper == nil {
		return nil, ErrNilStepper
	}
	h := &Harness{
		stepper: stepper,
		params:  DefaultParams(),
		policy:  FullExtent{},
		tokens:  UUIDSource{},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.policy == nil {
		h.policy = FullExtent{}
	}
	if h.tokens == nil {
		h.tokens = UUIDSource{}
	}
	return h, nil
}

// Params returns the current run parameters.
func (h *Harness) Params() Params { return h.params }

// SetParams replaces the run parameters for subsequent runs.
func (h *Harness) SetParams(p Params) { h.params = p }

// InputBand returns the installed working set, nil when none is set.
func (h *Harness) InputBand() *band.Band { return h.inputBand }

// SetInputBand installs the working set handed to update steps while
// narrow-banding is enabled. The harness owns the band during a run.
func (h *Harness) SetInputBand(b *band.Band) { h.inputBand = b }

// BandSize returns 0 while narrow-banding is disabled, otherwise the live
// length of the installed working set, including in-run mutations made by
// the stepper.
func (h *Harness) BandSize() int {
	if !h.params.NarrowBanding() {
		return 0
	}
	return h.inputBand.Len()
}

// RequiredInputRegion asks the region policy how much input is needed to
// produce the requested output. Upstream stages call this before
// preparing data.
func (h *Harness) RequiredInputRegion(requested, available grid.Region) grid.Region {
	return h.policy.RequiredInputRegion(requested, available)
}

// EnlargeOutputRegion asks the region policy how much output the run will
// actually produce for the requested sub-region.
func (h *Harness) EnlargeOutputRegion(requested, available grid.Region) grid.Region {
	return h.policy.EnlargeOutputRegion(requested, available)
}

// Run executes one evolution over input and returns a fresh output field.
//
// requested names the output sub-region the caller cares about; the zero
// Region requests the full input extent. The run proceeds as:
//
//  1. negotiate input and output regions through the region policy,
//  2. allocate the result field over the negotiated output region and
//     the buffer pair over the negotiated input region, both with the
//     input's spacing; region and allocation problems fail here, before
//     any step runs, and a spacing change since the previous run re-fits
//     reused buffers,
//  3. copy the input into the input buffer,
//  4. step-and-swap: each iteration reads the input buffer and writes
//     the output buffer, swapping roles between iterations but not after
//     the last one,
//  5. copy the output buffer into the result field.
//
// Zero iterations is the identity run: no step executes and the output
// equals the copied input. When a step fails the run aborts, nothing is
// copied out, and the error is a *StepError wrapping the stepper's.
// The input field is never written.
func (h *Harness) Run(input *grid.Field, requested grid.Region) (*grid.Field, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	p := h.params
	dt := p.TimeStepSize()
	if math.IsNaN(dt) {
		return nil, fmt.Errorf("%w: time step %v", ErrInvalidParameter, dt)
	}

	available := input.Region()
	if requested.Dims() == 0 {
		requested = available.Clone()
	} else if err := requested.Validate(); err != nil {
		return nil, err
	} else if !available.Contains(requested) {
		return nil, fmt.Errorf("%w: requested %s outside input extent %s",
			grid.ErrRegionMismatch, requested, available)
	}

	inputRegion := h.policy.RequiredInputRegion(requested, available)
	outputRegion := h.policy.EnlargeOutputRegion(requested, available)
	if !available.Contains(inputRegion) {
		return nil, fmt.Errorf("%w: input %s does not satisfy negotiated requirement %s",
			grid.ErrRegionMismatch, available, inputRegion)
	}
	if !inputRegion.Contains(outputRegion) {
		return nil, fmt.Errorf("%w: negotiated output %s exceeds negotiated input %s",
			grid.ErrRegionMismatch, outputRegion, inputRegion)
	}

	// Result field first: an unusable negotiated output region must fail
	// before any step executes.
	spacing := input.Spacing()
	out, err := grid.NewField(outputRegion, grid.WithSpacing(spacing...))
	if err != nil {
		return nil, err
	}
	if err := h.buffers.Allocate(inputRegion, spacing, false); err != nil {
		return nil, err
	}
	if err := h.buffers.CopyIn(input); err != nil {
		return nil, err
	}

	// The working set rides along only while narrow-banding is on; a nil
	// band then still means "full-grid pass" to the stepper.
	var ws *band.Band
	if p.NarrowBanding() {
		ws = h.inputBand
	}

	n := p.Iterations()
	token := h.tokens.Token()
	if n == 0 {
		// Identity run: hand the filled buffer the output role so the
		// copy-out below reads the untouched input values.
		h.buffers.Swap()
	}
	for i := 0; i < n; i++ {
		if err := h.stepper.Step(h.buffers.Input(), h.buffers.Output(), dt, ws); err != nil {
			return nil, &StepError{Iteration: i, Err: err}
		}
		if h.observer != nil {
			size := 0
			if p.NarrowBanding() {
				size = ws.Len()
			}
			h.observer(IterationEvent{
				RunToken:   token,
				Iteration:  i,
				Iterations: n,
				BandSize:   size,
			})
		}
		if i < n-1 {
			h.buffers.Swap()
		}
	}

	if err := h.buffers.CopyOut(out); err != nil {
		return nil, err
	}
	return out, nil
}
