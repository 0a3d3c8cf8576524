// Package evolve defines the harness types, options and sentinel errors.
package evolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlset/band"
	"github.com/katalvlaran/lvlset/grid"
)

var (
	// ErrNilStepper indicates New was called without an update rule.
	ErrNilStepper = errors.New("evolve: nil stepper")

	// ErrNilInput indicates Run was called with a nil input field.
	ErrNilInput = errors.New("evolve: nil input field")

	// ErrNotAllocated indicates a BufferPair was used before Allocate.
	ErrNotAllocated = errors.New("evolve: buffer pair not allocated")

	// ErrInvalidParameter indicates a run parameter that survived the
	// clamping setters in an unusable state, such as a NaN time step.
	ErrInvalidParameter = errors.New("evolve: invalid run parameter")
)

// Stepper is the single extension point of the harness: one update step
// reading the current level-set values from in and writing the next
// values to out, scaled by the time step dt.
//
// When ws is non-nil the step may restrict its work to the listed nodes;
// ws == nil means a full-grid pass. A stepper owns every sample of out it
// cares about: samples it never writes keep whatever the buffer held.
type Stepper interface {
	Step(in, out *grid.Field, dt float64, ws *band.Band) error
}

// StepperFunc adapts a plain function to the Stepper interface.
type StepperFunc func(in, out *grid.Field, dt float64, ws *band.Band) error

// Step implements Stepper by calling f.
func (f StepperFunc) Step(in, out *grid.Field, dt float64, ws *band.Band) error {
	return f(in, out, dt, ws)
}

// StepError reports an update step that failed mid-run. The run aborts
// immediately: no further iterations execute and nothing is copied out.
type StepError struct {
	// Iteration is the zero-based iteration whose step failed.
	Iteration int
	// Err is the stepper's error.
	Err error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("evolve: update step failed at iteration %d: %v", e.Iteration, e.Err)
}

// Unwrap exposes the stepper's error to errors.Is and errors.As.
func (e *StepError) Unwrap() error { return e.Err }

// IterationEvent describes one completed iteration of a run.
type IterationEvent struct {
	// RunToken identifies the run the event belongs to; every event of
	// one run carries the same token.
	RunToken string
	// Iteration is the zero-based iteration that just completed.
	Iteration int
	// Iterations is the total number the run will execute.
	Iterations int
	// BandSize is the live working-set size at the time of the event:
	// zero when narrow-banding is disabled.
	BandSize int
}

// Observer receives one IterationEvent per completed iteration, on the
// goroutine that called Run.
type Observer func(IterationEvent)

// Option configures a Harness at construction.
type Option func(h *Harness)

// WithParams installs the run parameters. Default: DefaultParams().
func WithParams(p Params) Option {
	return func(h *Harness) { h.params = p }
}

// WithInputBand installs the narrow-band working set handed to every
// iteration when narrow-banding is enabled. The harness owns the band for
// the duration of a run.
func WithInputBand(b *band.Band) Option {
	return func(h *Harness) { h.inputBand = b }
}

// WithRegionPolicy installs the region negotiation adapter.
// Default: FullExtent.
func WithRegionPolicy(p RegionPolicy) Option {
	return func(h *Harness) { h.policy = p }
}

// WithObserver installs a per-iteration callback.
func WithObserver(fn Observer) Option {
	return func(h *Harness) { h.observer = fn }
}

// WithTokenSource overrides how run tokens are minted.
// Default: UUIDSource.
func WithTokenSource(src TokenSource) Option {
	return func(h *Harness) { h.tokens = src }
}
