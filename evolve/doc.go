// Package evolve provides the iteration scaffolding for level-set
// evolution: a double-buffered harness that owns the run loop while a
// pluggable Stepper supplies the actual update rule.
//
// What:
//
//   - Params — run parameters (time step, iteration count, narrow-band
//     switch and width) with clamping setters: negative assignments read
//     back as zero.
//   - BufferPair — the two working fields of a run. Steps read the input
//     buffer and write the output buffer; Swap exchanges the roles by
//     pointer in O(1).
//   - Stepper — the single extension point. The harness calls
//     Step(in, out, dt, ws) once per iteration and never inspects sample
//     values itself.
//   - RegionPolicy — two-phase extent negotiation between harness and
//     pipeline (how much input is required, how much output will be
//     produced); FullExtent is the default answer for both.
//   - Harness — wires the above: negotiate, allocate, copy in, iterate
//     with swaps between iterations, copy out.
//
// Run loop:
//
//	negotiated := policy(requested, available)
//	allocate result field and buffer pair   // bad regions fail here
//	copy input -> input buffer
//	for i := 0; i < iterations; i++ {
//	    stepper.Step(inBuf, outBuf, dt, ws)
//	    if i < iterations-1 { swap roles }
//	}
//	copy output buffer -> result field
//
// Zero iterations short-circuits to the identity transform. A failing
// step aborts the run with a *StepError and no output is produced. The
// caller's input field is read-only throughout.
//
// Narrow banding:
//
//   - While Params.NarrowBanding is on, every Step receives the installed
//     *band.Band as its working set and BandSize reports the band's live
//     length; while off, ws is nil (full-grid pass) and BandSize is 0.
//   - The harness hands the same band to every iteration and never
//     filters it by the configured bandwidth; rebuilding or trimming the
//     working set is stepper policy.
//
// Observation:
//
//   - An optional Observer receives one IterationEvent per completed
//     iteration, tagged with a per-run token (UUID by default, fixable
//     for tests via WithTokenSource).
//
// Complexity:
//
//   - Run is O(iterations × step cost) plus two O(points) copies.
//   - Swap is O(1); repeated runs over one region and spacing reuse the
//     buffers.
//
// Errors:
//
//   - ErrNilStepper: New without an update rule.
//   - ErrNilInput: Run without an input field.
//   - ErrInvalidParameter: a parameter the clamping setters cannot repair
//     (NaN time step).
//   - ErrNotAllocated: BufferPair used before Allocate.
//   - grid.ErrRegionMismatch: requested region outside the input extent,
//     or an input that cannot satisfy the negotiated requirement.
//   - grid.ErrEmptyRegion and the other grid sentinels: a negotiated
//     region no field can be built over; surfaces before any step runs.
//   - *StepError: an update step failed; wraps the stepper's error.
//
// See examples in example_test.go.
package evolve
