// Package scenario drives level-set evolutions from declarative YAML
// documents: conformance tests, golden transcripts, examples and the CLI
// all share one schema.
//
// What:
//
//   - Scenario — the YAML schema: grid geometry, a seed shape (uniform,
//     plane, sphere, box), run parameters, a named stepper, an optional
//     requested sub-region and optional outcome expectations.
//   - Load/Parse — strict decoding (unknown fields rejected) plus
//     field-indexed validation, so a typo fails loudly at load time.
//   - Seed — signed-distance field builders, inside-negative convention.
//   - RegisterStepper/NewStepper — a name-to-factory registry with three
//     built-in calibration rules: identity (carry through), offset
//     (+speed·dt per visited sample) and scale (×(1+speed·dt)). They
//     calibrate the harness plumbing; they are not PDE speed functions.
//   - Run — build, seed, extract the band when narrow-banding is on,
//     drive the evolve harness, summarize, verify expectations.
//   - Snapshot/Render — deterministic ASCII sign-contour transcripts;
//     RunWithGolden compares them against testdata/golden fixtures.
//
// A minimal document:
//
//	name: offset-ramp
//	description: Plane front advected by the offset rule.
//	token: golden-offset-ramp
//	grid:
//	  size: [7]
//	seed:
//	  shape: plane
//	  axis: 0
//	  offset: 3
//	params:
//	  time_step: 0.5
//	  iterations: 4
//	stepper:
//	  name: offset
//	  speed: 1
//
// Errors:
//
//   - ErrInvalidScenario: a schema field failed validation (the message
//     names the field).
//   - ErrUnknownShape / ErrUnknownStepper: an unregistered name.
//   - ErrExpectation: the run finished but missed a declared check.
//   - Errors from grid/evolve pass through unchanged.
package scenario
