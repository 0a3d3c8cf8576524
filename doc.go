// Package lvlset is an in-memory toolkit for evolving level-set fields:
// dense N-D grids, narrow-band working sets and a double-buffered
// iteration harness, with declarative YAML scenarios on top.
//
// 🚀 What is lvlset?
//
//	A small, explicit library that brings together:
//		• Dense fields: N-D regions, flat row-major storage, checked windows
//		• Narrow bands: working sets of grid points near the zero crossing
//		• Evolution: double-buffered iteration with pluggable update rules
//		• Scenarios: YAML-described runs with seeds, steppers and goldens
//		• CLI: run and check scenario files from the command line
//
// ✨ Why choose lvlset?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed tokens and seeded fields make runs replayable
//   - Explicit errors – package-prefixed sentinels, errors.Is/As all the way
//   - Extensible – pluggable steppers, region policies and observers
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/     — Region & Field: N-D extents, spacing, windows, stats
//	band/     — narrow-band working sets extracted near the front
//	evolve/   — Params, BufferPair and the iteration Harness
//	scenario/ — YAML scenarios: seeds, steppers, golden transcripts
//	cli/      — cobra commands behind cmd/lvlset
//
// Quick ASCII example:
//
//	#####
//	00000
//	.....
//
//	a 2-D front: negative inside ('#'), zero on the interface ('0'),
//	positive outside ('.').
//
//	go get github.com/katalvlaran/lvlset
package lvlset
