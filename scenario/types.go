// Package scenario defines the YAML schema, sentinel errors and result
// types for declarative evolution runs.
package scenario

import (
	"errors"

	"github.com/katalvlaran/lvlset/grid"
)

var (
	// ErrNilScenario indicates a nil *Scenario was passed.
	ErrNilScenario = errors.New("scenario: nil scenario")

	// ErrNilResult indicates a nil or output-less *Result was passed.
	ErrNilResult = errors.New("scenario: nil result")

	// ErrInvalidScenario wraps every field-level validation failure.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownShape indicates a seed shape outside the supported set.
	ErrUnknownShape = errors.New("scenario: unknown seed shape")

	// ErrUnknownStepper indicates a stepper name with no registered factory.
	ErrUnknownStepper = errors.New("scenario: unknown stepper")

	// ErrExpectation indicates a run that finished but missed a declared
	// expectation.
	ErrExpectation = errors.New("scenario: expectation failed")
)

// Seed shape constants.
const (
	ShapeUniform = "uniform"
	ShapePlane   = "plane"
	ShapeSphere  = "sphere"
	ShapeBox     = "box"
)

// Scenario describes one declarative evolution run: the grid to build,
// the initial level-set seed, run parameters, the update rule and
// optional expectations on the outcome.
type Scenario struct {
	// Name uniquely identifies the scenario; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates or checks.
	Description string `yaml:"description"`

	// Token optionally fixes the run token for deterministic transcripts.
	// Empty mints a fresh UUID per run.
	Token string `yaml:"token,omitempty"`

	// Grid declares the field extent and sample spacing.
	Grid GridSpec `yaml:"grid"`

	// Seed declares the initial level-set values.
	Seed SeedSpec `yaml:"seed"`

	// Params overrides individual run parameters; absent fields keep the
	// evolve defaults.
	Params ParamSpec `yaml:"params,omitempty"`

	// Stepper names the registered update rule and its speed.
	Stepper StepperSpec `yaml:"stepper"`

	// Request optionally narrows the requested output sub-region.
	Request *RegionSpec `yaml:"request,omitempty"`

	// Expect optionally declares outcome checks verified after the run.
	Expect *ExpectSpec `yaml:"expect,omitempty"`
}

// GridSpec declares the field geometry.
type GridSpec struct {
	// Size lists the extent per dimension; every entry must be >= 1.
	Size []int `yaml:"size"`

	// Spacing lists the physical sample distance per dimension.
	// Empty means 1.0 everywhere.
	Spacing []float64 `yaml:"spacing,omitempty"`
}

// SeedSpec declares the initial level-set. Shape selects the builder;
// the remaining fields apply per shape.
type SeedSpec struct {
	Shape string `yaml:"shape"`

	// Value is the constant for "uniform". Default 0.
	Value float64 `yaml:"value,omitempty"`

	// Axis and Offset place the "plane" front: value = coordinate along
	// Axis minus Offset.
	Axis   int     `yaml:"axis,omitempty"`
	Offset float64 `yaml:"offset,omitempty"`

	// Center positions "sphere" and "box" seeds, in physical coordinates.
	Center []float64 `yaml:"center,omitempty"`

	// Radius is the "sphere" radius; must be positive.
	Radius float64 `yaml:"radius,omitempty"`

	// Halves lists the per-axis half-widths of the "box"; all positive.
	Halves []float64 `yaml:"halves,omitempty"`
}

// ParamSpec mirrors evolve.Params with optional fields: nil keeps the
// default, assigned values pass through the clamping setters.
type ParamSpec struct {
	TimeStep      *float64 `yaml:"time_step,omitempty"`
	Iterations    *int     `yaml:"iterations,omitempty"`
	NarrowBanding *bool    `yaml:"narrow_banding,omitempty"`
	Bandwidth     *float64 `yaml:"bandwidth,omitempty"`
}

// StepperSpec names a registered update rule.
type StepperSpec struct {
	Name string `yaml:"name"`

	// Speed parameterizes the rule; the identity rule ignores it.
	Speed float64 `yaml:"speed,omitempty"`
}

// RegionSpec declares an index region in YAML.
type RegionSpec struct {
	Origin []int `yaml:"origin"`
	Size   []int `yaml:"size"`
}

// ExpectSpec declares outcome checks. Nil fields are not checked; stats
// compare within a 1e-9 tolerance.
type ExpectSpec struct {
	BandSize *int     `yaml:"band_size,omitempty"`
	Min      *float64 `yaml:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty"`
	Mean     *float64 `yaml:"mean,omitempty"`
}

// Result captures the outcome of one scenario run.
type Result struct {
	// Name echoes the scenario name.
	Name string
	// RunToken identifies the run; fixed by Scenario.Token or minted.
	RunToken string
	// Iterations is the number of update steps executed.
	Iterations int
	// BandSize is the final working-set size, 0 without narrow-banding.
	BandSize int
	// Stats summarizes the output samples.
	Stats grid.Stats
	// Output is the evolved field.
	Output *grid.Field
}
