package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlset/grid"
	"github.com/katalvlaran/lvlset/scenario"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

// TestRun_OffsetFullGrid drives a complete run and checks the closed-form
// outcome and result bookkeeping.
func TestRun_OffsetFullGrid(t *testing.T) {
	sc := &scenario.Scenario{
		Name:        "offset-full",
		Description: "offset rule over the whole grid",
		Token:       "tok-offset-full",
		Grid:        scenario.GridSpec{Size: []int{4, 3}},
		Seed:        scenario.SeedSpec{Shape: scenario.ShapeUniform},
		Params: scenario.ParamSpec{
			TimeStep:   fptr(0.5),
			Iterations: iptr(10),
		},
		Stepper: scenario.StepperSpec{Name: scenario.StepperOffset, Speed: 2},
	}

	res, err := scenario.Run(sc)
	require.NoError(t, err)

	assert.Equal(t, "offset-full", res.Name)
	assert.Equal(t, "tok-offset-full", res.RunToken)
	assert.Equal(t, 10, res.Iterations)
	assert.Equal(t, 0, res.BandSize)
	assert.Equal(t, grid.Stats{Min: 10, Max: 10, Mean: 10}, res.Stats)
	for i, v := range res.Output.Data() {
		if v != 10 {
			t.Fatalf("sample %d = %v; want 10", i, v)
		}
	}
}

// TestRun_NarrowBandExtract verifies the band is built from the seeded
// field with the configured bandwidth.
func TestRun_NarrowBandExtract(t *testing.T) {
	sc := &scenario.Scenario{
		Name:        "band-extract",
		Description: "identity run with a narrow band",
		Grid:        scenario.GridSpec{Size: []int{7}},
		Seed:        scenario.SeedSpec{Shape: scenario.ShapePlane, Axis: 0, Offset: 3},
		Params: scenario.ParamSpec{
			NarrowBanding: bptr(true),
			Bandwidth:     fptr(2),
			Iterations:    iptr(2),
		},
		Stepper: scenario.StepperSpec{Name: scenario.StepperIdentity},
	}

	res, err := scenario.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, 3, res.BandSize, "|v| <= 1 holds at three grid points")
	assert.InDeltaSlice(t, []float64{-3, -2, -1, 0, 1, 2, 3}, res.Output.Data(), 1e-12,
		"identity run leaves the seed untouched")
}

// TestRun_MintsTokenWhenUnset verifies a fresh UUID-shaped token appears.
func TestRun_MintsTokenWhenUnset(t *testing.T) {
	sc := &scenario.Scenario{
		Name:        "minted",
		Description: "no fixed token",
		Grid:        scenario.GridSpec{Size: []int{3}},
		Seed:        scenario.SeedSpec{Shape: scenario.ShapeUniform},
		Params:      scenario.ParamSpec{Iterations: iptr(1)},
		Stepper:     scenario.StepperSpec{Name: scenario.StepperIdentity},
	}

	res, err := scenario.Run(sc)
	require.NoError(t, err)
	assert.Len(t, res.RunToken, 36, "minted tokens are canonical UUID strings")
}

// TestRun_ExpectationFailure verifies a finished run that misses a
// declared check surfaces ErrExpectation.
func TestRun_ExpectationFailure(t *testing.T) {
	sc := &scenario.Scenario{
		Name:        "expect-miss",
		Description: "wrong min bound",
		Grid:        scenario.GridSpec{Size: []int{3}},
		Seed:        scenario.SeedSpec{Shape: scenario.ShapeUniform, Value: 1},
		Params:      scenario.ParamSpec{Iterations: iptr(0)},
		Stepper:     scenario.StepperSpec{Name: scenario.StepperIdentity},
		Expect:      &scenario.ExpectSpec{Min: fptr(0)},
	}

	_, err := scenario.Run(sc)
	assert.ErrorIs(t, err, scenario.ErrExpectation)
	assert.Contains(t, err.Error(), "min", "message must name the stat")

	n := 5
	sc.Expect = &scenario.ExpectSpec{BandSize: &n}
	_, err = scenario.Run(sc)
	assert.ErrorIs(t, err, scenario.ErrExpectation)
	assert.Contains(t, err.Error(), "band_size")
}

// TestRun_UnknownStepper verifies registry misses surface before any work.
func TestRun_UnknownStepper(t *testing.T) {
	sc := validScenario()
	sc.Stepper.Name = "warp"
	_, err := scenario.Run(sc)
	assert.ErrorIs(t, err, scenario.ErrUnknownStepper)
}

// TestRun_RequestOutsideGrid verifies harness region errors pass through.
func TestRun_RequestOutsideGrid(t *testing.T) {
	sc := validScenario()
	sc.Request = &scenario.RegionSpec{Origin: []int{3, 3}, Size: []int{3, 3}}
	_, err := scenario.Run(sc)
	assert.ErrorIs(t, err, grid.ErrRegionMismatch)
}

// TestRun_InvalidScenario verifies Run validates before building anything.
func TestRun_InvalidScenario(t *testing.T) {
	sc := validScenario()
	sc.Grid.Size = nil
	_, err := scenario.Run(sc)
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)

	_, err = scenario.Run(nil)
	assert.ErrorIs(t, err, scenario.ErrNilScenario)
}
