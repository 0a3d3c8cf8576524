package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlset/scenario"
)

// validScenario returns a minimal scenario that passes validation;
// cases below break one field at a time.
func validScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name:        "valid",
		Description: "baseline",
		Grid:        scenario.GridSpec{Size: []int{4, 4}},
		Seed:        scenario.SeedSpec{Shape: scenario.ShapeUniform},
		Stepper:     scenario.StepperSpec{Name: scenario.StepperIdentity},
	}
}

// TestLoad_Valid loads a shipped scenario file end to end.
func TestLoad_Valid(t *testing.T) {
	sc, err := scenario.Load("testdata/box-window.yaml")
	require.NoError(t, err)

	assert.Equal(t, "box-window", sc.Name)
	assert.Equal(t, []int{5, 5}, sc.Grid.Size)
	assert.Equal(t, scenario.ShapeBox, sc.Seed.Shape)
	require.NotNil(t, sc.Request)
	assert.Equal(t, []int{1, 1}, sc.Request.Origin)
	require.NotNil(t, sc.Expect)
	require.NotNil(t, sc.Expect.Mean)
	assert.InDelta(t, 0.1, *sc.Expect.Mean, 1e-12)
}

// TestLoad_MissingFile verifies the read error mentions the path.
func TestLoad_MissingFile(t *testing.T) {
	_, err := scenario.Load("testdata/no-such-scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-scenario.yaml")
}

// TestParse_UnknownField verifies strict decoding rejects typos.
func TestParse_UnknownField(t *testing.T) {
	doc := []byte(`
name: typo
description: Misspelled expectations key.
grid:
  size: [3]
seed:
  shape: uniform
stepper:
  name: identity
expects:
  band_size: 0
`)
	_, err := scenario.Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects", "the offending field must be named")
}

// TestValidate_FieldErrors walks the field-indexed validation rules.
func TestValidate_FieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(sc *scenario.Scenario)
		err    error
		msg    string
	}{
		{"NoName", func(sc *scenario.Scenario) { sc.Name = "" },
			scenario.ErrInvalidScenario, "name"},
		{"NoDescription", func(sc *scenario.Scenario) { sc.Description = "" },
			scenario.ErrInvalidScenario, "description"},
		{"NoGridSize", func(sc *scenario.Scenario) { sc.Grid.Size = nil },
			scenario.ErrInvalidScenario, "grid.size"},
		{"ZeroExtent", func(sc *scenario.Scenario) { sc.Grid.Size = []int{4, 0} },
			scenario.ErrInvalidScenario, "grid.size[1]"},
		{"SpacingRank", func(sc *scenario.Scenario) { sc.Grid.Spacing = []float64{1} },
			scenario.ErrInvalidScenario, "grid.spacing"},
		{"SpacingZero", func(sc *scenario.Scenario) { sc.Grid.Spacing = []float64{1, 0} },
			scenario.ErrInvalidScenario, "grid.spacing[1]"},
		{"NoShape", func(sc *scenario.Scenario) { sc.Seed.Shape = "" },
			scenario.ErrInvalidScenario, "seed.shape"},
		{"BadShape", func(sc *scenario.Scenario) { sc.Seed.Shape = "torus" },
			scenario.ErrUnknownShape, "torus"},
		{"PlaneAxis", func(sc *scenario.Scenario) {
			sc.Seed = scenario.SeedSpec{Shape: scenario.ShapePlane, Axis: 2}
		}, scenario.ErrInvalidScenario, "seed.axis"},
		{"SphereCenterRank", func(sc *scenario.Scenario) {
			sc.Seed = scenario.SeedSpec{Shape: scenario.ShapeSphere, Center: []float64{1}, Radius: 1}
		}, scenario.ErrInvalidScenario, "seed.center"},
		{"SphereRadius", func(sc *scenario.Scenario) {
			sc.Seed = scenario.SeedSpec{Shape: scenario.ShapeSphere, Center: []float64{1, 1}}
		}, scenario.ErrInvalidScenario, "seed.radius"},
		{"BoxHalvesRank", func(sc *scenario.Scenario) {
			sc.Seed = scenario.SeedSpec{Shape: scenario.ShapeBox, Center: []float64{1, 1}, Halves: []float64{1}}
		}, scenario.ErrInvalidScenario, "seed.halves"},
		{"BoxHalfZero", func(sc *scenario.Scenario) {
			sc.Seed = scenario.SeedSpec{Shape: scenario.ShapeBox, Center: []float64{1, 1}, Halves: []float64{1, 0}}
		}, scenario.ErrInvalidScenario, "seed.halves[1]"},
		{"NoStepper", func(sc *scenario.Scenario) { sc.Stepper.Name = "" },
			scenario.ErrInvalidScenario, "stepper.name"},
		{"RequestRank", func(sc *scenario.Scenario) {
			sc.Request = &scenario.RegionSpec{Origin: []int{0}, Size: []int{2, 2}}
		}, scenario.ErrInvalidScenario, "request"},
		{"RequestEmpty", func(sc *scenario.Scenario) {
			sc.Request = &scenario.RegionSpec{Origin: []int{0, 0}, Size: []int{2, 0}}
		}, scenario.ErrInvalidScenario, "request.size[1]"},
		{"NegativeBandSize", func(sc *scenario.Scenario) {
			n := -1
			sc.Expect = &scenario.ExpectSpec{BandSize: &n}
		}, scenario.ErrInvalidScenario, "expect.band_size"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := validScenario()
			tc.mutate(sc)
			err := scenario.Validate(sc)
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.msg, "message must name the field")
		})
	}
}

// TestValidate_NilScenario pins the nil sentinel.
func TestValidate_NilScenario(t *testing.T) {
	assert.ErrorIs(t, scenario.Validate(nil), scenario.ErrNilScenario)
}
