package scenario

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlset/band"
	"github.com/katalvlaran/lvlset/evolve"
	"github.com/katalvlaran/lvlset/grid"
)

// expectTolerance bounds the per-stat deviation a run may show against a
// declared expectation.
const expectTolerance = 1e-9

// Run executes one scenario end to end: build and seed the field,
// resolve the stepper, optionally extract the narrow band, drive the
// evolve harness and summarize the outcome. Declared expectations are
// verified before returning; a miss surfaces as ErrExpectation.
func Run(sc *Scenario) (*Result, error) {
	if err := Validate(sc); err != nil {
		return nil, err
	}

	var opts []grid.FieldOption
	if len(sc.Grid.Spacing) > 0 {
		opts = append(opts, grid.WithSpacing(sc.Grid.Spacing...))
	}
	field, err := grid.NewField(grid.Sized(sc.Grid.Size...), opts...)
	if err != nil {
		return nil, err
	}
	if err = Seed(field, sc.Seed); err != nil {
		return nil, err
	}

	stepper, err := NewStepper(sc.Stepper.Name, sc.Stepper.Speed)
	if err != nil {
		return nil, err
	}

	token := sc.Token
	if token == "" {
		token = uuid.NewString()
	}

	p := sc.params()
	harnessOpts := []evolve.Option{
		evolve.WithParams(p),
		evolve.WithTokenSource(evolve.FixedSource(token)),
	}
	if p.NarrowBanding() {
		ws, err := band.Extract(field, p.NarrowBandwidth())
		if err != nil {
			return nil, err
		}
		harnessOpts = append(harnessOpts, evolve.WithInputBand(ws))
	}

	h, err := evolve.New(stepper, harnessOpts...)
	if err != nil {
		return nil, err
	}

	requested := grid.Region{}
	if sc.Request != nil {
		requested = grid.Box(sc.Request.Origin, sc.Request.Size)
	}

	out, err := h.Run(field, requested)
	if err != nil {
		return nil, err
	}
	stats, err := grid.Summarize(out)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Name:       sc.Name,
		RunToken:   token,
		Iterations: p.Iterations(),
		BandSize:   h.BandSize(),
		Stats:      stats,
		Output:     out,
	}
	if err = checkExpectations(sc.Expect, res); err != nil {
		return nil, err
	}
	return res, nil
}

// params materializes the run parameters: YAML fields override the
// defaults through the clamping setters.
func (sc *Scenario) params() evolve.Params {
	p := evolve.DefaultParams()
	if sc.Params.TimeStep != nil {
		p.SetTimeStepSize(*sc.Params.TimeStep)
	}
	if sc.Params.Iterations != nil {
		p.SetIterations(*sc.Params.Iterations)
	}
	if sc.Params.NarrowBanding != nil {
		p.SetNarrowBanding(*sc.Params.NarrowBanding)
	}
	if sc.Params.Bandwidth != nil {
		p.SetNarrowBandwidth(*sc.Params.Bandwidth)
	}
	return p
}

// checkExpectations compares the result against the declared checks.
func checkExpectations(e *ExpectSpec, res *Result) error {
	if e == nil {
		return nil
	}
	if e.BandSize != nil && *e.BandSize != res.BandSize {
		return fmt.Errorf("%w: band_size got %d, want %d",
			ErrExpectation, res.BandSize, *e.BandSize)
	}
	checks := []struct {
		name string
		want *float64
		got  float64
	}{
		{"min", e.Min, res.Stats.Min},
		{"max", e.Max, res.Stats.Max},
		{"mean", e.Mean, res.Stats.Mean},
	}
	for _, c := range checks {
		if c.want != nil && math.Abs(c.got-*c.want) > expectTolerance {
			return fmt.Errorf("%w: %s got %v, want %v",
				ErrExpectation, c.name, c.got, *c.want)
		}
	}
	return nil
}
