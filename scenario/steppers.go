package scenario

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlset/band"
	"github.com/katalvlaran/lvlset/evolve"
	"github.com/katalvlaran/lvlset/grid"
)

// Built-in stepper names.
const (
	StepperIdentity = "identity"
	StepperOffset   = "offset"
	StepperScale    = "scale"
)

// StepperFactory builds an update rule for a configured speed.
type StepperFactory func(speed float64) evolve.Stepper

var steppers = map[string]StepperFactory{}

// RegisterStepper adds a factory under the provided name. Empty names and
// nil factories are ignored; re-registering a name replaces the factory.
func RegisterStepper(name string, f StepperFactory) {
	if name == "" || f == nil {
		return
	}
	steppers[name] = f
}

// Steppers lists the registered rule names in sorted order.
func Steppers() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewStepper builds the named rule. Returns ErrUnknownStepper with the
// available names when no factory is registered.
func NewStepper(name string, speed float64) (evolve.Stepper, error) {
	f, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownStepper, name, Steppers())
	}
	return f(speed), nil
}

func init() {
	RegisterStepper(StepperIdentity, func(float64) evolve.Stepper { return identity{} })
	RegisterStepper(StepperOffset, func(speed float64) evolve.Stepper { return offset{speed: speed} })
	RegisterStepper(StepperScale, func(speed float64) evolve.Stepper { return scale{speed: speed} })
}

// identity carries the field through unchanged: the calibration baseline
// for buffer plumbing.
type identity struct{}

func (identity) Step(in, out *grid.Field, _ float64, _ *band.Band) error {
	return out.CopyFrom(in)
}

// offset adds speed*dt to every visited sample, so n iterations raise a
// sample by exactly n*speed*dt.
type offset struct{ speed float64 }

func (s offset) Step(in, out *grid.Field, dt float64, ws *band.Band) error {
	if ws == nil {
		dst := out.Data()
		for i, v := range in.Data() {
			dst[i] = v + s.speed*dt
		}
		return nil
	}
	if err := out.CopyFrom(in); err != nil {
		return err
	}
	for _, n := range ws.Nodes() {
		v, err := in.At(n.Index)
		if err != nil {
			return err
		}
		if err := out.Set(n.Index, v+s.speed*dt); err != nil {
			return err
		}
	}
	return nil
}

// scale multiplies every visited sample by (1 + speed*dt), so n
// iterations scale a sample by exactly (1+speed*dt)^n.
type scale struct{ speed float64 }

func (s scale) Step(in, out *grid.Field, dt float64, ws *band.Band) error {
	factor := 1 + s.speed*dt
	if ws == nil {
		dst := out.Data()
		for i, v := range in.Data() {
			dst[i] = v * factor
		}
		return nil
	}
	if err := out.CopyFrom(in); err != nil {
		return err
	}
	for _, n := range ws.Nodes() {
		v, err := in.At(n.Index)
		if err != nil {
			return err
		}
		if err := out.Set(n.Index, v*factor); err != nil {
			return err
		}
	}
	return nil
}
