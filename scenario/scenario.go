package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a scenario YAML file, rejecting unknown fields
// and validating the result.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario document. Unknown fields are rejected so that
// typos like "expects:" fail loudly instead of silently dropping checks.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("scenario: parse YAML: %w", err)
	}
	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks structural sanity with field-indexed messages, all
// wrapping ErrInvalidScenario. Stepper names are resolved later, at Run,
// so scenarios may reference rules registered after loading.
func Validate(sc *Scenario) error {
	if sc == nil {
		return ErrNilScenario
	}
	if sc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if sc.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidScenario)
	}

	dims := len(sc.Grid.Size)
	if dims == 0 {
		return fmt.Errorf("%w: grid.size is required", ErrInvalidScenario)
	}
	for d, s := range sc.Grid.Size {
		if s < 1 {
			return fmt.Errorf("%w: grid.size[%d] must be at least 1, got %d",
				ErrInvalidScenario, d, s)
		}
	}
	if n := len(sc.Grid.Spacing); n != 0 && n != dims {
		return fmt.Errorf("%w: grid.spacing must have %d values, got %d",
			ErrInvalidScenario, dims, n)
	}
	for d, h := range sc.Grid.Spacing {
		if h <= 0 {
			return fmt.Errorf("%w: grid.spacing[%d] must be positive, got %v",
				ErrInvalidScenario, d, h)
		}
	}

	if err := validateSeed(&sc.Seed, dims); err != nil {
		return err
	}

	if sc.Stepper.Name == "" {
		return fmt.Errorf("%w: stepper.name is required", ErrInvalidScenario)
	}

	if r := sc.Request; r != nil {
		if len(r.Origin) != dims || len(r.Size) != dims {
			return fmt.Errorf("%w: request must span %d dimensions",
				ErrInvalidScenario, dims)
		}
		for d, s := range r.Size {
			if s < 1 {
				return fmt.Errorf("%w: request.size[%d] must be at least 1, got %d",
					ErrInvalidScenario, d, s)
			}
		}
	}

	if e := sc.Expect; e != nil && e.BandSize != nil && *e.BandSize < 0 {
		return fmt.Errorf("%w: expect.band_size must be non-negative, got %d",
			ErrInvalidScenario, *e.BandSize)
	}
	return nil
}

// validateSeed applies the per-shape field rules.
func validateSeed(s *SeedSpec, dims int) error {
	switch s.Shape {
	case "":
		return fmt.Errorf("%w: seed.shape is required", ErrInvalidScenario)
	case ShapeUniform:
		// Value alone; always valid.
	case ShapePlane:
		if s.Axis < 0 || s.Axis >= dims {
			return fmt.Errorf("%w: seed.axis must be in [0,%d), got %d",
				ErrInvalidScenario, dims, s.Axis)
		}
	case ShapeSphere:
		if len(s.Center) != dims {
			return fmt.Errorf("%w: seed.center must have %d values, got %d",
				ErrInvalidScenario, dims, len(s.Center))
		}
		if s.Radius <= 0 {
			return fmt.Errorf("%w: seed.radius must be positive, got %v",
				ErrInvalidScenario, s.Radius)
		}
	case ShapeBox:
		if len(s.Center) != dims {
			return fmt.Errorf("%w: seed.center must have %d values, got %d",
				ErrInvalidScenario, dims, len(s.Center))
		}
		if len(s.Halves) != dims {
			return fmt.Errorf("%w: seed.halves must have %d values, got %d",
				ErrInvalidScenario, dims, len(s.Halves))
		}
		for d, h := range s.Halves {
			if h <= 0 {
				return fmt.Errorf("%w: seed.halves[%d] must be positive, got %v",
					ErrInvalidScenario, d, h)
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, s.Shape)
	}
	return nil
}
