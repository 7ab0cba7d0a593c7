// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Validate checks field ranges with struct tags, then the cross-field rules
// tags cannot express. Name resolution is left to Build.
func (s *Scenario) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil scenario", ErrInvalidScenario)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, formatValidationError(err))
	}

	if math.IsInf(s.TimeStep, 1) {
		return fmt.Errorf("%w: time_step must be finite", ErrInvalidScenario)
	}

	// Run length: exactly one of steps or duration+interval.
	hasDuration := s.Duration > 0 || s.Interval > 0
	switch {
	case s.Steps != nil && hasDuration:
		return fmt.Errorf("%w: steps and duration/interval are mutually exclusive", ErrInvalidScenario)
	case s.Steps == nil && !(s.Duration > 0 && s.Interval > 0):
		return fmt.Errorf("%w: set steps, or both duration and interval", ErrInvalidScenario)
	}

	if len(s.Nodes) == 0 && len(s.Generate) == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidScenario)
	}

	seen := make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		if j, dup := seen[n.Name]; dup {
			return fmt.Errorf("%w: Nodes[%d]: name %q already used by Nodes[%d]", ErrInvalidScenario, i, n.Name, j)
		}
		seen[n.Name] = i

		if !finite(n.Temperature) {
			return fmt.Errorf("%w: Nodes[%d] %q: temperature must be finite", ErrInvalidScenario, i, n.Name)
		}
		switch {
		case n.Material != "" && n.Capacity != 0:
			return fmt.Errorf("%w: Nodes[%d] %q: capacity and material are mutually exclusive", ErrInvalidScenario, i, n.Name)
		case n.Material == "" && n.Capacity == 0:
			return fmt.Errorf("%w: Nodes[%d] %q: capacity or material is required", ErrInvalidScenario, i, n.Name)
		case n.Material != "" && n.Volume == 0:
			return fmt.Errorf("%w: Nodes[%d] %q: material requires volume", ErrInvalidScenario, i, n.Name)
		case n.Material == "" && n.Volume != 0:
			return fmt.Errorf("%w: Nodes[%d] %q: volume requires material", ErrInvalidScenario, i, n.Name)
		}
	}

	for i, g := range s.Generate {
		if err := g.validateValues(); err != nil {
			return fmt.Errorf("%w: Generate[%d] %s: %w", ErrInvalidScenario, i, g.Type, err)
		}
	}

	for i, e := range s.Edges {
		if !finite(e.Parameter) {
			return fmt.Errorf("%w: Edges[%d] %s→%s: parameter must be finite", ErrInvalidScenario, i, e.From, e.To)
		}
	}

	return nil
}

// validateValues rejects the non-finite numbers that tags let through.
// Capacity may be +Inf for boundary nodes; NaN already fails gt=0.
func (g Generator) validateValues() error {
	values := []struct {
		name string
		v    float64
	}{
		{"resistance", g.Resistance},
		{"coefficient", g.Coefficient},
		{"power", g.Power},
		{"jitter", g.Jitter},
	}
	if g.Temperature != nil {
		values = append(values, struct {
			name string
			v    float64
		}{"temperature", *g.Temperature})
	}
	for _, f := range values {
		if !finite(f.v) {
			return fmt.Errorf("%s must be finite, got %g", f.name, f.v)
		}
	}
	if math.IsNaN(g.Capacity) {
		return errors.New("capacity must be a number")
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Report the first failure with its full path (e.g. Scenario.Nodes[2].Name).
	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s], got %v", field, param, e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
