// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math"
	"math/rand"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if cfg.rng != nil {
		t.Error("default rng must be nil")
	}
	if cfg.temperature != defaultTemperature || cfg.capacity != defaultCapacity {
		t.Errorf("defaults T=%g C=%g", cfg.temperature, cfg.capacity)
	}
	if got := cfg.paramFn(nil, 3.5); got != 3.5 {
		t.Errorf("default paramFn: expected 3.5, got %g", got)
	}
	if T, err := cfg.nodeTemperature(); err != nil || T != defaultTemperature {
		t.Errorf("nodeTemperature = %g, %v", T, err)
	}
}

func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	// Later options win.
	cfg := newBuilderConfig(WithSymbNumb("x"), WithDefaultIDs(), WithTemperature(10), WithTemperature(20))
	if got := cfg.idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}
	if cfg.temperature != 20 {
		t.Errorf("temperature = %g, want 20", cfg.temperature)
	}

	cfg = newBuilderConfig(WithCapacity(math.Inf(1)))
	if !math.IsInf(cfg.capacity, 1) {
		t.Error("WithCapacity(+Inf) must be accepted for boundary nodes")
	}
}

func TestNodeTemperature_Jitter(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithTemperatureJitter(2))
	if _, err := cfg.nodeTemperature(); err != ErrNeedRandSource {
		t.Errorf("jitter without rng: err = %v", err)
	}

	cfg = newBuilderConfig(WithTemperatureJitter(2), WithRand(rand.New(rand.NewSource(3))))
	for i := 0; i < 100; i++ {
		T, err := cfg.nodeTemperature()
		if err != nil {
			t.Fatal(err)
		}
		if T < defaultTemperature-2 || T > defaultTemperature+2 {
			t.Fatalf("T=%g outside ±2 of default", T)
		}
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithIDScheme(nil)":       func() { WithIDScheme(nil) },
		"WithRand(nil)":           func() { WithRand(nil) },
		"WithTemperature(NaN)":    func() { WithTemperature(math.NaN()) },
		"WithCapacity(0)":         func() { WithCapacity(0) },
		"WithTemperatureJitter-1": func() { WithTemperatureJitter(-1) },
		"WithParameterFn(nil)":    func() { WithParameterFn(nil) },
		"ScaledParameterFn(0,1)":  func() { ScaledParameterFn(0, 1) },
		"ScaledParameterFn(2,1)":  func() { ScaledParameterFn(2, 1) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestScaledParameterFn(t *testing.T) {
	t.Parallel()

	fn := ScaledParameterFn(2, 2)
	if got := fn(rand.New(rand.NewSource(1)), 3); got != 6 {
		t.Errorf("degenerate scale: got %g, want 6", got)
	}
	if got := ScaledParameterFn(0.5, 1.5)(nil, 4); got != 4 {
		t.Errorf("nil rng: got %g, want nominal 4", got)
	}
}
