package svf

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-svf/dsp/core"
)

func TestSpecDerivedValues(t *testing.T) {
	spec := NewSpec(core.NewClock(44_100), 22_000, 0.5)

	// float64 variables keep the expectation in runtime arithmetic; constant
	// expressions would be evaluated exactly and rounded once.
	sampleRate, cutoff, resonance, pi := 44_100.0, 22_000.0, 0.5, math.Pi
	tick := 1 / sampleRate

	wantGPrime := cutoff * (pi * tick)
	if spec.gPrime != wantGPrime {
		t.Fatalf("g' = %v, want %v", spec.gPrime, wantGPrime)
	}

	slope := 1.85
	if wantK := 2 - slope*resonance; spec.k != wantK {
		t.Fatalf("k = %v, want %v", spec.k, wantK)
	}

	if spec.Cutoff() != 22_000 || spec.Resonance() != 0.5 {
		t.Fatalf("cutoff/resonance = %v/%v, want 22000/0.5", spec.Cutoff(), spec.Resonance())
	}
}

func TestSpecRecomputesEagerly(t *testing.T) {
	var spec Spec

	spec.SetCutoff(1000)
	spec.SetResonance(1)

	if spec.gPrime != 0 {
		t.Fatalf("g' before clock = %v, want 0", spec.gPrime)
	}

	spec.SetClock(core.NewClock(48_000))

	if want := 1000 * (math.Pi / 48_000); !core.NearlyEqual(spec.gPrime, want, 1e-15) {
		t.Fatalf("g' = %v, want %v", spec.gPrime, want)
	}

	if !core.NearlyEqual(spec.k, 0.15, 1e-15) {
		t.Fatalf("k = %v, want 0.15", spec.k)
	}

	spec.SetClock(core.NewClock(96_000))

	if want := 1000 * (math.Pi / 96_000); !core.NearlyEqual(spec.gPrime, want, 1e-15) {
		t.Fatalf("g' after rate change = %v, want %v", spec.gPrime, want)
	}
}

func TestCookIsSideEffectFree(t *testing.T) {
	spec := NewSpec(core.NewClock(48_000), 3_000, 0.2)
	before := *spec

	a := spec.Cook()
	b := spec.Cook()

	if a != b {
		t.Fatalf("cooked snapshots differ: %+v vs %+v", a, b)
	}

	if *spec != before {
		t.Fatalf("Cook mutated spec: %+v vs %+v", *spec, before)
	}

	if a.GPrime() != spec.gPrime || a.K() != spec.k || a.PiTick() != spec.piTick {
		t.Fatalf("cooked %+v does not match spec %+v", a, *spec)
	}
}

func TestCookedModulation(t *testing.T) {
	spec := NewSpec(core.NewClock(48_000), 500, 0.5)
	base := spec.Cook()

	mod := base.WithCutoff(2_000).WithResonance(1)

	if mod.GPrime() != base.PiTick()*2_000 {
		t.Fatalf("modulated g' = %v, want %v", mod.GPrime(), base.PiTick()*2_000)
	}

	if mod.K() != damping(1) {
		t.Fatalf("modulated k = %v, want %v", mod.K(), damping(1))
	}

	if base != spec.Cook() {
		t.Fatal("modulating a copy changed the original snapshot")
	}

	if mod.PiTick() != base.PiTick() {
		t.Fatal("modulation changed pi*tick")
	}
}

func TestCookedOversampleFactor(t *testing.T) {
	clock := core.NewClock(44_100)

	tests := []struct {
		cutoff float64
		want   int
	}{
		{cutoff: 100, want: 1},
		{cutoff: 22_000, want: 1},
		{cutoff: 30_000, want: 2},
		{cutoff: 50_000, want: 3},
	}

	for _, tt := range tests {
		got := NewSpec(clock, tt.cutoff, 0).Cook().OversampleFactor()
		if got != tt.want {
			t.Fatalf("cutoff %v: factor = %d, want %d", tt.cutoff, got, tt.want)
		}
	}
}
