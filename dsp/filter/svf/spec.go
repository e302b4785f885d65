package svf

import (
	"math"

	"github.com/cwbudde/algo-svf/dsp/core"
	"github.com/cwbudde/algo-svf/internal/contract"
)

const (
	maxDamping   = 2.0
	dampingSlope = 1.85
)

var (
	_ core.ClockSetter        = (*Spec)(nil)
	_ core.Cooker[CookedSpec] = (*Spec)(nil)
)

// damping maps resonance in [0, 1] to the damping factor k in [0.15, 2].
func damping(resonance float64) float64 {
	return maxDamping - dampingSlope*resonance
}

// Spec holds the user-facing parameters of a state-variable filter.
//
// The zero value has no clock; call SetClock before cooking it.
type Spec struct {
	piTick    float64
	cutoff    float64
	resonance float64
	gPrime    float64 // cutoff * pi * tick
	k         float64
}

// NewSpec returns a Spec clocked at clock with the given cutoff and resonance.
func NewSpec(clock core.Clock, cutoffHz, resonance float64) *Spec {
	s := &Spec{}
	s.SetClock(clock)
	s.SetCutoff(cutoffHz)
	s.SetResonance(resonance)

	return s
}

// SetClock updates the sample period and recomputes all derived values.
func (s *Spec) SetClock(clock core.Clock) {
	s.piTick = math.Pi * clock.Tick
	s.computeGPrime()
	s.computeK()
}

// Cutoff returns the cutoff frequency in Hz.
func (s *Spec) Cutoff() float64 { return s.cutoff }

// SetCutoff sets the cutoff frequency in Hz. It must be finite and > 0.
func (s *Spec) SetCutoff(cutoffHz float64) {
	contract.Positive("cutoff", cutoffHz)

	s.cutoff = cutoffHz
	s.computeGPrime()
}

// Resonance returns the resonance in [0, 1].
func (s *Spec) Resonance() float64 { return s.resonance }

// SetResonance sets the resonance. It must be finite and in [0, 1].
func (s *Spec) SetResonance(resonance float64) {
	contract.Unit("resonance", resonance)

	s.resonance = resonance
	s.computeK()
}

// Cook returns a processing-ready snapshot of s.
func (s *Spec) Cook() CookedSpec {
	return CookedSpec{
		piTick: s.piTick,
		gPrime: s.gPrime,
		k:      s.k,
	}
}

func (s *Spec) computeGPrime() {
	s.gPrime = s.cutoff * s.piTick
}

func (s *Spec) computeK() {
	s.k = damping(s.resonance)
}

// CookedSpec is the immutable parameter snapshot read by [Filter.Process].
type CookedSpec struct {
	piTick float64
	gPrime float64
	k      float64
}

// GPrime returns the prewarp argument cutoff*pi/sampleRate.
func (c CookedSpec) GPrime() float64 { return c.gPrime }

// K returns the damping factor.
func (c CookedSpec) K() float64 { return c.k }

// PiTick returns pi divided by the sample rate.
func (c CookedSpec) PiTick() float64 { return c.piTick }

// OversampleFactor returns the number of sub-steps the [Oversampled] strategy
// runs per sample for this snapshot.
func (c CookedSpec) OversampleFactor() int {
	return OversampleFactor(c.gPrime)
}

// WithCutoff returns a copy of c with its cutoff replaced, e.g. after applying
// an envelope or LFO to the spec's base cutoff.
func (c CookedSpec) WithCutoff(cutoffHz float64) CookedSpec {
	contract.Positive("cutoff", cutoffHz)

	c.gPrime = c.piTick * cutoffHz

	return c
}

// WithResonance returns a copy of c with its resonance replaced.
func (c CookedSpec) WithResonance(resonance float64) CookedSpec {
	contract.Unit("resonance", resonance)

	c.k = damping(resonance)

	return c
}
