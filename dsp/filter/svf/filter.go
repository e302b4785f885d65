package svf

import (
	"fmt"

	"github.com/cwbudde/algo-svf/dsp/core"
)

// Filter is a cascade of N state-variable stages sharing one coefficient
// cache, sampled with S, whose stages each emit the response O.
//
// The zero value is ready to use.
type Filter[O Output, S Sampling, N Order] struct {
	coef     CoefficientCache
	stages   [maxStages]State
	output   O
	sampling S
	order    N
}

type (
	// FirstOrder is a single-stage filter without oversampling.
	FirstOrder[O Output] = Filter[O, Direct, First]
	// SecondOrder is a two-stage filter without oversampling.
	SecondOrder[O Output] = Filter[O, Direct, Second]
	// OversampledFirstOrder is a single-stage filter that oversamples near Nyquist.
	OversampledFirstOrder[O Output] = Filter[O, Oversampled, First]
	// OversampledSecondOrder is a two-stage filter that oversamples near Nyquist.
	OversampledSecondOrder[O Output] = Filter[O, Oversampled, Second]
)

// Process filters one sample.
//
// Each stage's output is the next stage's input. With oversampling, every
// stage runs all sub-steps on its held input before the output response is
// taken from the last sub-step.
func (f *Filter[O, S, N]) Process(spec CookedSpec, x float64) float64 {
	k := spec.k
	steps := f.sampling.substeps(spec.gPrime)
	// Divide by the clamped sub-step count; see OversampleFactor.
	coef := f.coef.Apply(spec.gPrime/float64(steps), k)

	out := x
	for i := range f.order.stages() {
		st := &f.stages[i]

		var v VFactors
		for range steps {
			v = st.Apply(coef, out)
		}

		out = f.output.Apply(v, k)
	}

	return out
}

// ProcessInPlace filters buf in place with a fixed spec.
func (f *Filter[O, S, N]) ProcessInPlace(spec CookedSpec, buf []float64) {
	for i := range buf {
		buf[i] = f.Process(spec, buf[i])
	}
}

// ProcessTo filters src into dst with a fixed spec. Both slices must have the
// same length.
func (f *Filter[O, S, N]) ProcessTo(spec CookedSpec, dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = f.Process(spec, x)
	}
}

// Reset zeroes every stage's history. The coefficient cache stays valid.
func (f *Filter[O, S, N]) Reset() {
	for i := range f.stages {
		f.stages[i].Reset()
	}
}

// Order returns the number of cascaded stages.
func (f *Filter[O, S, N]) Order() int {
	return f.order.stages()
}

// States returns a copy of the per-stage history, first stage first.
func (f *Filter[O, S, N]) States() []State {
	return append([]State(nil), f.stages[:f.order.stages()]...)
}

// SetStates restores history previously returned by States.
func (f *Filter[O, S, N]) SetStates(states []State) error {
	if len(states) != f.order.stages() {
		return fmt.Errorf("svf: got %d stage states, want %d", len(states), f.order.stages())
	}

	for i, st := range states {
		if !core.IsFinite(st.S0) || !core.IsFinite(st.S1) {
			return fmt.Errorf("svf: stage %d state contains NaN or Inf", i)
		}
	}

	copy(f.stages[:], states)

	return nil
}
