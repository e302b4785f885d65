// Package svf provides a zero-delay-feedback (topology-preserving transform)
// state-variable filter with seven output responses, 1st- and 2nd-order
// cascades, and optional adaptive oversampling near Nyquist.
//
// The package separates control-rate parameters from audio-rate state:
//
//   - [Spec] holds cutoff (Hz) and resonance ([0, 1]) and eagerly derives the
//     prewarped cutoff g' = cutoff*pi/sampleRate and the damping
//     k = 2 - 1.85*resonance whenever a setter or SetClock is called.
//   - [CookedSpec] is a cheap value snapshot of a Spec. It is what the
//     processing path reads, and it can be modulated per voice with
//     [CookedSpec.WithCutoff] and [CookedSpec.WithResonance].
//   - [Filter] owns a [CoefficientCache] and one [State] per cascade stage.
//     Coefficients are only recomputed when g' or k change, and tan(g') only
//     when g' changes.
//
// # Composition
//
// A Filter is composed at compile time from three strategies:
//
//   - the output response: [Lowpass], [Highpass], [Bandpass], [Notch], [Peak],
//     [Allpass] or [MagicPeak];
//   - the sampling strategy: [Direct] or [Oversampled];
//   - the cascade depth: [First] or [Second].
//
// The aliases [FirstOrder], [SecondOrder], [OversampledFirstOrder] and
// [OversampledSecondOrder] cover the common combinations. When the response
// is only known at runtime (presets, command-line flags), [New] selects the
// matching instantiation and returns it as a [Processor].
//
// # Oversampling
//
// The bilinear prewarp tan(g') diverges as the cutoff reaches Nyquist. The
// [Oversampled] strategy subdivides each sample into
// floor(g'*2/pi)+1 sub-steps, derives coefficients from g' divided by that
// factor, and feeds the held input sample to every sub-step. Only the last
// sub-step's V-factors reach the output response. Below Nyquist the factor is
// 1 and the output is bit-identical to [Direct].
//
// # Preconditions
//
// Parameter setters check their ranges with development-time assertions that
// panic on violation and compile to nothing with the release build tag. The
// processing path never allocates or returns errors; its only assertion is
// that the oversampled strategy sees a non-negative g'.
package svf
