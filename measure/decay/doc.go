// Package decay measures how long a filter rings after an impulse.
//
// The squared impulse response is integrated backwards (Schroeder
// integration) into a smooth energy decay curve. Straight-line fits over
// parts of that curve give decay times extrapolated to -60 dB:
//
//   - T60: ring time, from the T30 fit with a T20 fallback
//   - EDT: early decay time, fitted from 0 to -10 dB
//   - T20, T30: fitted from -5 to -25 dB and -5 to -35 dB
//   - Center time: temporal energy centroid
//
// Resonant settings ring longer; the decay time of a single SVF stage
// follows the radius of its pole pair.
//
// # Usage
//
//	analyzer := decay.NewAnalyzer(48000)
//	metrics, err := analyzer.Measure(func(x float64) float64 {
//		return filter.Process(cooked, x)
//	}, 48000)
//	fmt.Printf("T60 = %.1f ms\n", metrics.T60*1000)
package decay
