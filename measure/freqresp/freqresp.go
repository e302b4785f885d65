package freqresp

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-svf/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// DefaultFFTSize is the transform length used when no option overrides it.
const DefaultFFTSize = 8192

// Errors returned by response measurement.
var (
	ErrEmptyIR           = errors.New("freqresp: impulse response is empty")
	ErrInvalidSampleRate = errors.New("freqresp: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("freqresp: FFT size must be a power of two >= 2")
	ErrNoPassband        = errors.New("freqresp: response has no energy")
)

// Option configures a measurement.
type Option func(*config) error

type config struct {
	fftSize int
}

func defaultConfig() config {
	return config{}
}

// WithFFTSize fixes the transform length. The impulse response is truncated
// or zero padded to n samples.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < 2 || n&(n-1) != 0 {
			return fmt.Errorf("%w: %d", ErrInvalidFFTSize, n)
		}

		cfg.fftSize = n

		return nil
	}
}

// Response is a measured magnitude response from DC to Nyquist.
type Response struct {
	// SampleRate of the measured processor in Hz.
	SampleRate float64
	// FFTSize is the transform length; there are FFTSize/2+1 bins.
	FFTSize int
	// Magnitude holds the linear gain per bin.
	Magnitude []float64
	// Power holds the squared gain per bin.
	Power []float64
	// DB holds the gain per bin in dB.
	DB []float64
}

// Measure feeds a unit impulse through process and returns its magnitude
// response. process is called once per sample, in order, and must hold its
// own state.
func Measure(process func(float64) float64, sampleRate float64, opts ...Option) (*Response, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	n := cfg.fftSize
	if n == 0 {
		n = DefaultFFTSize
	}

	ir := make([]float64, n)
	for i := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}

		ir[i] = process(x)
	}

	return analyze(ir, sampleRate, n)
}

// FromImpulse computes the magnitude response of a recorded impulse
// response. Without WithFFTSize the length is the next power of two that
// holds the whole response, but at least DefaultFFTSize.
func FromImpulse(ir []float64, sampleRate float64, opts ...Option) (*Response, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	n := cfg.fftSize
	if n == 0 {
		n = max(DefaultFFTSize, nextPowerOfTwo(len(ir)))
	}

	return analyze(ir, sampleRate, n)
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

func analyze(ir []float64, sampleRate float64, n int) (*Response, error) {
	in := make([]complex128, n)
	for i := range min(len(ir), n) {
		in[i] = complex(ir[i], 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("freqresp: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("freqresp: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	r := &Response{
		SampleRate: sampleRate,
		FFTSize:    n,
		Magnitude:  make([]float64, bins),
		Power:      make([]float64, bins),
		DB:         make([]float64, bins),
	}

	vecmath.Magnitude(r.Magnitude, re, im)
	vecmath.Power(r.Power, re, im)

	for i, m := range r.Magnitude {
		r.DB[i] = magnitudeToDB(m)
	}

	return r, nil
}

// BinHz returns the frequency spacing between bins.
func (r *Response) BinHz() float64 {
	return r.SampleRate / float64(r.FFTSize)
}

// Nyquist returns the highest measured frequency.
func (r *Response) Nyquist() float64 {
	return r.SampleRate / 2
}

// AtHz returns the gain in dB at hz, interpolated linearly between the two
// nearest bins. hz is clamped to [0, Nyquist].
func (r *Response) AtHz(hz float64) float64 {
	pos := core.Clamp(hz, 0, r.Nyquist()) / r.BinHz()

	lo := int(pos)
	if lo >= len(r.DB)-1 {
		return r.DB[len(r.DB)-1]
	}

	frac := pos - float64(lo)
	if frac == 0 {
		return r.DB[lo]
	}

	return r.DB[lo] + frac*(r.DB[lo+1]-r.DB[lo])
}

// PeakHz returns the frequency of the loudest bin.
func (r *Response) PeakHz() float64 {
	return float64(floats.MaxIdx(r.Magnitude)) * r.BinHz()
}

// PeakDB returns the gain of the loudest bin in dB.
func (r *Response) PeakDB() float64 {
	return r.DB[floats.MaxIdx(r.Magnitude)]
}

// MinDB returns the gain of the quietest bin in dB.
func (r *Response) MinDB() float64 {
	return magnitudeToDB(floats.Min(r.Magnitude))
}

// BandwidthHz returns the width of the contiguous region around the peak
// whose gain stays within drop dB of the peak gain (drop = 3 gives the
// usual -3 dB bandwidth).
func (r *Response) BandwidthHz(drop float64) float64 {
	peak := floats.MaxIdx(r.Magnitude)
	floor := r.DB[peak] - math.Abs(drop)

	lo := peak
	for lo > 0 && r.DB[lo-1] >= floor {
		lo--
	}

	hi := peak
	for hi < len(r.DB)-1 && r.DB[hi+1] >= floor {
		hi++
	}

	return float64(hi-lo) * r.BinHz()
}

// NoiseBandwidthHz returns the equivalent noise bandwidth: the width of a
// rectangular filter with the peak's power gain that passes the same total
// power.
func (r *Response) NoiseBandwidthHz() (float64, error) {
	peak := vecmath.MaxAbs(r.Power)
	if peak == 0 {
		return 0, ErrNoPassband
	}

	return vecmath.Sum(r.Power) / peak * r.BinHz(), nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
