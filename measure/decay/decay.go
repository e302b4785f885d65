package decay

import (
	"errors"

	"github.com/cwbudde/algo-svf/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by decay analysis.
var (
	ErrEmptyIR           = errors.New("decay: impulse response is empty")
	ErrInvalidSampleRate = errors.New("decay: sample rate must be positive")
	ErrInvalidLength     = errors.New("decay: length must be positive")
	ErrNoDecay           = errors.New("decay: insufficient decay for ring time")
)

// floorDB bounds the energy decay curve once the remaining energy is zero.
const floorDB = -200

// Metrics holds decay analysis results. Times are in seconds; a zero time
// means the curve never fell far enough for that fit.
type Metrics struct {
	T60           float64 // ring time to -60 dB (from T30, falling back to T20)
	EDT           float64 // 0 to -10 dB slope, extrapolated
	T20           float64 // -5 to -25 dB slope, extrapolated
	T30           float64 // -5 to -35 dB slope, extrapolated
	CenterTime    float64 // energy centroid
	Energy        float64 // sum of squared samples
	PeakIndex     int     // sample index of the absolute maximum
	PeakAmplitude float64 // absolute maximum
}

// Analyzer computes decay metrics at a fixed sample rate. Measure reuses an
// internal buffer, so an Analyzer must not be shared between goroutines.
type Analyzer struct {
	SampleRate float64

	ir []float64
}

// NewAnalyzer creates an analyzer for the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Measure feeds a unit impulse of length samples through process and
// analyzes the result.
func (a *Analyzer) Measure(process func(float64) float64, length int) (Metrics, error) {
	if length <= 0 {
		return Metrics{}, ErrInvalidLength
	}

	a.ir = core.EnsureLen(a.ir, length)

	ir := a.ir
	for i := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}

		ir[i] = process(x)
	}

	return a.Analyze(ir)
}

// Analyze computes all metrics from an impulse response.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if len(ir) == 0 {
		return Metrics{}, ErrEmptyIR
	}

	if !(a.SampleRate > 0) {
		return Metrics{}, ErrInvalidSampleRate
	}

	curve := energyDecay(ir)

	m := Metrics{
		EDT:           a.fit(curve, 0, -10),
		T20:           a.fit(curve, -5, -25),
		T30:           a.fit(curve, -5, -35),
		CenterTime:    a.centerTime(ir),
		Energy:        vecmath.DotProduct(ir, ir),
		PeakAmplitude: vecmath.MaxAbs(ir),
	}

	for i, v := range ir {
		if v == m.PeakAmplitude || -v == m.PeakAmplitude {
			m.PeakIndex = i
			break
		}
	}

	m.T60 = m.T30
	if m.T60 == 0 {
		m.T60 = m.T20
	}

	return m, nil
}

// EnergyDecay returns the Schroeder backward integral of the squared
// impulse response in dB relative to the total energy.
func (a *Analyzer) EnergyDecay(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}

	return energyDecay(ir), nil
}

// RingTime returns the time for the response to decay by 60 dB.
func (a *Analyzer) RingTime(ir []float64) (float64, error) {
	m, err := a.Analyze(ir)
	if err != nil {
		return 0, err
	}

	if m.T60 == 0 {
		return 0, ErrNoDecay
	}

	return m.T60, nil
}

func energyDecay(ir []float64) []float64 {
	curve := make([]float64, len(ir))

	var sum float64
	for i := len(ir) - 1; i >= 0; i-- {
		sum += ir[i] * ir[i]
		curve[i] = sum
	}

	total := curve[0]
	if total <= 0 {
		for i := range curve {
			curve[i] = floorDB
		}

		return curve
	}

	for i, e := range curve {
		if e <= 0 {
			curve[i] = floorDB
			continue
		}

		curve[i] = core.LinearPowerToDB(e / total)
	}

	return curve
}

// fit regresses the curve between startDB and endDB and extrapolates the
// slope to a 60 dB decay.
func (a *Analyzer) fit(curve []float64, startDB, endDB float64) float64 {
	start, end := -1, -1

	for i, v := range curve {
		if start < 0 && v <= startDB {
			start = i
		}

		if start >= 0 && v <= endDB {
			end = i
			break
		}
	}

	if start < 0 || end <= start {
		return 0
	}

	xs := make([]float64, end-start+1)
	for i := range xs {
		xs[i] = float64(i)
	}

	_, slope := stat.LinearRegression(xs, curve[start:end+1], nil, false)
	if !(slope < 0) {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

func (a *Analyzer) centerTime(ir []float64) float64 {
	var num, den float64

	for i, v := range ir {
		e := v * v
		num += float64(i) * e
		den += e
	}

	if den <= 0 {
		return 0
	}

	return num / den / a.SampleRate
}
