package decay

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-svf/dsp/core"
	"github.com/cwbudde/algo-svf/dsp/filter/svf"
)

// makeExponentialDecay generates an envelope reaching -60 dB at t60.
func makeExponentialDecay(sampleRate, t60, durationSec float64) []float64 {
	ir := make([]float64, int(sampleRate*durationSec))
	rate := 3 * math.Ln10 / t60

	for i := range ir {
		ir[i] = math.Exp(-rate * float64(i) / sampleRate)
	}

	return ir
}

// poleRingTime is the -60 dB decay time of a single SVF stage's pole pair.
func poleRingTime(spec svf.CookedSpec, sampleRate float64) float64 {
	g := math.Tan(spec.GPrime())
	k := spec.K()
	p := complex(g, 0) * complex(-k/2, math.Sqrt(1-k*k/4))
	z := (1 + p) / (1 - p)

	return 60 / (-20 * math.Log10(cmplx.Abs(z)) * sampleRate)
}

func TestAnalyzeExponentialDecay(t *testing.T) {
	const sampleRate = 48_000.0

	ir := makeExponentialDecay(sampleRate, 0.5, 2)

	m, err := NewAnalyzer(sampleRate).Analyze(ir)
	if err != nil {
		t.Fatal(err)
	}

	for name, got := range map[string]float64{"T60": m.T60, "EDT": m.EDT, "T20": m.T20, "T30": m.T30} {
		if math.Abs(got-0.5) > 0.01 {
			t.Errorf("%s = %.4f, want 0.5", name, got)
		}
	}

	if m.PeakIndex != 0 || m.PeakAmplitude != 1 {
		t.Errorf("peak = (%d, %v), want (0, 1)", m.PeakIndex, m.PeakAmplitude)
	}

	if m.CenterTime <= 0 || m.CenterTime > 0.5 {
		t.Errorf("CenterTime = %v, want in (0, 0.5]", m.CenterTime)
	}
}

func TestRingTimeFollowsPoleRadius(t *testing.T) {
	const sampleRate = 48_000.0

	clock := core.NewClock(sampleRate)
	analyzer := NewAnalyzer(sampleRate)

	prev := 0.0

	for _, resonance := range []float64{0.9, 0.95, 0.99} {
		spec := svf.NewSpec(clock, 1_000, resonance).Cook()

		var lp svf.FirstOrder[svf.Lowpass]

		m, err := analyzer.Measure(func(x float64) float64 { return lp.Process(spec, x) }, int(sampleRate))
		if err != nil {
			t.Fatal(err)
		}

		want := poleRingTime(spec, sampleRate)
		if math.Abs(m.T60-want) > 0.03*want {
			t.Errorf("resonance %v: T60 = %.5f, want %.5f (±3%%)", resonance, m.T60, want)
		}

		if m.T60 <= prev {
			t.Errorf("resonance %v: T60 = %.5f, want longer than %.5f", resonance, m.T60, prev)
		}

		prev = m.T60
	}
}

func TestEnergyDecay(t *testing.T) {
	a := NewAnalyzer(48_000)

	curve, err := a.EnergyDecay([]float64{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 10 * math.Log10(0.75), 10 * math.Log10(0.5), 10 * math.Log10(0.25)}
	for i := range want {
		if math.Abs(curve[i]-want[i]) > 1e-12 {
			t.Fatalf("curve[%d] = %v, want %v", i, curve[i], want[i])
		}
	}

	silent, err := a.EnergyDecay(make([]float64, 3))
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range silent {
		if v != floorDB {
			t.Fatalf("silent curve[%d] = %v, want %v", i, v, floorDB)
		}
	}
}

func TestErrors(t *testing.T) {
	a := NewAnalyzer(48_000)

	if _, err := a.Analyze(nil); !errors.Is(err, ErrEmptyIR) {
		t.Errorf("Analyze(nil) error = %v, want ErrEmptyIR", err)
	}

	if _, err := a.EnergyDecay(nil); !errors.Is(err, ErrEmptyIR) {
		t.Errorf("EnergyDecay(nil) error = %v, want ErrEmptyIR", err)
	}

	if _, err := NewAnalyzer(0).Analyze([]float64{1}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Analyze(rate 0) error = %v, want ErrInvalidSampleRate", err)
	}

	if _, err := a.Measure(func(x float64) float64 { return x }, 0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Measure(length 0) error = %v, want ErrInvalidLength", err)
	}

	// A lone impulse drops straight to the floor: no slope to fit.
	if _, err := a.RingTime([]float64{1, 0, 0, 0}); !errors.Is(err, ErrNoDecay) {
		t.Errorf("RingTime(impulse) error = %v, want ErrNoDecay", err)
	}
}
