package svf

import (
	"math"

	"github.com/cwbudde/algo-svf/internal/contract"
)

const (
	// 2/pi with pi rounded to float64 first.
	twoOverPi = 2 / float64(math.Pi)

	// MaxOversampleFactor caps the sub-steps per sample. It is only reached
	// for cutoffs far above Nyquist.
	MaxOversampleFactor = 255
)

// Sampling decides how many state-update sub-steps run per input sample.
// The set of strategies is closed: [Direct] and [Oversampled].
type Sampling interface {
	substeps(gPrime float64) int
}

// Direct runs one state update per stage per sample.
type Direct struct{}

func (Direct) substeps(float64) int { return 1 }

// Oversampled subdivides each sample once the prewarped cutoff reaches
// Nyquist. See [OversampleFactor].
type Oversampled struct{}

func (Oversampled) substeps(gPrime float64) int { return OversampleFactor(gPrime) }

// OversampleFactor returns floor(gPrime*2/pi)+1, clamped to
// [1, MaxOversampleFactor]. It is 1 whenever the cutoff lies below Nyquist.
func OversampleFactor(gPrime float64) int {
	contract.NonNegative("g'", gPrime)

	n := math.Trunc(gPrime*twoOverPi) + 1

	// The clamped count is also the g' divisor in Filter.Process, so past
	// g' ~ 400 (a cutoff ~127x the sample rate) each sub-step advances
	// g'/255 rather than g'/n: the filter still settles but is no longer
	// tuned to the requested cutoff.
	if n >= MaxOversampleFactor {
		return MaxOversampleFactor
	}

	if n < 1 {
		return 1
	}

	return int(n)
}

// Order fixes the cascade depth. The set is closed: [First] and [Second].
type Order interface {
	stages() int
}

// First is a single SVF stage.
type First struct{}

func (First) stages() int { return 1 }

// Second cascades two SVF stages.
type Second struct{}

func (Second) stages() int { return 2 }

const maxStages = 2
