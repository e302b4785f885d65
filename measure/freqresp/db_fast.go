//go:build fastmath

package freqresp

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// dbPerNeper converts a natural logarithm of an amplitude ratio to dB.
const dbPerNeper = 20 / math.Ln10

// magnitudeToDB computes 20*log10(m) using fast approximation.
func magnitudeToDB(m float64) float64 {
	if m <= 0 {
		if m == 0 {
			return math.Inf(-1)
		}

		return math.NaN()
	}

	return approx.FastLog(m) * dbPerNeper
}
