//go:build !release

package contract

import (
	"fmt"
	"math"
)

// Enabled reports whether checks are compiled in.
const Enabled = true

// Positive panics unless v is finite and > 0.
func Positive(name string, v float64) {
	if !isFinite(v) || v <= 0 {
		panic(fmt.Sprintf("%s %v is not in valid range (positive and nonzero)", name, v))
	}
}

// NonNegative panics unless v is finite and >= 0.
func NonNegative(name string, v float64) {
	if !isFinite(v) || v < 0 {
		panic(fmt.Sprintf("%s %v should be finite and nonnegative", name, v))
	}
}

// Unit panics unless v is finite and in [0, 1].
func Unit(name string, v float64) {
	if !isFinite(v) || v < 0 || v > 1 {
		panic(fmt.Sprintf("%s %v is not in valid range [0, 1]", name, v))
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
