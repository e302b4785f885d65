//go:build !release

package contract

import (
	"math"
	"strings"
	"testing"
)

func TestChecksPanicOutsideRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		msg  string
	}{
		{name: "positive_nan", fn: func() { Positive("cutoff", math.NaN()) }, msg: "positive and nonzero"},
		{name: "positive_zero", fn: func() { Positive("sample rate", 0) }, msg: "positive and nonzero"},
		{name: "positive_neg", fn: func() { Positive("sample rate", -1) }, msg: "positive and nonzero"},
		{name: "positive_inf", fn: func() { Positive("cutoff", math.Inf(1)) }, msg: "positive and nonzero"},
		{name: "nonneg", fn: func() { NonNegative("gain", -0.5) }, msg: "nonnegative"},
		{name: "unit_high", fn: func() { Unit("resonance", 1.01) }, msg: "[0, 1]"},
		{name: "unit_low", fn: func() { Unit("resonance", -0.01) }, msg: "[0, 1]"},
		{name: "nonneg_nan", fn: func() { NonNegative("g'", math.NaN()) }, msg: "nonnegative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}

				s, ok := r.(string)
				if !ok || !strings.Contains(s, tt.msg) {
					t.Fatalf("panic = %v, want message containing %q", r, tt.msg)
				}
			}()

			tt.fn()
		})
	}
}

func TestChecksAcceptValidValues(t *testing.T) {
	if !Enabled {
		t.Fatal("checks should be enabled without the release tag")
	}

	Positive("sample rate", 44100)
	NonNegative("gain", 0)
	Unit("resonance", 0)
	Unit("resonance", 1)
}
