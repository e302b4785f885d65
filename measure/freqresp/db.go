//go:build !fastmath

package freqresp

import "github.com/cwbudde/algo-svf/dsp/core"

func magnitudeToDB(m float64) float64 {
	return core.LinearToDB(m)
}
