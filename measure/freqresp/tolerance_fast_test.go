//go:build fastmath

package freqresp

// dbTolerance bounds the error of the approximate logarithm in tests.
const dbTolerance = 1e-3
