//go:build !fastmath

package freqresp

// dbTolerance bounds the error of exact dB conversion in tests.
const dbTolerance = 1e-6
