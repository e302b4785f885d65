// Package freqresp measures the magnitude response of a sample processor.
//
// A unit impulse is fed through the processor, the resulting impulse
// response is transformed with an FFT, and the bins from DC to Nyquist are
// kept as linear magnitude, power and dB. Helpers answer the usual filter
// questions: gain at a frequency, peak frequency, stop-band floor and
// bandwidth.
//
// Building with the fastmath tag converts magnitudes to dB with an
// approximate logarithm.
package freqresp
