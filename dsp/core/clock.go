package core

import "github.com/cwbudde/algo-svf/internal/contract"

// Clock stores the current sample rate and its derived per-sample tick.
//
// Ideally there is one Clock per plugin instance, handed to every stateful
// spec through [ClockSetter] whenever the sample rate changes.
type Clock struct {
	SampleRate float64 // Hz
	Tick       float64 // seconds per sample
}

// NewClock returns a Clock for sampleRate, which must be finite and > 0.
func NewClock(sampleRate float64) Clock {
	contract.Positive("sample rate", sampleRate)

	return Clock{
		SampleRate: sampleRate,
		Tick:       1 / sampleRate,
	}
}

// Nyquist returns half the sample rate.
func (c Clock) Nyquist() float64 {
	return c.SampleRate * 0.5
}

// ClockSetter is implemented by components that derive values from the
// sample rate. SetClock is called at least once before first use and again
// after every sample-rate change.
type ClockSetter interface {
	SetClock(clock Clock)
}

// SetClockAll propagates clock to every setter.
func SetClockAll[T ClockSetter](clock Clock, setters ...T) {
	for _, s := range setters {
		s.SetClock(clock)
	}
}
