package svf

// Output maps the V-factors of one state update and the damping k to a
// single output sample. Implementations are stateless.
type Output interface {
	Apply(v VFactors, k float64) float64
}

// Lowpass selects the low-pass response.
type Lowpass struct{}

// Apply returns v2.
func (Lowpass) Apply(v VFactors, _ float64) float64 {
	return v[2]
}

// Highpass selects the high-pass response.
type Highpass struct{}

// Apply returns v0 - k*v1 - v2.
func (Highpass) Apply(v VFactors, k float64) float64 {
	return v[0] - k*v[1] - v[2]
}

// Bandpass selects the band-pass response.
type Bandpass struct{}

// Apply returns v1.
func (Bandpass) Apply(v VFactors, _ float64) float64 {
	return v[1]
}

// Notch selects the notch response.
type Notch struct{}

// Apply returns v0 - k*v1.
func (Notch) Apply(v VFactors, k float64) float64 {
	return v[0] - k*v[1]
}

// Peak selects the peak response.
type Peak struct{}

// Apply returns v0 - k*v1 - 2*v2.
func (Peak) Apply(v VFactors, k float64) float64 {
	return v[0] - k*v[1] - 2*v[2]
}

// Allpass selects the all-pass response.
type Allpass struct{}

// Apply returns v0 - 2*k*v1.
func (Allpass) Apply(v VFactors, k float64) float64 {
	return v[0] - 2*k*v[1]
}

// MagicPeak selects the peak response minus the dry input.
type MagicPeak struct{}

// Apply returns -k*v1 - 2*v2.
func (MagicPeak) Apply(v VFactors, k float64) float64 {
	return -k*v[1] - 2*v[2]
}
