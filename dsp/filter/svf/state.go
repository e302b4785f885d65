package svf

// VFactors are the intermediate values (v0, v1, v2) of one state update:
// the input sample, the band-pass-like and the low-pass-like integrator
// outputs. Every output response is a linear combination of them.
type VFactors [3]float64

// State is the integrator history of one filter stage.
type State struct {
	S0, S1 float64
}

// Apply runs one trapezoidal integration step for input v0 and returns the
// resulting V-factors.
func (s *State) Apply(c Coefficients, v0 float64) VFactors {
	v3 := v0 - s.S1
	v1 := c[0]*s.S0 + c[1]*v3
	v2 := s.S1 + c[1]*s.S0 + c[2]*v3

	s.S0 = 2*v1 - s.S0
	s.S1 = 2*v2 - s.S1

	return VFactors{v0, v1, v2}
}

// Reset zeroes the history.
func (s *State) Reset() {
	*s = State{}
}
