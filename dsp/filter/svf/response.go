package svf

import (
	"fmt"
	"strings"
)

// Response names one of the seven output responses at runtime.
type Response int

// Available responses.
const (
	ResponseLowpass Response = iota
	ResponseHighpass
	ResponseBandpass
	ResponseNotch
	ResponsePeak
	ResponseAllpass
	ResponseMagicPeak
)

var responseNames = [...]string{
	ResponseLowpass:   "lowpass",
	ResponseHighpass:  "highpass",
	ResponseBandpass:  "bandpass",
	ResponseNotch:     "notch",
	ResponsePeak:      "peak",
	ResponseAllpass:   "allpass",
	ResponseMagicPeak: "magic_peak",
}

// Responses returns all responses in declaration order.
func Responses() []Response {
	out := make([]Response, len(responseNames))
	for i := range out {
		out[i] = Response(i)
	}

	return out
}

func (r Response) String() string {
	if !r.valid() {
		return "unknown"
	}

	return responseNames[r]
}

// ParseResponse resolves a response name. Matching ignores case and treats
// '-' and ' ' like '_', so "Magic-Peak" resolves to [ResponseMagicPeak].
func ParseResponse(name string) (Response, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	for i, n := range responseNames {
		if n == norm {
			return Response(i), nil
		}
	}

	return 0, fmt.Errorf("svf: unknown response %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (r Response) MarshalText() ([]byte, error) {
	if !r.valid() {
		return nil, fmt.Errorf("svf: invalid response: %d", int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Response) UnmarshalText(text []byte) error {
	parsed, err := ParseResponse(string(text))
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}

// Output returns the stateless strategy computing r.
func (r Response) Output() Output {
	switch r {
	case ResponseLowpass:
		return Lowpass{}
	case ResponseHighpass:
		return Highpass{}
	case ResponseBandpass:
		return Bandpass{}
	case ResponseNotch:
		return Notch{}
	case ResponsePeak:
		return Peak{}
	case ResponseAllpass:
		return Allpass{}
	case ResponseMagicPeak:
		return MagicPeak{}
	default:
		return nil
	}
}

func (r Response) valid() bool {
	return r >= ResponseLowpass && r <= ResponseMagicPeak
}
