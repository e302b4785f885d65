package svf

import "fmt"

// Processor is the runtime view of a [Filter] whose composition was chosen
// by [New].
type Processor interface {
	Process(spec CookedSpec, x float64) float64
	ProcessInPlace(spec CookedSpec, buf []float64)
	ProcessTo(spec CookedSpec, dst, src []float64)
	Reset()
	Order() int
	States() []State
	SetStates(states []State) error
}

var (
	_ Processor = (*FirstOrder[Lowpass])(nil)
	_ Processor = (*OversampledSecondOrder[MagicPeak])(nil)
)

const (
	defaultOrder = 1
	maxOrder     = maxStages
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	response     Response
	order        int
	oversampling bool
}

func defaultConfig() config {
	return config{
		response: ResponseLowpass,
		order:    defaultOrder,
	}
}

// WithResponse selects the output response.
func WithResponse(response Response) Option {
	return func(cfg *config) error {
		if !response.valid() {
			return fmt.Errorf("svf: invalid response: %d", int(response))
		}

		cfg.response = response

		return nil
	}
}

// WithOrder selects the cascade depth. Allowed values: 1, 2.
func WithOrder(order int) Option {
	return func(cfg *config) error {
		if order < 1 || order > maxOrder {
			return fmt.Errorf("svf: order must be in [1, %d]: %d", maxOrder, order)
		}

		cfg.order = order

		return nil
	}
}

// WithOversampling enables the [Oversampled] sampling strategy.
func WithOversampling(enabled bool) Option {
	return func(cfg *config) error {
		cfg.oversampling = enabled
		return nil
	}
}

// New returns the [Filter] instantiation matching opts. The default is a
// first-order low-pass without oversampling.
func New(opts ...Option) (Processor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	switch cfg.response {
	case ResponseLowpass:
		return compose[Lowpass](cfg), nil
	case ResponseHighpass:
		return compose[Highpass](cfg), nil
	case ResponseBandpass:
		return compose[Bandpass](cfg), nil
	case ResponseNotch:
		return compose[Notch](cfg), nil
	case ResponsePeak:
		return compose[Peak](cfg), nil
	case ResponseAllpass:
		return compose[Allpass](cfg), nil
	case ResponseMagicPeak:
		return compose[MagicPeak](cfg), nil
	default:
		return nil, fmt.Errorf("svf: invalid response: %d", int(cfg.response))
	}
}

func compose[O Output](cfg config) Processor {
	switch {
	case cfg.order == 1 && !cfg.oversampling:
		return &FirstOrder[O]{}
	case cfg.order == 1:
		return &OversampledFirstOrder[O]{}
	case !cfg.oversampling:
		return &SecondOrder[O]{}
	default:
		return &OversampledSecondOrder[O]{}
	}
}
