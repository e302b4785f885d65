// Package preset loads named filter settings from YAML files.
//
// A preset file looks like:
//
//	sample_rate: 48000
//	presets:
//	  - name: warm
//	    response: lowpass
//	    order: 2
//	    cutoff_hz: 1200
//	    resonance: 0.4
//	    block_size: 256
//	  - name: sizzle
//	    response: peak
//	    oversample: true
//	    cutoff_hz: 18000
//	    resonance: 0.8
//	    sample_rate: 44100
//
// A preset's sample_rate overrides the file-level value, which defaults to
// 48 kHz. block_size is optional; zero keeps the processing default.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-svf/dsp/core"
	"github.com/cwbudde/algo-svf/dsp/filter/svf"
	"gopkg.in/yaml.v3"
)

// DefaultSampleRate applies when neither the file nor the preset sets one.
const DefaultSampleRate = 48_000

// ErrNotFound is returned by File.Get for an unknown preset name.
var ErrNotFound = errors.New("preset: not found")

// File is a parsed preset document.
type File struct {
	SampleRate float64  `yaml:"sample_rate"`
	Presets    []Preset `yaml:"presets"`
}

// Preset describes one filter configuration.
type Preset struct {
	Name       string  `yaml:"name"`
	Response   string  `yaml:"response"`
	Order      int     `yaml:"order"`
	Oversample bool    `yaml:"oversample"`
	CutoffHz   float64 `yaml:"cutoff_hz"`
	Resonance  float64 `yaml:"resonance"`
	SampleRate float64 `yaml:"sample_rate"`
	BlockSize  int     `yaml:"block_size"`
}

// Load reads and validates a preset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a preset document. Unknown keys are rejected.
// Defaults are filled in, so every returned preset has a response, an order
// and a sample rate.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("preset: failed to parse: %w", err)
	}

	if f.SampleRate == 0 {
		f.SampleRate = DefaultSampleRate
	}

	if !(f.SampleRate > 0) || !core.IsFinite(f.SampleRate) {
		return nil, fmt.Errorf("preset: sample_rate must be positive: %v", f.SampleRate)
	}

	seen := make(map[string]bool, len(f.Presets))

	for i := range f.Presets {
		p := &f.Presets[i]
		p.applyDefaults(f.SampleRate)

		if err := p.Validate(); err != nil {
			return nil, err
		}

		if seen[p.Name] {
			return nil, fmt.Errorf("preset: duplicate name %q", p.Name)
		}

		seen[p.Name] = true
	}

	return &f, nil
}

// Get returns the preset called name.
func (f *File) Get(name string) (Preset, error) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Specs returns one spec per preset in file order, each clocked at its
// preset's sample rate.
func (f *File) Specs() []*svf.Spec {
	specs := make([]*svf.Spec, len(f.Presets))
	for i, p := range f.Presets {
		specs[i] = svf.NewSpec(p.Clock(), p.CutoffHz, p.Resonance)
	}

	return specs
}

// Names lists the presets in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Presets))
	for i, p := range f.Presets {
		names[i] = p.Name
	}

	return names
}

func (p *Preset) applyDefaults(sampleRate float64) {
	if p.Response == "" {
		p.Response = svf.ResponseLowpass.String()
	}

	if p.Order == 0 {
		p.Order = 1
	}

	if p.SampleRate == 0 {
		p.SampleRate = sampleRate
	}
}

// Validate checks that the preset describes a buildable filter.
func (p Preset) Validate() error {
	if p.Name == "" {
		return errors.New("preset: name is required")
	}

	if _, err := svf.ParseResponse(p.Response); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}

	if p.Order < 1 || p.Order > 2 {
		return fmt.Errorf("preset %q: order must be 1 or 2: %d", p.Name, p.Order)
	}

	if !(p.CutoffHz > 0) || !core.IsFinite(p.CutoffHz) {
		return fmt.Errorf("preset %q: cutoff_hz must be positive: %v", p.Name, p.CutoffHz)
	}

	if !(p.Resonance >= 0 && p.Resonance <= 1) {
		return fmt.Errorf("preset %q: resonance must be in [0, 1]: %v", p.Name, p.Resonance)
	}

	if !(p.SampleRate > 0) || !core.IsFinite(p.SampleRate) {
		return fmt.Errorf("preset %q: sample_rate must be positive: %v", p.Name, p.SampleRate)
	}

	if p.BlockSize < 0 {
		return fmt.Errorf("preset %q: block_size must not be negative: %d", p.Name, p.BlockSize)
	}

	return nil
}

// Options returns the constructor options matching the preset.
func (p Preset) Options() ([]svf.Option, error) {
	response, err := svf.ParseResponse(p.Response)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	return []svf.Option{
		svf.WithResponse(response),
		svf.WithOrder(p.Order),
		svf.WithOversampling(p.Oversample),
	}, nil
}

// Config returns the processing settings of the preset. Unset fields keep
// the core defaults.
func (p Preset) Config() core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(p.SampleRate),
		core.WithBlockSize(p.BlockSize),
	)
}

// Clock returns the clock for the preset's sample rate.
func (p Preset) Clock() core.Clock {
	return p.Config().Clock()
}

// Build validates the preset and returns a ready filter with its clocked
// spec.
func (p Preset) Build() (svf.Processor, *svf.Spec, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	opts, err := p.Options()
	if err != nil {
		return nil, nil, err
	}

	proc, err := svf.New(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	return proc, svf.NewSpec(p.Clock(), p.CutoffHz, p.Resonance), nil
}
