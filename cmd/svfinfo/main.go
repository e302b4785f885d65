// Command svfinfo prints the coefficients, impulse response, magnitude
// response and ring time of a state-variable filter.
//
// Usage:
//
//	svfinfo [flags]
//
// Examples:
//
//	svfinfo --response notch --cutoff 50 --resonance 0.2
//	svfinfo -r lowpass -o 2 -f 1200 -q 0.4 --freq 100,1200,8000
//	svfinfo -r peak --oversample -f 30000 -s 44100
//	svfinfo --presets presets.yaml --list
//	svfinfo --presets presets.yaml --list -s 8000
//	svfinfo --presets presets.yaml --preset warm
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/algo-svf/dsp/core"
	"github.com/cwbudde/algo-svf/dsp/filter/svf"
	"github.com/cwbudde/algo-svf/internal/preset"
	"github.com/cwbudde/algo-svf/measure/decay"
	"github.com/cwbudde/algo-svf/measure/freqresp"
)

// CLI defines the command-line interface.
type CLI struct {
	Response   string    `short:"r" default:"lowpass" help:"Output response (${responses})."`
	Order      int       `short:"o" default:"1" help:"Cascade depth, 1 or 2."`
	Oversample bool      `help:"Oversample when the cutoff nears or passes Nyquist."`
	Cutoff     float64   `short:"f" default:"1000" help:"Cutoff frequency in Hz."`
	Resonance  float64   `short:"q" default:"0.5" help:"Resonance in [0, 1]."`
	SampleRate float64   `short:"s" help:"Sample rate in Hz (default 48000). Overrides the preset rates."`
	BlockSize  int       `name:"block-size" help:"Block size for the impulse response. Overrides a preset's block size."`
	Presets    string    `type:"existingfile" help:"YAML preset file."`
	Preset     string    `short:"p" help:"Preset to load from --presets instead of the filter flags."`
	List       bool      `help:"List the presets in --presets and exit."`
	Samples    int       `short:"n" default:"8" help:"Impulse response samples to print."`
	Freq       []float64 `default:"100,1000,10000" help:"Frequencies in Hz to report the gain at."`
	FFTSize    int       `name:"fft-size" default:"8192" help:"FFT size for the response measurement."`
}

var errPresetFileRequired = errors.New("--presets is required with --preset or --list")

func main() {
	responses := make([]string, 0, len(svf.Responses()))
	for _, r := range svf.Responses() {
		responses = append(responses, r.String())
	}

	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("svfinfo"),
		kong.Description("Inspect a zero-delay-feedback state-variable filter."),
		kong.UsageOnError(),
		kong.Vars{"responses": strings.Join(responses, ", ")},
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	if err := run(cli, os.Stdout); err != nil {
		printError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(cli *CLI, w io.Writer) error {
	if cli.List {
		return listPresets(cli, w)
	}

	p, err := resolvePreset(cli)
	if err != nil {
		return err
	}

	proc, spec, err := p.Build()
	if err != nil {
		return err
	}

	cfg := p.Config()
	cooked := spec.Cook()

	steps := 1
	if p.Oversample {
		steps = cooked.OversampleFactor()
	}

	var cache svf.CoefficientCache

	coef := cache.Apply(cooked.GPrime()/float64(steps), cooked.K())

	printTitle(w, "svfinfo: "+p.Name)
	printKeyValue(w, "Response", "%s", p.Response)
	printKeyValue(w, "Order", "%d", p.Order)
	printKeyValue(w, "Sample rate", "%g Hz", cfg.SampleRate)
	printKeyValue(w, "Block size", "%d", cfg.BlockSize)
	printKeyValue(w, "Cutoff", "%g Hz", spec.Cutoff())
	printKeyValue(w, "Resonance", "%g", spec.Resonance())

	printSection(w, "Coefficients")
	printKeyValue(w, "g'", "%.9g", cooked.GPrime())
	printKeyValue(w, "k", "%.9g", cooked.K())
	printKeyValue(w, "Oversample factor", "%d", steps)
	printKeyValue(w, "c0 c1 c2", "%.9g %.9g %.9g", coef[0], coef[1], coef[2])

	if cli.Samples > 0 {
		printSection(w, "Impulse response")

		buf := make([]float64, cli.Samples)
		buf[0] = 1

		for start := 0; start < len(buf); start += cfg.BlockSize {
			proc.ProcessInPlace(cooked, buf[start:min(start+cfg.BlockSize, len(buf))])
		}

		ir := make([]string, len(buf))
		for i, y := range buf {
			ir[i] = fmt.Sprintf("%.6f", y)
		}

		fmt.Fprintln(w, strings.Join(ir, " "))
	}

	proc.Reset()

	resp, err := freqresp.Measure(func(x float64) float64 { return proc.Process(cooked, x) },
		p.SampleRate, freqresp.WithFFTSize(cli.FFTSize))
	if err != nil {
		return err
	}

	printSection(w, "Magnitude response")

	if err := printResponse(w, resp, cli.Freq); err != nil {
		return err
	}

	proc.Reset()

	ring, err := decay.NewAnalyzer(cfg.SampleRate).Measure(func(x float64) float64 { return proc.Process(cooked, x) },
		int(p.SampleRate))
	if err != nil {
		return err
	}

	printSection(w, "Decay")
	printKeyValue(w, "Ring time (T60)", "%.2f ms", ring.T60*1000)
	printKeyValue(w, "Center time", "%.2f ms", ring.CenterTime*1000)

	return nil
}

func resolvePreset(cli *CLI) (preset.Preset, error) {
	if cli.Preset != "" {
		if cli.Presets == "" {
			return preset.Preset{}, errPresetFileRequired
		}

		f, err := preset.Load(cli.Presets)
		if err != nil {
			return preset.Preset{}, err
		}

		p, err := f.Get(cli.Preset)
		if err != nil {
			return preset.Preset{}, err
		}

		if cli.SampleRate > 0 {
			p.SampleRate = cli.SampleRate
		}

		if cli.BlockSize > 0 {
			p.BlockSize = cli.BlockSize
		}

		return p, p.Validate()
	}

	p := preset.Preset{
		Name:       "flags",
		Response:   cli.Response,
		Order:      cli.Order,
		Oversample: cli.Oversample,
		CutoffHz:   cli.Cutoff,
		Resonance:  cli.Resonance,
		SampleRate: cli.SampleRate,
		BlockSize:  cli.BlockSize,
	}

	if p.SampleRate == 0 {
		p.SampleRate = preset.DefaultSampleRate
	}

	return p, p.Validate()
}

func listPresets(cli *CLI, w io.Writer) error {
	if cli.Presets == "" {
		return errPresetFileRequired
	}

	f, err := preset.Load(cli.Presets)
	if err != nil {
		return err
	}

	specs := f.Specs()
	if cli.SampleRate > 0 {
		core.SetClockAll(core.NewClock(cli.SampleRate), specs...)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tResponse\tOrder\tOversample\tCutoff [Hz]\tResonance\tRate [Hz]\tFactor\n")
	fmt.Fprintf(tw, "----\t--------\t-----\t----------\t-----------\t---------\t---------\t------\n")

	for i, p := range f.Presets {
		rate := p.SampleRate
		if cli.SampleRate > 0 {
			rate = cli.SampleRate
		}

		factor := 1
		if p.Oversample {
			factor = specs[i].Cook().OversampleFactor()
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%g\t%g\t%g\t%d\n",
			p.Name, p.Response, p.Order, p.Oversample, p.CutoffHz, p.Resonance, rate, factor)
	}

	return tw.Flush()
}

func printResponse(w io.Writer, resp *freqresp.Response, freqs []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tGain [dB]\tGain\n---------\t---------\t----\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, hz := range freqs {
		db := resp.AtHz(hz)
		if _, err := fmt.Fprintf(tw, "%g\t%.2f\t%.4f\n", hz, db, core.DBToLinear(db)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	fmt.Fprintln(w)
	printKeyValue(w, "Peak", "%.2f dB at %.1f Hz", resp.PeakDB(), resp.PeakHz())
	printKeyValue(w, "Floor", "%.2f dB", resp.MinDB())
	printKeyValue(w, "-3 dB bandwidth", "%.1f Hz", resp.BandwidthHz(3))

	if enbw, err := resp.NoiseBandwidthHz(); err == nil {
		printKeyValue(w, "Noise bandwidth", "%.1f Hz", enbw)
	}

	return nil
}
