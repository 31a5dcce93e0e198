// Command linescan synthesises a spectrum, searches it for lines matching a
// template and prints the found-lines table.
//
// Usage:
//
//	linescan [flags]
//
// Examples:
//
//	linescan
//	linescan --threshold 24 --noise 0.1
//	linescan -c linescan.yaml --log-level debug
//	linescan --template line.csv --template-step 0.1
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-linefind/dsp/signal"
	"github.com/cwbudde/algo-linefind/internal/config"
	"github.com/cwbudde/algo-linefind/internal/logging"
	"github.com/cwbudde/algo-linefind/measure/foundlines"
	"github.com/cwbudde/algo-linefind/measure/lines"
	"github.com/cwbudde/algo-linefind/measure/spectrum"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
}

// newFlagSet binds command-line flags. Values land in cfg only for flags the
// user actually set, so config-file values survive unset flags.
func newFlagSet(cfg *config.Config, o *options, stderr io.Writer) *pflag.FlagSet {
	fl := pflag.NewFlagSet("linescan", pflag.ContinueOnError)
	fl.SetOutput(stderr)

	fl.StringVarP(&o.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&cfg.Template, "template", "t", cfg.Template, "template file (one value per line)")
	fl.Float64Var(&cfg.TemplateStep, "template-step", cfg.TemplateStep, "frequency step of the template samples")
	fl.Float64VarP(&cfg.Threshold, "threshold", "T", cfg.Threshold, "detection threshold in [1, 1000]")
	fl.Float64Var(&cfg.Detector.LineWidth, "line-width", cfg.Detector.LineWidth, "expected line width in frequency units")
	fl.IntVar(&cfg.Detector.FilterOrder, "filter-order", cfg.Detector.FilterOrder, "Butterworth filter order")
	fl.IntVar(&cfg.Detector.SpikeIterations, "spike-iterations", cfg.Detector.SpikeIterations, "dilation count of the spike removal")
	fl.IntVarP(&cfg.Synth.Points, "points", "n", cfg.Synth.Points, "synthetic spectrum length")
	fl.Float64Var(&cfg.Synth.Start, "start", cfg.Synth.Start, "first synthetic frequency")
	fl.Float64Var(&cfg.Synth.Stop, "stop", cfg.Synth.Stop, "last synthetic frequency")
	fl.Float64SliceVar(&cfg.Synth.Lines, "lines", cfg.Synth.Lines, "synthetic line centres")
	fl.Float64Var(&cfg.Synth.Width, "width", cfg.Synth.Width, "synthetic line width")
	fl.Float64Var(&cfg.Synth.Height, "height", cfg.Synth.Height, "synthetic line height")
	fl.Float64Var(&cfg.Synth.Noise, "noise", cfg.Synth.Noise, "white noise amplitude")
	fl.Int64Var(&cfg.Synth.Seed, "seed", cfg.Synth.Seed, "noise seed")
	fl.StringVar(&cfg.Synth.Shape, "shape", cfg.Synth.Shape, "line shape: gaussian or lorentzian")
	fl.Float64Var(&cfg.Synth.BaselineOffset, "baseline-offset", cfg.Synth.BaselineOffset, "synthetic baseline offset")
	fl.Float64Var(&cfg.Synth.BaselineSlope, "baseline-slope", cfg.Synth.BaselineSlope, "synthetic baseline slope per frequency unit")
	fl.StringVarP(&cfg.Logging.Level, "log-level", "l", cfg.Logging.Level, "log level: debug, info, warn, error")
	fl.BoolVar(&cfg.Logging.Development, "dev", cfg.Logging.Development, "human-readable development logging")

	fl.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: linescan [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Searches a synthetic spectrum for lines matching a template.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fl.PrintDefaults()
	}
	return fl
}

// loadConfig parses args twice: once to find the config file, then again on
// top of the loaded file so explicit flags win.
func loadConfig(args []string, stderr io.Writer) (*config.Config, error) {
	var o options
	cfg := config.Default()
	probe := newFlagSet(cfg, &o, io.Discard)
	probe.Usage = func() {}
	if err := probe.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			newFlagSet(config.Default(), &options{}, stderr).Usage()
		}
		return nil, err
	}

	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if err := newFlagSet(cfg, &o, stderr).Parse(args); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Development,
		logging.WithOutput(stderr),
		logging.WithFields(zap.String("cmd", "linescan")))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gen := signal.NewGenerator(signal.WithSeed(cfg.Synth.Seed), signal.WithShape(parseShape(cfg.Synth.Shape)))

	spec, err := synthesize(gen, cfg.Synth)
	if err != nil {
		return err
	}
	tpl, err := loadTemplate(gen, cfg, log)
	if err != nil {
		return err
	}

	det := lines.NewDetector(append(cfg.DetectorOptions(), lines.WithLogger(log))...)
	found, err := det.DetectFrequencies(spec.Frequency, spec.Voltage, tpl, cfg.Threshold)
	if err != nil {
		return fmt.Errorf("detect lines: %w", err)
	}

	table := foundlines.New()
	table.SetLines(spec, found)

	log.Info("scan finished",
		zap.Int("samples", spec.Len()),
		zap.Float64("threshold", cfg.Threshold),
		zap.Int("lines", table.Len()),
	)
	return printTable(stdout, table)
}

func synthesize(gen *signal.Generator, sc config.SynthConfig) (*spectrum.Spectrum, error) {
	freq := spectrum.Linspace(sc.Start, sc.Stop, sc.Points, true)

	specLines := make([]signal.Line, len(sc.Lines))
	for i, c := range sc.Lines {
		specLines[i] = signal.Line{Center: c, Width: sc.Width, Height: sc.Height}
	}
	volt, err := gen.Lines(freq, specLines)
	if err != nil {
		return nil, fmt.Errorf("synthesize lines: %w", err)
	}
	if sc.BaselineOffset != 0 || sc.BaselineSlope != 0 {
		if volt, err = signal.Add(volt, signal.Baseline(freq, sc.BaselineOffset, sc.BaselineSlope)); err != nil {
			return nil, err
		}
	}
	if sc.Noise > 0 {
		noise, err := gen.WhiteNoise(sc.Noise, len(freq))
		if err != nil {
			return nil, fmt.Errorf("synthesize noise: %w", err)
		}
		if volt, err = signal.Add(volt, noise); err != nil {
			return nil, err
		}
	}

	s := spectrum.New(freq, volt)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadTemplate reads the configured template file. A missing default file
// falls back to a synthetic line of the configured shape and width.
func loadTemplate(gen *signal.Generator, cfg *config.Config, log *zap.Logger) (lines.Template, error) {
	tpl, err := lines.LoadTemplateFile(cfg.Template)
	if err == nil {
		tpl.Step = cfg.TemplateStep
		log.Debug("template loaded", zap.String("path", cfg.Template), zap.Int("samples", tpl.Len()))
		return tpl, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || cfg.Template != config.DefaultTemplatePath {
		return lines.Template{}, err
	}

	step := cfg.Synth.Width / 10
	samples, err := gen.Template(cfg.Synth.Width, step, 5*cfg.Synth.Width)
	if err != nil {
		return lines.Template{}, fmt.Errorf("synthesize template: %w", err)
	}
	log.Warn("template file not found, using synthetic template",
		zap.String("path", cfg.Template),
		zap.Int("samples", len(samples)),
		zap.Float64("step", step),
	)
	return lines.Template{Samples: samples, Step: step}, nil
}

func parseShape(name string) signal.Shape {
	if strings.EqualFold(name, "lorentzian") {
		return signal.ShapeLorentzian
	}
	return signal.ShapeGaussian
}

func printTable(w io.Writer, table *foundlines.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\tFrequency\tVoltage\tAbsorption\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t---------\t-------\t----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for i, r := range table.Rows() {
		abs := "-"
		if r.HasAbsorption {
			abs = fmt.Sprintf("%.6g", r.Absorption)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%.6f\t%.6g\t%s\n", i+1, r.Frequency, r.Voltage, abs); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
