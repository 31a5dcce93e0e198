package lines

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-linefind/measure/spectrum"
)

// LineWidth is the physical width of a spectral line in the spectrum's
// frequency units. It sets the rolling window of the candidate statistic.
const LineWidth = 2.6e6

var (
	// ErrMalformedMask reports a candidate mask with an odd number of
	// transitions. Mask edges are forced false, so this indicates a bug.
	ErrMalformedMask = errors.New("lines: candidate mask has an odd number of transitions")
	// ErrInvalidThreshold is returned for a threshold below 1 or NaN.
	ErrInvalidThreshold = errors.New("lines: threshold must be >= 1")
)

// Config holds detector parameters.
type Config struct {
	// LineWidth is the rolling window span in frequency units.
	LineWidth float64
	// FilterOrder is the Butterworth order of the preprocessing filter.
	FilterOrder int
	// LowCutRatio and HighCutRatio scale the sample rate into filter cutoffs.
	// The default (0.005, +Inf) selects a high-pass filter.
	LowCutRatio  float64
	HighCutRatio float64
	// SpikeIterations is the dilation count of the spike-removal pass.
	SpikeIterations int
}

// DefaultConfig returns the standard detection parameters.
func DefaultConfig() Config {
	return Config{
		LineWidth:       LineWidth,
		FilterOrder:     5,
		LowCutRatio:     0.005,
		HighCutRatio:    math.Inf(1),
		SpikeIterations: 8,
	}
}

// Option mutates a Detector.
type Option func(*Detector)

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(d *Detector) {
		d.cfg = cfg
	}
}

// WithLineWidth sets the rolling window span in frequency units.
func WithLineWidth(width float64) Option {
	return func(d *Detector) {
		if width > 0 {
			d.cfg.LineWidth = width
		}
	}
}

// WithFilterOrder sets the Butterworth order.
func WithFilterOrder(order int) Option {
	return func(d *Detector) {
		if order > 0 {
			d.cfg.FilterOrder = order
		}
	}
}

// WithCutoffRatios sets the filter cutoffs as fractions of the sample rate.
// A low ratio <= 0 disables the high-pass edge, a high ratio >= 1 disables
// the low-pass edge.
func WithCutoffRatios(low, high float64) Option {
	return func(d *Detector) {
		d.cfg.LowCutRatio = low
		d.cfg.HighCutRatio = high
	}
}

// WithSpikeIterations sets the dilation count of the spike-removal pass.
func WithSpikeIterations(n int) Option {
	return func(d *Detector) {
		if n >= 0 {
			d.cfg.SpikeIterations = n
		}
	}
}

// Detector runs line detection with a fixed configuration.
type Detector struct {
	cfg Config
	log *zap.Logger
}

var defaultDetector = NewDetector()

// NewDetector returns a detector using DefaultConfig, modified by opts.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		cfg: DefaultConfig(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Config returns the detector configuration.
func (d *Detector) Config() Config { return d.cfg }

// Detect returns the ascending sample indices of lines found in amplitude
// with the default configuration. See Detector.Detect.
func Detect(frequency, amplitude []float64, tpl Template, threshold float64) ([]int, error) {
	return defaultDetector.Detect(frequency, amplitude, tpl, threshold)
}

// Detect returns the ascending sample indices of lines found in amplitude.
//
// A disabled template or fewer than two spectrum samples yield an empty
// result and a nil error. frequency must be uniformly spaced and
// increasing; only its first two samples determine the step.
func (d *Detector) Detect(frequency, amplitude []float64, tpl Template, threshold float64) ([]int, error) {
	if !tpl.Enabled() || len(frequency) < 2 || len(amplitude) < 2 {
		d.log.Debug("detection skipped",
			zap.Int("template", tpl.Len()),
			zap.Int("samples", len(amplitude)))
		return []int{}, nil
	}
	if len(frequency) != len(amplitude) {
		return nil, fmt.Errorf("detect: %w: %d frequencies, %d amplitudes",
			spectrum.ErrLengthMismatch, len(frequency), len(amplitude))
	}
	if math.IsNaN(threshold) || threshold < 1 {
		return nil, fmt.Errorf("detect: %w: %g", ErrInvalidThreshold, threshold)
	}

	step := frequency[1] - frequency[0]
	if !(step > 0) {
		return nil, fmt.Errorf("detect: %w: step %g", spectrum.ErrNotIncreasing, step)
	}

	template, err := tpl.Resample(step)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	d.log.Debug("template resampled",
		zap.Int("native", tpl.Len()),
		zap.Int("resampled", len(template)),
		zap.Float64("step", step))

	likelihood, err := d.Correlate(template, frequency, amplitude)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	islands, err := d.FindCandidateRegions(frequency, likelihood, threshold)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	peaks := PeaksFromIslands(amplitude, islands)
	d.log.Debug("lines detected",
		zap.Int("islands", len(islands)),
		zap.Int("lines", len(peaks)),
		zap.Float64("threshold", threshold))

	return peaks, nil
}

// DetectSpectrum validates s and detects lines in its voltage channel.
func (d *Detector) DetectSpectrum(s *spectrum.Spectrum, tpl Template, threshold float64) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return d.Detect(s.Frequency, s.Voltage, tpl, threshold)
}

// DetectFrequencies returns the frequencies of the detected lines.
func (d *Detector) DetectFrequencies(frequency, amplitude []float64, tpl Template, threshold float64) ([]float64, error) {
	idx, err := d.Detect(frequency, amplitude, tpl, threshold)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = frequency[j]
	}
	return out, nil
}
