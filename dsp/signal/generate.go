// Package signal synthesises deterministic spectra: line profiles on a
// frequency axis, baselines and noise. It feeds tests, examples and the
// linescan command.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Shape selects the profile used for a synthetic line.
type Shape int

const (
	// ShapeGaussian is exp(-0.5*((f-c)/w)^2); Width is the standard deviation.
	ShapeGaussian Shape = iota
	// ShapeLorentzian is 1/(1+((f-c)/w)^2); Width is the half width at half maximum.
	ShapeLorentzian
)

// Line describes one synthetic spectral line.
type Line struct {
	Center float64
	Width  float64
	Height float64
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	shape Shape
	seed  int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithShape selects the line profile.
func WithShape(s Shape) Option {
	return func(g *Generator) {
		g.shape = s
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Profile evaluates the configured line shape at offset d from the centre.
func (g *Generator) Profile(d, width float64) float64 {
	u := d / width
	if g.shape == ShapeLorentzian {
		return 1 / (1 + u*u)
	}
	return math.Exp(-0.5 * u * u)
}

// Lines sums the profiles of lines sampled at each frequency.
func (g *Generator) Lines(freq []float64, lines []Line) ([]float64, error) {
	out := make([]float64, len(freq))
	for _, l := range lines {
		if !(l.Width > 0) {
			return nil, fmt.Errorf("line width must be > 0: %f", l.Width)
		}
		for i, f := range freq {
			out[i] += l.Height * g.Profile(f-l.Center, l.Width)
		}
	}
	return out, nil
}

// Template samples a single unit-height line of the given width on a grid
// of nativeStep, spanning halfSpan on either side of the centre. The
// result has int(2*halfSpan/nativeStep)+1 samples.
func (g *Generator) Template(width, nativeStep, halfSpan float64) ([]float64, error) {
	if !(nativeStep > 0) {
		return nil, fmt.Errorf("template step must be > 0: %f", nativeStep)
	}
	if !(width > 0) || !(halfSpan > 0) {
		return nil, fmt.Errorf("template width and span must be > 0: %f, %f", width, halfSpan)
	}
	n := int(2*halfSpan/nativeStep) + 1
	center := float64(n-1) * nativeStep / 2
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Profile(float64(i)*nativeStep-center, width)
	}
	return out, nil
}

// Baseline returns offset + slope*(f - freq[0]) for every frequency.
func Baseline(freq []float64, offset, slope float64) []float64 {
	out := make([]float64, len(freq))
	if len(freq) == 0 {
		return out
	}
	for i, f := range freq {
		out[i] = offset + slope*(f-freq[0])
	}
	return out
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Add returns the element-wise sum of equally long signals.
func Add(signals ...[]float64) ([]float64, error) {
	if len(signals) == 0 {
		return nil, nil
	}
	out := make([]float64, len(signals[0]))
	for k, s := range signals {
		if len(s) != len(out) {
			return nil, fmt.Errorf("signal %d length %d, want %d", k, len(s), len(out))
		}
		for i, v := range s {
			out[i] += v
		}
	}
	return out, nil
}
