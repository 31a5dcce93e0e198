// Package spectrum holds a sampled spectrum: a strictly increasing
// frequency axis with a voltage channel and an optional absorption channel.
//
// Detection code assumes a uniform frequency grid and reads the sample step
// from the first two samples only.
package spectrum

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrLengthMismatch is returned when a channel length differs from the frequency axis.
	ErrLengthMismatch = errors.New("spectrum: channel length differs from frequency axis")
	// ErrNotIncreasing is returned when the frequency axis is not strictly increasing.
	ErrNotIncreasing = errors.New("spectrum: frequency axis must be strictly increasing")
	// ErrNilSpectrum is returned when validating a nil *Spectrum.
	ErrNilSpectrum = errors.New("spectrum: nil spectrum")
)

// Spectrum is a sampled spectrum. Absorption is optional and may be nil.
type Spectrum struct {
	Frequency  []float64
	Voltage    []float64
	Absorption []float64
}

// New returns a spectrum over the given axes. The slices are not copied.
func New(frequency, voltage []float64) *Spectrum {
	return &Spectrum{Frequency: frequency, Voltage: voltage}
}

// WithAbsorption sets the absorption channel and returns s.
func (s *Spectrum) WithAbsorption(absorption []float64) *Spectrum {
	s.Absorption = absorption
	return s
}

// Len returns the number of samples on the frequency axis.
func (s *Spectrum) Len() int { return len(s.Frequency) }

// Step returns Frequency[1]-Frequency[0], or 0 for fewer than two samples.
func (s *Spectrum) Step() float64 {
	if len(s.Frequency) < 2 {
		return 0
	}
	return s.Frequency[1] - s.Frequency[0]
}

// SampleRate returns 1/Step, or 0 when the step is not positive.
func (s *Spectrum) SampleRate() float64 {
	step := s.Step()
	if !(step > 0) {
		return 0
	}
	return 1 / step
}

// HasAbsorption reports whether the absorption channel is aligned with the
// voltage channel.
func (s *Spectrum) HasAbsorption() bool {
	return s.Absorption != nil && len(s.Absorption) == len(s.Voltage)
}

// Validate checks channel lengths and the monotonicity of the frequency axis.
// A present absorption channel must match the frequency axis too.
func (s *Spectrum) Validate() error {
	if s == nil {
		return ErrNilSpectrum
	}
	if len(s.Voltage) != len(s.Frequency) {
		return fmt.Errorf("%w: voltage has %d samples, frequency %d", ErrLengthMismatch, len(s.Voltage), len(s.Frequency))
	}
	if s.Absorption != nil && len(s.Absorption) != len(s.Frequency) {
		return fmt.Errorf("%w: absorption has %d samples, frequency %d", ErrLengthMismatch, len(s.Absorption), len(s.Frequency))
	}
	for i := 1; i < len(s.Frequency); i++ {
		if !(s.Frequency[i] > s.Frequency[i-1]) {
			return fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}
	return nil
}

// SearchSorted returns the leftmost index i with Frequency[i] >= f, or Len()
// when every frequency is below f.
func (s *Spectrum) SearchSorted(f float64) int {
	return SearchLeft(s.Frequency, f)
}

// SearchLeft returns the leftmost insertion index of v in the ascending
// slice a.
func SearchLeft(a []float64, v float64) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= v })
}

// SearchRight returns the rightmost insertion index of v in the ascending
// slice a.
func SearchRight(a []float64, v float64) int {
	return sort.Search(len(a), func(i int) bool { return a[i] > v })
}

// Linspace returns n evenly spaced samples over [start, stop]. With
// endpoint false, stop is excluded and the spacing is (stop-start)/n.
func Linspace(start, stop float64, n int, endpoint bool) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	div := n
	if endpoint {
		div = n - 1
	}
	if div == 0 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(div)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	if endpoint && n > 1 {
		out[n-1] = stop
	}
	return out
}
