package lines

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-linefind/dsp/conv"
	"github.com/cwbudde/algo-linefind/dsp/filter/bandpass"
)

// Correlate scores every sample of amplitude by its resemblance to
// template, using the default configuration. See Detector.Correlate.
func Correlate(template, frequency, amplitude []float64) ([]float64, error) {
	return defaultDetector.Correlate(template, frequency, amplitude)
}

// Correlate filters amplitude, cross-correlates it with template using
// same-length alignment and z-scores the result. The output has
// len(amplitude) samples, zero mean and unit population standard
// deviation. A constant correlation yields all zeros. Empty amplitude
// yields an empty result.
//
// template must already be sampled at the spectrum step.
func (d *Detector) Correlate(template, frequency, amplitude []float64) ([]float64, error) {
	if len(amplitude) == 0 {
		return []float64{}, nil
	}
	if len(frequency) < 2 {
		return nil, fmt.Errorf("correlate: need at least 2 frequency samples, have %d", len(frequency))
	}

	sampleRate := 1 / (frequency[1] - frequency[0])
	filtered, err := bandpass.Apply(amplitude, sampleRate,
		d.cfg.LowCutRatio*sampleRate, d.cfg.HighCutRatio*sampleRate, d.cfg.FilterOrder)
	if err != nil {
		return nil, fmt.Errorf("correlate: %w", err)
	}

	corr, err := conv.CorrelateMode(filtered, template, conv.ModeSame)
	if err != nil {
		return nil, fmt.Errorf("correlate: %w", err)
	}

	zscore(corr)

	return corr, nil
}

// zscore standardises x in place. Zero spread maps to all zeros.
func zscore(x []float64) {
	n := float64(len(x))
	mean := vecmath.Sum(x) / n
	for i := range x {
		x[i] -= mean
	}

	std := stat.PopStdDev(x, nil)
	switch {
	case std == 0:
		clear(x)
	case math.IsNaN(std) || math.IsInf(std, 0):
	default:
		vecmath.ScaleBlockInPlace(x, 1/std)
	}
}
