// Package bandpass conditions a sampled signal with a Butterworth filter
// chosen from a pair of cutoffs.
//
// The cutoff pair selects the filter kind:
//
//	0 < low  and high <  sampleRate  band-pass [low, high]
//	0 < low  and high >= sampleRate  high-pass at low
//	low <= 0 and high <  sampleRate  low-pass at high
//
// Any other combination is rejected with ErrInvalidFilterRange. The filter
// runs causally (single forward pass), so the output has the same length as
// the input and carries the filter's phase delay.
package bandpass

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-linefind/dsp/filter/biquad"
	"github.com/cwbudde/algo-linefind/dsp/filter/design/pass"
)

// ErrInvalidFilterRange is returned when the cutoff pair does not describe a
// usable band-pass, high-pass or low-pass filter.
var ErrInvalidFilterRange = errors.New("bandpass: invalid filter range")

// Kind identifies the filter shape selected from the cutoff pair.
type Kind int

const (
	KindBandpass Kind = iota
	KindHighpass
	KindLowpass
)

func (k Kind) String() string {
	switch k {
	case KindBandpass:
		return "bandpass"
	case KindHighpass:
		return "highpass"
	case KindLowpass:
		return "lowpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classify selects the filter kind for the given cutoffs.
func Classify(sampleRate, lowCut, highCut float64) (Kind, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) || math.IsNaN(lowCut) || math.IsNaN(highCut) {
		return 0, ErrInvalidFilterRange
	}

	switch {
	case lowCut > 0 && highCut < sampleRate:
		return KindBandpass, nil
	case lowCut > 0:
		return KindHighpass, nil
	case highCut < sampleRate:
		return KindLowpass, nil
	default:
		return 0, ErrInvalidFilterRange
	}
}

// Design returns the biquad cascade for the cutoff pair and the selected
// kind. Band-pass designs cascade a high-pass at lowCut with a low-pass at
// highCut, each of the given order.
func Design(sampleRate, lowCut, highCut float64, order int) ([]biquad.Coefficients, Kind, error) {
	kind, err := Classify(sampleRate, lowCut, highCut)
	if err != nil {
		return nil, 0, err
	}

	var sections []biquad.Coefficients
	switch kind {
	case KindBandpass:
		if lowCut >= highCut {
			return nil, kind, fmt.Errorf("%w: low cutoff %g not below high cutoff %g", ErrInvalidFilterRange, lowCut, highCut)
		}
		hp, err := pass.ButterworthHP(lowCut, order, sampleRate)
		if err != nil {
			return nil, kind, wrap(err, kind)
		}
		lp, err := pass.ButterworthLP(highCut, order, sampleRate)
		if err != nil {
			return nil, kind, wrap(err, kind)
		}
		sections = append(hp, lp...)
	case KindHighpass:
		sections, err = pass.ButterworthHP(lowCut, order, sampleRate)
	case KindLowpass:
		sections, err = pass.ButterworthLP(highCut, order, sampleRate)
	}
	if err != nil {
		return nil, kind, wrap(err, kind)
	}

	return sections, kind, nil
}

func wrap(err error, kind Kind) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidFilterRange, kind, err)
}

// Apply filters amplitude with a Butterworth filter of the given order and
// returns a new slice of the same length. Empty input returns an empty slice.
func Apply(amplitude []float64, sampleRate, lowCut, highCut float64, order int) ([]float64, error) {
	if len(amplitude) == 0 {
		return []float64{}, nil
	}

	sections, _, err := Design(sampleRate, lowCut, highCut, order)
	if err != nil {
		return nil, err
	}

	return biquad.NewChain(sections).Filter(amplitude), nil
}
