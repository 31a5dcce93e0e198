package pass

import (
	"errors"

	"github.com/cwbudde/algo-linefind/dsp/filter/biquad"
)

// ErrInvalidCutoff is returned when a cutoff is not strictly between 0 and
// Nyquist, or the sample rate is not positive.
var ErrInvalidCutoff = errors.New("pass: cutoff must be within (0, sampleRate/2)")

// ErrInvalidOrder is returned for a non-positive filter order.
var ErrInvalidOrder = errors.New("pass: order must be > 0")

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	return butterworth(freq, order, sampleRate, LowpassRBJ, butterworthFirstOrderLP)
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	return butterworth(freq, order, sampleRate, HighpassRBJ, butterworthFirstOrderHP)
}

func butterworth(
	freq float64, order int, sampleRate float64,
	second func(freq, q, sampleRate float64) biquad.Coefficients,
	first func(freq, sampleRate float64) biquad.Coefficients,
) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, ErrInvalidOrder
	}
	if !validCutoff(freq, sampleRate) {
		return nil, ErrInvalidCutoff
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, second(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, first(freq, sampleRate))
	}

	return sections, nil
}
