package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned for empty operands.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Mode selects which lags a correlation returns.
type Mode int

const (
	// ModeFull returns every lag, len(a)+len(b)-1 samples.
	ModeFull Mode = iota

	// ModeSame returns len(a) samples starting at full index (len(b)-1)/2.
	ModeSame

	// ModeValid returns the lags where one operand lies entirely inside the
	// other, |len(a)-len(b)|+1 samples.
	ModeValid
)

// fftThreshold is the shorter operand length above which Correlate uses
// the FFT path.
const fftThreshold = 64

// Correlate returns the full cross-correlation
//
//	c[k] = sum_j a[k-(len(b)-1)+j] * b[j]
//
// for k in [0, len(a)+len(b)-1). Index k holds lag k-(len(b)-1).
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}
	if min(len(a), len(b)) > fftThreshold {
		return correlateFFT(a, b)
	}
	return correlateDirect(a, b), nil
}

// CorrelateMode is Correlate restricted to the lags of mode. With ModeSame
// the result has len(a) samples even when b is the longer operand.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	n, m := len(a), len(b)
	switch mode {
	case ModeSame:
		start := (m - 1) / 2
		return full[start : start+n], nil
	case ModeValid:
		if n >= m {
			return full[m-1 : n], nil
		}
		return full[n-1 : m], nil
	default:
		return full, nil
	}
}

// correlateDirect computes each lag as one dot product over the overlap.
func correlateDirect(a, b []float64) []float64 {
	n, m := len(a), len(b)
	out := make([]float64, n+m-1)
	for k := range out {
		lo := max(0, k-(m-1))
		hi := min(n, k+1)
		j := lo - k + m - 1
		out[k] = vecmath.DotProduct(a[lo:hi], b[j:j+hi-lo])
	}
	return out
}
