package conv

import (
	"fmt"
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
)

// correlateFFT multiplies the spectra of a and reversed b in a single
// zero-padded transform large enough to hold every lag.
func correlateFFT(a, b []float64) ([]float64, error) {
	size := len(a) + len(b) - 1
	n := 1 << bits.Len(uint(size-1))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("conv: fft plan of size %d: %w", n, err)
	}

	fa := make([]complex128, n)
	fb := make([]complex128, n)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}
	for j, v := range b {
		fb[len(b)-1-j] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: forward fft: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("conv: forward fft: %w", err)
	}
	for i := range fa {
		fa[i] *= fb[i]
	}
	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: inverse fft: %w", err)
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = real(fa[i])
	}
	return out, nil
}
