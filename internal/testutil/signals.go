package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// LCGNoise generates uniform noise in [-amplitude, amplitude) from a 32-bit
// linear congruential generator. The sequence depends only on integer
// arithmetic, so reference values computed with other tools reproduce exactly.
func LCGNoise(seed uint32, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	x := seed
	for i := range out {
		x = 1664525*x + 1013904223
		out[i] = (float64(x)/4294967296.0*2 - 1) * amplitude
	}
	return out
}

// Gaussian samples a Gaussian bump of the given height centered at index
// center with standard deviation sigma (in samples).
func Gaussian(length int, center, sigma, height float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		d := (float64(i) - center) / sigma
		out[i] = height * math.Exp(-0.5*d*d)
	}
	return out
}

// Linspace returns n evenly spaced samples from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
