// Package rolling computes moving-window statistics over sampled data.
//
// Windows are centred on the output sample. For a window of w samples the
// window covering output i spans [i+(w-1)/2+1-w, i+(w-1)/2], the same
// placement as a centred rolling window in common dataframe libraries.
// Outputs whose window would reach past either end of the input are NaN.
package rolling

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// StdDev returns the centred rolling sample standard deviation (n-1
// denominator) of y over windows of the given width. The result has the
// same length as y. Windows that are incomplete or contain NaN yield NaN,
// as does every output when window < 2.
func StdDev(y []float64, window int) []float64 {
	out := make([]float64, len(y))
	for i := range out {
		out[i] = math.NaN()
	}
	if window < 2 || window > len(y) {
		return out
	}

	offset := (window - 1) / 2
	for i := range out {
		end := i + offset + 1
		start := end - window
		if start < 0 || end > len(y) {
			continue
		}
		out[i] = stat.StdDev(y[start:end], nil)
	}

	return out
}

// Bounds returns the first and last index of StdDev output that carry a
// complete window, or ok=false when none does.
func Bounds(n, window int) (first, last int, ok bool) {
	if window < 2 || window > n {
		return 0, 0, false
	}
	offset := (window - 1) / 2
	first = window - 1 - offset
	last = n - 1 - offset

	return first, last, true
}

// NanQuantile returns the q-th quantile (0 <= q <= 1) of values, ignoring
// NaN, with linear interpolation between the two nearest order statistics:
// the position h = (n-1)*q over the sorted finite values. It returns NaN
// when values has no non-NaN element or q is outside [0, 1].
func NanQuantile(values []float64, q float64) float64 {
	if !(q >= 0 && q <= 1) {
		return math.NaN()
	}

	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * q
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}

	return lerp(sorted[lo], sorted[lo+1], h-float64(lo))
}

// lerp interpolates from a to b, anchoring on b for t >= 0.5 so that the
// result is exact at both ends.
func lerp(a, b, t float64) float64 {
	d := b - a
	if t >= 0.5 {
		return b - d*(1-t)
	}

	return a + d*t
}
