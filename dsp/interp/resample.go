package interp

import "math"

// Arange returns start, start+step, ... for values strictly below stop.
// The count is ceil((stop-start)/step); a non-positive count or step
// yields an empty slice.
func Arange(start, stop, step float64) []float64 {
	if !(step > 0) || math.IsInf(step, 0) {
		return []float64{}
	}

	n := math.Ceil((stop - start) / step)
	if !(n > 0) || math.IsInf(n, 0) {
		return []float64{}
	}

	out := make([]float64, int(n))
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// Resample maps y, sampled at i*srcStep, onto the grid Arange(0,
// (len(y)-1)*srcStep, dstStep) using a quadratic interpolating spline.
// Two samples are interpolated linearly. Fewer than two samples return a
// copy of y.
func Resample(y []float64, srcStep, dstStep float64) ([]float64, error) {
	if len(y) < 2 {
		return append([]float64{}, y...), nil
	}

	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i) * srcStep
	}

	s, err := NewSpline(x, y, min(2, len(y)-1))
	if err != nil {
		return nil, err
	}

	return s.Eval(Arange(x[0], x[len(x)-1], dstStep)), nil
}
