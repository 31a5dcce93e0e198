package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrTooFewPoints is returned when there are fewer than degree+1 samples.
	ErrTooFewPoints = errors.New("interp: too few points for spline degree")
	// ErrNotIncreasing is returned when the abscissae are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: x must be strictly increasing")
	// ErrDegree is returned for unsupported spline degrees.
	ErrDegree = errors.New("interp: unsupported spline degree")
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("interp: x and y lengths differ")
	// ErrSingular is returned when the collocation system cannot be solved.
	ErrSingular = errors.New("interp: singular collocation matrix")
)

// Spline is an interpolating B-spline of fixed degree.
//
// Evaluation outside [x[0], x[n-1]] extrapolates the boundary polynomial
// pieces.
type Spline struct {
	knots  []float64
	coeffs []float64
	degree int
}

// NewSpline builds the interpolating spline of the given degree through
// (x[i], y[i]). Supported degrees are 1, 2 and 3.
func NewSpline(x, y []float64, degree int) (*Spline, error) {
	if degree < 1 || degree > 3 {
		return nil, fmt.Errorf("%w: %d", ErrDegree, degree)
	}
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) < degree+1 {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewPoints, len(x), degree+1)
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("%w: x[%d]=%g after x[%d]=%g", ErrNotIncreasing, i, x[i], i-1, x[i-1])
		}
	}

	s := &Spline{
		knots:  interpolationKnots(x, degree),
		degree: degree,
	}

	coeffs, err := s.solve(x, y)
	if err != nil {
		return nil, err
	}
	s.coeffs = coeffs

	return s, nil
}

// Knots returns a copy of the knot vector.
func (s *Spline) Knots() []float64 {
	return append([]float64(nil), s.knots...)
}

// At evaluates the spline at x.
func (s *Spline) At(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	k := s.degree
	l := s.interval(x)

	var buf [4]float64
	h := s.basis(x, l, buf[:k+1])

	var sum float64
	for m, b := range h {
		sum += s.coeffs[l-k+m] * b
	}

	return sum
}

// Eval evaluates the spline at every point of xs.
func (s *Spline) Eval(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.At(x)
	}

	return out
}

func interpolationKnots(x []float64, k int) []float64 {
	n := len(x)
	t := make([]float64, 0, n+k+1)

	for range k + 1 {
		t = append(t, x[0])
	}

	switch {
	case k == 2:
		// Midpoints between sites, without the first and last.
		for i := 1; i < n-2; i++ {
			t = append(t, (x[i]+x[i+1])/2)
		}
	default:
		m := (k - 1) / 2
		t = append(t, x[m+1:n-m-1]...)
	}

	for range k + 1 {
		t = append(t, x[n-1])
	}

	return t
}

// interval returns l in [k, n-1] with t[l] <= x < t[l+1], clamped at the
// ends so boundary and out-of-range points use the outermost pieces.
func (s *Spline) interval(x float64) int {
	k := s.degree
	n := len(s.knots) - k - 1

	// First knot index in (k, n] strictly greater than x.
	j := sort.Search(n-k, func(i int) bool { return s.knots[k+1+i] > x })
	l := k + j
	if l > n-1 {
		l = n - 1
	}

	return l
}

// basis writes the k+1 non-zero B-spline values at x for interval l into h,
// using the Cox-de Boor recursion. h[m] belongs to B_{l-k+m}.
func (s *Spline) basis(x float64, l int, h []float64) []float64 {
	t := s.knots
	k := s.degree

	var hhBuf [4]float64
	hh := hhBuf[:k+1]

	h[0] = 1
	for j := 1; j <= k; j++ {
		copy(hh[:j], h[:j])
		h[0] = 0
		for n := 1; n <= j; n++ {
			xb := t[l+n]
			xa := t[l+n-j]
			if xb == xa {
				h[n] = 0
				continue
			}
			w := hh[n-1] / (xb - xa)
			h[n-1] += w * (xb - x)
			h[n] = w * (x - xa)
		}
	}

	return h
}

// solve assembles the banded collocation matrix and solves it with
// Gaussian elimination without pivoting. B-spline collocation matrices are
// totally positive, so elimination without row exchanges is stable.
func (s *Spline) solve(x, y []float64) ([]float64, error) {
	n := len(x)
	k := s.degree

	rows := make([]int, n)
	kl, ku := 0, 0
	for j, xj := range x {
		l := s.interval(xj)
		rows[j] = l
		if d := j - (l - k); d > kl {
			kl = d
		}
		if d := l - j; d > ku {
			ku = d
		}
	}

	width := kl + ku + 1
	band := make([]float64, n*width)
	at := func(r, c int) *float64 { return &band[r*width+c-r+kl] }

	var buf [4]float64
	for j, xj := range x {
		l := rows[j]
		h := s.basis(xj, l, buf[:k+1])
		for m, b := range h {
			*at(j, l-k+m) = b
		}
	}

	rhs := append([]float64(nil), y...)

	for c := range n {
		piv := *at(c, c)
		if piv == 0 || math.IsNaN(piv) {
			return nil, ErrSingular
		}
		last := min(n-1, c+ku)
		for r := c + 1; r <= min(n-1, c+kl); r++ {
			f := *at(r, c) / piv
			if f == 0 {
				continue
			}
			for cc := c; cc <= last; cc++ {
				*at(r, cc) -= f * *at(c, cc)
			}
			rhs[r] -= f * rhs[c]
		}
	}

	for c := n - 1; c >= 0; c-- {
		sum := rhs[c]
		for cc := c + 1; cc <= min(n-1, c+ku); cc++ {
			sum -= *at(c, cc) * rhs[cc]
		}
		rhs[c] = sum / *at(c, c)
	}

	return rhs, nil
}
