// Package interp provides interpolating B-splines on strictly increasing
// abscissae and helpers to resample uniformly spaced data onto a new step.
//
// Knot placement matches the conventional choice for interpolating splines:
// degree 1 places knots at the data sites, degree 2 uses midpoints between
// sites (dropping the first and last), odd degrees use the not-a-knot
// condition. Boundary knots are repeated degree+1 times.
package interp
