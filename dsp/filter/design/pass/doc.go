// Package pass designs Butterworth lowpass and highpass filters as
// cascades of biquad sections.
//
// Even orders produce order/2 second-order sections. Odd orders append a
// first-order section (B2 = A2 = 0). Coefficients match the bilinear
// transform with frequency prewarping, so a cascade designed here has the
// same response as the classic analog-prototype design.
package pass
