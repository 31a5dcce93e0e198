// Package biquad runs cascades of second-order IIR sections.
//
// Sections use Direct Form II Transposed. A [Chain] filters a whole signal
// in one causal forward pass, section by section; there is no zero-phase
// (forward-backward) mode.
package biquad
