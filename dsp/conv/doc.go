// Package conv computes linear cross-correlation with numpy-style output
// modes.
//
// Short operands are correlated lag by lag with SIMD dot products; once
// both operands exceed 64 samples the correlation runs through one
// zero-padded FFT.
//
// [ModeSame] keeps len(a) samples starting at full index (len(b)-1)/2,
// which is where a template centred on a feature of a peaks:
//
//	likelihood, err := conv.CorrelateMode(spectrum, template, conv.ModeSame)
package conv
