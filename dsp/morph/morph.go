// Package morph implements one-dimensional binary morphology on boolean
// masks with a three-sample structuring element.
//
// Samples outside the mask are treated as false for both dilation and
// erosion, so erosion always clears the first and last sample.
package morph

// Dilate grows every true run by one sample on each side, iterations times.
// The input is not modified.
func Dilate(mask []bool, iterations int) []bool {
	out := append([]bool(nil), mask...)
	if len(out) == 0 {
		return out
	}

	tmp := make([]bool, len(out))
	for range iterations {
		for i := range out {
			tmp[i] = out[i] ||
				(i > 0 && out[i-1]) ||
				(i+1 < len(out) && out[i+1])
		}
		out, tmp = tmp, out
	}

	return out
}

// Erode shrinks every true run by one sample on each side, iterations
// times. The input is not modified.
func Erode(mask []bool, iterations int) []bool {
	out := append([]bool(nil), mask...)
	if len(out) == 0 {
		return out
	}

	tmp := make([]bool, len(out))
	for range iterations {
		for i := range out {
			tmp[i] = out[i] &&
				i > 0 && out[i-1] &&
				i+1 < len(out) && out[i+1]
		}
		out, tmp = tmp, out
	}

	return out
}

// RemoveSpikes closes gaps and drops isolated spikes: it dilates
// iterations times, erodes iterations+1 times, then dilates once. Runs
// shorter than three samples after closing disappear.
func RemoveSpikes(mask []bool, iterations int) []bool {
	return Dilate(Erode(Dilate(mask, iterations), iterations+1), 1)
}

// Transitions returns every index i where mask[i] != mask[i+1], ascending.
func Transitions(mask []bool) []int {
	var idx []int
	for i := 0; i+1 < len(mask); i++ {
		if mask[i] != mask[i+1] {
			idx = append(idx, i)
		}
	}

	return idx
}

// Count returns the number of true samples.
func Count(mask []bool) int {
	n := 0
	for _, v := range mask {
		if v {
			n++
		}
	}

	return n
}
