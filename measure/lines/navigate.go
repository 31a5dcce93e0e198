package lines

import "github.com/cwbudde/algo-linefind/measure/spectrum"

// PrevLine returns the detected line preceding f in the ascending slice
// lines. It skips the line immediately at or below f, so stepping from a
// line lands on its predecessor. f is returned when there is none.
func PrevLine(lines []float64, f float64) float64 {
	i := spectrum.SearchRight(lines, f) - 2
	if i >= 0 && i < len(lines) && lines[i] != f {
		return lines[i]
	}
	return f
}

// NextLine returns the detected line following f in the ascending slice
// lines. It skips the line immediately at or above f. f is returned when
// there is none.
func NextLine(lines []float64, f float64) float64 {
	i := spectrum.SearchLeft(lines, f) + 1
	if i < len(lines) && lines[i] != f {
		return lines[i]
	}
	return f
}
