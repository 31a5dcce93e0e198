package lines

import "gonum.org/v1/gonum/floats"

// PeaksFromIslands returns one index per island: the position of the first
// maximum of amplitude[Start:End]. Islands whose maximum falls at relative
// position 0 or End-Start are dropped. Islands reaching past amplitude are
// skipped. Output follows island order.
func PeaksFromIslands(amplitude []float64, islands []Island) []int {
	peaks := make([]int, 0, len(islands))
	for _, is := range islands {
		if is.Start < 0 || is.End <= is.Start || is.End > len(amplitude) {
			continue
		}
		rel := floats.MaxIdx(amplitude[is.Start:is.End])
		if rel == 0 || rel == is.Len() {
			continue
		}
		peaks = append(peaks, is.Start+rel)
	}
	return peaks
}
