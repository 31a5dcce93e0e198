// Package foundlines keeps the table of found spectral lines consistent
// with the spectrum they were found in.
//
// A Table tracks a set of line frequencies, typically the union of
// automatically detected and manually marked lines, and derives one row per
// frequency holding the spectrum's values at that sample. A Table is not
// safe for concurrent use.
package foundlines

import (
	"slices"

	"github.com/cwbudde/algo-linefind/measure/spectrum"
)

// Row is one found line.
type Row struct {
	Frequency     float64
	Voltage       float64
	Absorption    float64
	HasAbsorption bool
}

// Table is the found-lines table.
type Table struct {
	freqs []float64 // ascending, unique
	rows  []Row
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// AddLine tracks f and refreshes the rows. A frequency that is already
// tracked (exact match) leaves the table unchanged.
func (t *Table) AddLine(s *spectrum.Spectrum, f float64) {
	i, found := slices.BinarySearch(t.freqs, f)
	if found {
		return
	}
	t.freqs = slices.Insert(t.freqs, i, f)
	t.Refresh(s)
}

// SetLines replaces the tracked set with the union of all sources and
// refreshes the rows.
func (t *Table) SetLines(s *spectrum.Spectrum, sources ...[]float64) {
	var all []float64
	for _, src := range sources {
		all = append(all, src...)
	}
	slices.Sort(all)
	t.freqs = slices.Compact(all)
	t.Refresh(s)
}

// LookupIndices returns, for every frequency, its leftmost insertion index
// on the spectrum's frequency axis.
func LookupIndices(s *spectrum.Spectrum, freqs []float64) []int {
	var axis []float64
	if s != nil {
		axis = s.Frequency
	}
	idx := make([]int, len(freqs))
	for i, f := range freqs {
		idx[i] = spectrum.SearchLeft(axis, f)
	}
	return idx
}

// Refresh rebuilds the rows from s. Tracked frequencies that are not
// samples of s are dropped. An empty tracked set or a nil s clears the
// table.
func (t *Table) Refresh(s *spectrum.Spectrum) {
	if len(t.freqs) == 0 || s == nil {
		t.Clear()
		return
	}

	absorption := s.HasAbsorption()
	kept := t.freqs[:0]
	rows := make([]Row, 0, len(t.freqs))
	for k, i := range LookupIndices(s, t.freqs) {
		f := t.freqs[k]
		if i >= s.Len() || i >= len(s.Voltage) || s.Frequency[i] != f {
			continue
		}
		kept = append(kept, f)

		r := Row{Frequency: s.Frequency[i], Voltage: s.Voltage[i]}
		if absorption {
			r.Absorption = s.Absorption[i]
			r.HasAbsorption = true
		}
		rows = append(rows, r)
	}
	t.freqs = kept
	t.rows = rows
}

// Clear drops all tracked frequencies and rows.
func (t *Table) Clear() {
	t.freqs = nil
	t.rows = nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th row. Rows follow ascending frequency.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Rows returns a copy of the rows.
func (t *Table) Rows() []Row { return slices.Clone(t.rows) }

// Frequencies returns the tracked frequencies in ascending order.
func (t *Table) Frequencies() []float64 { return slices.Clone(t.freqs) }
