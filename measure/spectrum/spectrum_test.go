package spectrum

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-linefind/internal/testutil"
)

func TestStepAndSampleRate(t *testing.T) {
	s := New([]float64{100, 100.5, 101}, []float64{0, 0, 0})
	if s.Len() != 3 {
		t.Fatalf("Len = %d", s.Len())
	}
	if s.Step() != 0.5 || s.SampleRate() != 2 {
		t.Fatalf("Step = %v, SampleRate = %v", s.Step(), s.SampleRate())
	}

	short := New([]float64{1}, []float64{1})
	if short.Step() != 0 || short.SampleRate() != 0 {
		t.Fatalf("short spectrum: step %v rate %v", short.Step(), short.SampleRate())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    *Spectrum
		want error
	}{
		{"ok", New([]float64{1, 2, 3}, []float64{4, 5, 6}), nil},
		{"ok with absorption", New([]float64{1, 2}, []float64{4, 5}).WithAbsorption([]float64{0, 1}), nil},
		{"voltage mismatch", New([]float64{1, 2, 3}, []float64{4, 5}), ErrLengthMismatch},
		{"absorption mismatch", New([]float64{1, 2}, []float64{4, 5}).WithAbsorption([]float64{0}), ErrLengthMismatch},
		{"duplicate frequency", New([]float64{1, 2, 2}, []float64{4, 5, 6}), ErrNotIncreasing},
		{"descending", New([]float64{3, 2, 1}, []float64{4, 5, 6}), ErrNotIncreasing},
		{"empty", New(nil, nil), nil},
		{"nil", nil, ErrNilSpectrum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHasAbsorption(t *testing.T) {
	s := New([]float64{1, 2}, []float64{3, 4})
	if s.HasAbsorption() {
		t.Fatal("nil absorption reported")
	}
	s.WithAbsorption([]float64{1})
	if s.HasAbsorption() {
		t.Fatal("misaligned absorption reported")
	}
	s.WithAbsorption([]float64{1, 2})
	if !s.HasAbsorption() {
		t.Fatal("aligned absorption not reported")
	}
}

func TestSearchSorted(t *testing.T) {
	s := New([]float64{10, 20, 20, 30}, nil)
	tests := []struct {
		f           float64
		left, right int
	}{
		{5, 0, 0},
		{10, 0, 1},
		{15, 1, 1},
		{20, 1, 3},
		{30, 3, 4},
		{35, 4, 4},
	}
	for _, tt := range tests {
		if got := s.SearchSorted(tt.f); got != tt.left {
			t.Errorf("SearchSorted(%v) = %d, want %d", tt.f, got, tt.left)
		}
		if got := SearchRight(s.Frequency, tt.f); got != tt.right {
			t.Errorf("SearchRight(%v) = %d, want %d", tt.f, got, tt.right)
		}
	}
}

func TestLinspace(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Linspace(0, 1, 5, true), []float64{0, 0.25, 0.5, 0.75, 1}, 0)
	testutil.RequireSliceNearlyEqual(t, Linspace(0, 1, 4, false), []float64{0, 0.25, 0.5, 0.75}, 0)
	testutil.RequireSliceNearlyEqual(t, Linspace(2, 5, 1, true), []float64{2}, 0)
	if got := Linspace(0, 1, 0, true); len(got) != 0 {
		t.Fatalf("n=0: %v", got)
	}

	x := Linspace(0, 1e6, 1000, true)
	if x[999] != 1e6 || x[0] != 0 {
		t.Fatalf("endpoints %v %v", x[0], x[999])
	}
}
