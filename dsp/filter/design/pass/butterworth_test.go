package pass

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-linefind/dsp/filter/biquad"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// cascadeMag evaluates |H(e^jw)| of the sections in series at freq.
func cascadeMag(sections []biquad.Coefficients, freq, sr float64) float64 {
	z := cmplx.Exp(complex(0, -2*math.Pi*freq/sr))
	h := complex(1, 0)
	for _, c := range sections {
		num := complex(c.B0, 0) + complex(c.B1, 0)*z + complex(c.B2, 0)*z*z
		den := 1 + complex(c.A1, 0)*z + complex(c.A2, 0)*z*z
		h *= num / den
	}
	return cmplx.Abs(h)
}

// sectionRoots returns the poles of a section (roots of z^2 + A1 z + A2).
func sectionRoots(c biquad.Coefficients) (complex128, complex128) {
	disc := cmplx.Sqrt(complex(c.A1*c.A1-4*c.A2, 0))
	return (complex(-c.A1, 0) + disc) / 2, (complex(-c.A1, 0) - disc) / 2
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("invalid coefficient %v in %+v", v, c)
		}
	}
	r1, r2 := sectionRoots(c)
	if cmplx.Abs(r1) >= 1 || cmplx.Abs(r2) >= 1 {
		t.Fatalf("unstable poles %v, %v for %+v", r1, r2, c)
	}
}

func TestButterworth_SectionCount(t *testing.T) {
	sr := 48000.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2

		lp, err := ButterworthLP(1000, order, sr)
		if err != nil {
			t.Fatalf("LP order %d: %v", order, err)
		}
		hp, err := ButterworthHP(1000, order, sr)
		if err != nil {
			t.Fatalf("HP order %d: %v", order, err)
		}
		if len(lp) != want || len(hp) != want {
			t.Fatalf("order %d: sections lp=%d hp=%d, want %d", order, len(lp), len(hp), want)
		}

		last := hp[len(hp)-1]
		isFirstOrder := last.B2 == 0 && last.A2 == 0
		if isFirstOrder != (order%2 == 1) {
			t.Fatalf("order %d: first-order tail = %v", order, isFirstOrder)
		}
	}
}

func TestButterworth_Minus3dBAtCutoff(t *testing.T) {
	sr := 48000.0
	fc := 1000.0
	want := 1 / math.Sqrt2
	for _, order := range []int{1, 2, 3, 4, 5, 6, 8} {
		lp, _ := ButterworthLP(fc, order, sr)
		hp, _ := ButterworthHP(fc, order, sr)

		if got := cascadeMag(lp, fc, sr); !almostEqual(got, want, 1e-9) {
			t.Errorf("LP order %d: |H(fc)| = %v, want %v", order, got, want)
		}
		if got := cascadeMag(hp, fc, sr); !almostEqual(got, want, 1e-9) {
			t.Errorf("HP order %d: |H(fc)| = %v, want %v", order, got, want)
		}
	}
}

func TestButterworthHP_RejectsDCPassesNyquist(t *testing.T) {
	sr := 1000.0
	hp, err := ButterworthHP(5, 5, sr)
	if err != nil {
		t.Fatal(err)
	}
	if dc := cascadeMag(hp, 0, sr); dc > tol {
		t.Fatalf("|H(0)| = %v, want 0", dc)
	}
	if ny := cascadeMag(hp, sr/2, sr); !almostEqual(ny, 1, 1e-9) {
		t.Fatalf("|H(nyquist)| = %v, want 1", ny)
	}
}

func TestButterworthHP_HigherOrderSteeperRolloff(t *testing.T) {
	sr := 48000.0
	prev := math.Inf(1)
	for _, order := range []int{1, 2, 4, 6, 8} {
		hp, _ := ButterworthHP(1000, order, sr)
		m := cascadeMag(hp, 250, sr)
		if m >= prev {
			t.Fatalf("order %d: |H(250)| = %v not below %v", order, m, prev)
		}
		prev = m
	}
}

func TestButterworthHP_MatchesReferenceCoefficients(t *testing.T) {
	// Reference values from the analog prototype with bilinear prewarp,
	// cutoff at half of Nyquist.
	sr := 4.0
	first, err := ButterworthHP(1, 1, sr)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(first[0].B0, 0.5, tol) || !almostEqual(first[0].B1, -0.5, tol) || !almostEqual(first[0].A1, 0, tol) {
		t.Fatalf("order 1: %+v", first[0])
	}

	second, err := ButterworthHP(1, 2, sr)
	if err != nil {
		t.Fatal(err)
	}
	got := second[0]
	want := biquad.Coefficients{B0: 0.29289321881, B1: -0.58578643763, B2: 0.29289321881, A1: 0, A2: 0.17157287525}
	for i, pair := range [][2]float64{
		{got.B0, want.B0}, {got.B1, want.B1}, {got.B2, want.B2}, {got.A1, want.A1}, {got.A2, want.A2},
	} {
		if !almostEqual(pair[0], pair[1], 1e-10) {
			t.Fatalf("order 2 coefficient %d: got %v, want %v", i, pair[0], pair[1])
		}
	}
}

func TestButterworth_AllSectionsStable(t *testing.T) {
	for _, sr := range []float64{1, 1000, 48000, 1e-4} {
		for _, frac := range []float64{0.001, 0.0025, 0.1, 0.45} {
			for order := 1; order <= 8; order++ {
				hp, err := ButterworthHP(frac*sr, order, sr)
				if err != nil {
					t.Fatal(err)
				}
				lp, err := ButterworthLP(frac*sr, order, sr)
				if err != nil {
					t.Fatal(err)
				}
				for _, s := range append(hp, lp...) {
					assertStableSection(t, s)
				}
			}
		}
	}
}

func TestButterworth_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		freq  float64
		order int
		sr    float64
		want  error
	}{
		{"zero order", 100, 0, 1000, ErrInvalidOrder},
		{"negative order", 100, -2, 1000, ErrInvalidOrder},
		{"zero cutoff", 0, 4, 1000, ErrInvalidCutoff},
		{"at nyquist", 500, 4, 1000, ErrInvalidCutoff},
		{"above nyquist", 800, 4, 1000, ErrInvalidCutoff},
		{"zero sample rate", 100, 4, 0, ErrInvalidCutoff},
		{"NaN cutoff", math.NaN(), 4, 1000, ErrInvalidCutoff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ButterworthLP(tt.freq, tt.order, tt.sr); !errors.Is(err, tt.want) {
				t.Fatalf("LP: err = %v, want %v", err, tt.want)
			}
			if _, err := ButterworthHP(tt.freq, tt.order, tt.sr); !errors.Is(err, tt.want) {
				t.Fatalf("HP: err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRBJ_InvalidReturnsZero(t *testing.T) {
	if c := LowpassRBJ(0, 0.7, 1000); c != (biquad.Coefficients{}) {
		t.Fatalf("LowpassRBJ invalid: %+v", c)
	}
	if c := HighpassRBJ(600, 0.7, 1000); c != (biquad.Coefficients{}) {
		t.Fatalf("HighpassRBJ invalid: %+v", c)
	}
	// Non-positive Q falls back to Butterworth Q.
	if LowpassRBJ(100, -1, 1000) != LowpassRBJ(100, defaultQ, 1000) {
		t.Fatal("Q fallback mismatch")
	}
}
