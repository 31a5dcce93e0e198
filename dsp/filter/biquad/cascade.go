package biquad

// Coefficients are the normalised (a0 = 1) coefficients of one
// second-order section:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// A first-order section sets B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section is one stage of a cascade: its coefficients plus the two
// transposed delay registers.
type Section struct {
	c      Coefficients
	z1, z2 float64
}

// Step feeds x through the section and returns the output sample.
func (s *Section) Step(x float64) float64 {
	y := s.c.B0*x + s.z1
	s.z1 = s.c.B1*x - s.c.A1*y + s.z2
	s.z2 = s.c.B2*x - s.c.A2*y
	return y
}

// Run overwrites buf with the section output, continuing from the current
// register state.
func (s *Section) Run(buf []float64) {
	for i, x := range buf {
		buf[i] = s.Step(x)
	}
}

// Clear zeroes the delay registers.
func (s *Section) Clear() {
	s.z1, s.z2 = 0, 0
}

// Chain runs sections in series, first to last.
type Chain struct {
	stages []Section
}

// NewChain builds a cascade with one zero-state Section per coefficient set.
func NewChain(coeffs []Coefficients) *Chain {
	stages := make([]Section, len(coeffs))
	for i, c := range coeffs {
		stages[i].c = c
	}
	return &Chain{stages: stages}
}

// Filter clears every stage, then runs src through the cascade in a single
// forward pass. src is left untouched.
func (c *Chain) Filter(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	for i := range c.stages {
		c.stages[i].Clear()
		c.stages[i].Run(out)
	}
	return out
}
