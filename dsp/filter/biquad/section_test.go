package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func smoothing() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}

	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}

	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced impulse response for B=[0.25 0.5 0.25], A=[1 -0.2 0.04].
	s := NewSection(smoothing())

	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}

		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}

	s1 := NewSection(smoothing())
	ref := make([]float64, len(input))

	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(smoothing())
	block := append([]float64(nil), input...)
	s2.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
		}
	}

	if s1.State() != s2.State() {
		t.Fatalf("state diverged: %v vs %v", s1.State(), s2.State())
	}
}

func TestSteadyState_NoTransientForConstantInput(t *testing.T) {
	cases := []Coefficients{
		smoothing(),
		{B0: 0.9, B1: -1.8, B2: 0.9, A1: -1.79, A2: 0.81},
		{B0: 0.05, B1: 0, B2: -0.05, A1: -1.85, A2: 0.9},
	}

	for _, c := range cases {
		const x0 = 3.5

		s := NewSection(c)
		zi := c.SteadyState()
		s.SetState([2]float64{zi[0] * x0, zi[1] * x0})

		want := c.DCGain() * x0
		for i := range 20 {
			if y := s.ProcessSample(x0); !almostEqual(y, want, 1e-9) {
				t.Fatalf("%+v sample %d: got %v, want %v", c, i, y, want)
			}
		}
	}
}

func TestReset(t *testing.T) {
	s := NewSection(smoothing())
	s.ProcessSample(1)
	s.Reset()

	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("state after Reset: %v", st)
	}
}
