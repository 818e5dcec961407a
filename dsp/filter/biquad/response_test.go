package biquad

import (
	"math"
	"testing"
)

func TestResponse_DCAndNyquist(t *testing.T) {
	c := smoothing()

	dc := c.Response(0, 48000)
	if !almostEqual(real(dc), c.DCGain(), 1e-12) || !almostEqual(imag(dc), 0, 1e-12) {
		t.Fatalf("DC response %v, want %v", dc, c.DCGain())
	}

	// B0 - B1 + B2 = 0: the numerator vanishes at Nyquist.
	if ny := c.Response(24000, 48000); math.Hypot(real(ny), imag(ny)) > 1e-12 {
		t.Fatalf("Nyquist response %v, want 0", ny)
	}
}

func TestCascadeMagnitudeDB_SumsSections(t *testing.T) {
	coeffs := twoSectionCoeffs()

	for _, f := range []float64{10, 1000, 5000, 20000} {
		want := coeffs[0].MagnitudeDB(f, 48000) + coeffs[1].MagnitudeDB(f, 48000)

		if got := CascadeMagnitudeDB(coeffs, f, 48000); !almostEqual(got, want, 1e-9) {
			t.Fatalf("%v Hz: cascade %v dB, want %v dB", f, got, want)
		}

		if got := NewChain(coeffs).MagnitudeDB(f, 48000); !almostEqual(got, want, 1e-9) {
			t.Fatalf("%v Hz: chain %v dB, want %v dB", f, got, want)
		}
	}
}

func TestImpulseResponse_PreservesState(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	c.ProcessSample(1)

	before := c.State()

	ir := c.ImpulseResponse(8)
	if len(ir) != 8 {
		t.Fatalf("len = %d, want 8", len(ir))
	}

	if ir[0] != 0.25*0.1 {
		t.Fatalf("ir[0] = %v, want %v", ir[0], 0.25*0.1)
	}

	after := c.State()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("state changed at section %d", i)
		}
	}

	if c.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n=0")
	}
}
