package correlation

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-rdfc/internal/testutil"
)

func bruteRolling(x, y []float64, window int) []float64 {
	out := make([]float64, 0, len(x)-window+1)

	for i := 0; i+window <= len(x); i++ {
		wx, wy := x[i:i+window], y[i:i+window]

		hasNaN := false
		for j := range wx {
			if math.IsNaN(wx[j]) || math.IsNaN(wy[j]) {
				hasNaN = true
			}
		}

		if hasNaN {
			out = append(out, math.NaN())
			continue
		}

		out = append(out, Pearson(wx, wy))
	}

	return out
}

func requireSameNaN(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}

	for i := range got {
		if math.IsNaN(want[i]) != math.IsNaN(got[i]) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}

		if !math.IsNaN(want[i]) && math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("index %d: got %v, want %v (diff %g)", i, got[i], want[i], math.Abs(got[i]-want[i]))
		}
	}
}

func TestRolling_MatchesBruteForce(t *testing.T) {
	x := testutil.DeterministicNoise(11, 1, 500)
	y := testutil.DeterministicNoise(12, 1, 500)

	for i := range y {
		y[i] = 0.3*y[i] + math.Sin(float64(i)/7)*x[i]
	}

	for _, w := range []int{2, 3, 16, 64, 256, 500} {
		got, err := Rolling(x, y, w)
		if err != nil {
			t.Fatalf("window %d: %v", w, err)
		}

		requireSameNaN(t, got, bruteRolling(x, y, w), 1e-9)
	}
}

func TestRolling_Length(t *testing.T) {
	x := testutil.DeterministicNoise(1, 1, 300)

	got, err := Rolling(x, x, 256)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 45 || RollingLen(300, 256) != 45 {
		t.Fatalf("len = %d, want 45", len(got))
	}

	for i, r := range got {
		if math.Abs(r-1) > 1e-12 {
			t.Fatalf("self-correlation at %d = %v", i, r)
		}
	}
}

func TestRolling_NaNWindows(t *testing.T) {
	x := testutil.DeterministicNoise(5, 1, 40)
	y := testutil.DeterministicNoise(6, 1, 40)
	x[10] = math.NaN()
	y[25] = math.NaN()

	got, err := Rolling(x, y, 8)
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range got {
		covers := (i <= 10 && 10 < i+8) || (i <= 25 && 25 < i+8)
		if covers != math.IsNaN(r) {
			t.Fatalf("window %d: r = %v, covers NaN = %v", i, r, covers)
		}
	}

	requireSameNaN(t, got, bruteRolling(x, y, 8), 1e-9)
}

func TestRolling_ConstantWindows(t *testing.T) {
	x := testutil.DeterministicNoise(9, 1, 30)
	y := testutil.DeterministicNoise(10, 1, 30)

	for i := 10; i < 18; i++ {
		x[i] = 0.25
	}

	got, err := Rolling(x, y, 5)
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range got {
		constant := i >= 10 && i+5 <= 18
		if constant != math.IsNaN(r) {
			t.Fatalf("window %d: r = %v, constant = %v", i, r, constant)
		}
	}
}

func TestRolling_Bounded(t *testing.T) {
	x := testutil.DeterministicSine(1, 256, 1, 2048)
	y := testutil.DeterministicSine(1, 256, 2, 2048)

	for i := range x {
		x[i] += 1e6
	}

	got, err := Rolling(x, y, 256)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireCorrelation(t, got)

	for i, r := range got {
		if math.Abs(r-1) > 1e-6 {
			t.Fatalf("index %d: r = %v, want ~1", i, r)
		}
	}
}

func TestRolling_Errors(t *testing.T) {
	x := make([]float64, 10)

	if _, err := Rolling(x, x, 1); !errors.Is(err, ErrWindow) {
		t.Fatalf("window 1: err = %v", err)
	}

	if _, err := Rolling(x, x[:9], 3); !errors.Is(err, ErrLength) {
		t.Fatalf("mismatch: err = %v", err)
	}

	if _, err := Rolling(x, x, 11); !errors.Is(err, ErrLength) {
		t.Fatalf("short: err = %v", err)
	}

	if err := RollingInto(make([]float64, 3), x, x, 4); !errors.Is(err, ErrLength) {
		t.Fatalf("dst: err = %v", err)
	}
}
