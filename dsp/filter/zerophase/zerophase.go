// Package zerophase applies a biquad cascade forward and backward so the
// combined response has zero phase and squared magnitude.
//
// Edges are handled by odd reflection of the signal and by priming each
// pass with the cascade's steady state for the first sample it sees, which
// keeps start-up transients out of the trimmed result.
package zerophase

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-rdfc/dsp/filter/biquad"
)

// ErrTooShort reports an input that is not longer than the edge padding.
var ErrTooShort = errors.New("zerophase: signal too short")

// PadLength returns the number of reflected samples added at each end for
// the given cascade: three times its effective tap count.
func PadLength(coeffs []biquad.Coefficients) int {
	var zeroB2, zeroA2 int

	for _, c := range coeffs {
		if c.B2 == 0 {
			zeroB2++
		}

		if c.A2 == 0 {
			zeroA2++
		}
	}

	taps := 2*len(coeffs) + 1 - min(zeroB2, zeroA2)

	return 3 * taps
}

// Filter returns the zero-phase filtered copy of x. x is not modified.
// The input must be longer than PadLength(coeffs).
func Filter(coeffs []biquad.Coefficients, x []float64) ([]float64, error) {
	if len(coeffs) == 0 {
		return slices.Clone(x), nil
	}

	pad := PadLength(coeffs)
	if len(x) <= pad {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrTooShort, len(x), pad)
	}

	chain := biquad.NewChain(coeffs)
	steady := chain.SteadyState()

	buf := oddExtend(x, pad)

	chain.Prime(steady, buf[0])
	chain.ProcessBlock(buf)

	slices.Reverse(buf)

	chain.Prime(steady, buf[0])
	chain.ProcessBlock(buf)

	slices.Reverse(buf)

	return buf[pad : pad+len(x)], nil
}

// oddExtend reflects n samples about each endpoint: the left tail is
// 2·x[0] − x[n..1] and the right tail 2·x[last] − x[last−1..last−n].
func oddExtend(x []float64, n int) []float64 {
	last := len(x) - 1
	out := make([]float64, 0, len(x)+2*n)

	for i := n; i >= 1; i-- {
		out = append(out, 2*x[0]-x[i])
	}

	out = append(out, x...)

	for i := 1; i <= n; i++ {
		out = append(out, 2*x[last]-x[last-i])
	}

	return out
}
