package correlation

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrWindow reports a window length below 2.
	ErrWindow = errors.New("correlation: invalid window")
	// ErrLength reports mismatched or too-short inputs.
	ErrLength = errors.New("correlation: invalid series length")
)

// RollingLen returns the number of windows of length window in a series of
// length n, or 0 if the series is shorter than one window.
func RollingLen(n, window int) int {
	if window < 1 || n < window {
		return 0
	}

	return n - window + 1
}

// Rolling returns the Pearson correlation of every length-window slice of x
// and y, stepping by one sample. Element i covers x[i : i+window].
func Rolling(x, y []float64, window int) ([]float64, error) {
	dst := make([]float64, RollingLen(len(x), window))
	if err := RollingInto(dst, x, y, window); err != nil {
		return nil, err
	}

	return dst, nil
}

// RollingInto is Rolling writing into dst, which must have length
// RollingLen(len(x), window).
func RollingInto(dst, x, y []float64, window int) error {
	if window < 2 {
		return fmt.Errorf("%w: %d", ErrWindow, window)
	}

	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d samples", ErrLength, len(x), len(y))
	}

	if len(x) < window {
		return fmt.Errorf("%w: %d samples for window %d", ErrLength, len(x), window)
	}

	if want := RollingLen(len(x), window); len(dst) != want {
		return fmt.Errorf("%w: destination holds %d, need %d", ErrLength, len(dst), want)
	}

	var (
		acc        comoment
		runX, runY int
	)

	for i := range x {
		runX = runLength(x, i, runX)
		runY = runLength(y, i, runY)

		if i >= window {
			acc.remove(x[i-window], y[i-window])
		}

		acc.add(x[i], y[i])

		start := i - window + 1
		if start < 0 {
			continue
		}

		// Periodic exact recomputation bounds the drift of add/remove.
		if start > 0 && start%window == 0 {
			acc.reset(x[start:i+1], y[start:i+1])
		}

		switch {
		case acc.n < window:
			dst[start] = math.NaN()
		case runX >= window || runY >= window:
			dst[start] = math.NaN()
		default:
			dst[start] = coefficient(acc.sxy, acc.sxx, acc.syy)
		}
	}

	return nil
}

// runLength returns the length of the run of equal values ending at s[i],
// given the run length ending at s[i-1]. NaN ends a run.
func runLength(s []float64, i, prev int) int {
	switch {
	case math.IsNaN(s[i]):
		return 0
	case i > 0 && s[i] == s[i-1]:
		return prev + 1
	default:
		return 1
	}
}

// comoment tracks the mean and centred second moments of the complete
// (non-NaN) pairs in a window.
type comoment struct {
	n             int
	meanX, meanY  float64
	sxx, syy, sxy float64
}

func (c *comoment) add(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}

	c.n++
	nf := float64(c.n)

	dx := x - c.meanX
	dy := y - c.meanY
	c.meanX += dx / nf
	c.meanY += dy / nf

	c.sxx += dx * (x - c.meanX)
	c.syy += dy * (y - c.meanY)
	c.sxy += dx * (y - c.meanY)
}

func (c *comoment) remove(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}

	if c.n <= 1 {
		*c = comoment{}
		return
	}

	c.n--
	nf := float64(c.n)

	dx := x - c.meanX
	dy := y - c.meanY
	c.meanX -= dx / nf
	c.meanY -= dy / nf

	c.sxx -= dx * (x - c.meanX)
	c.syy -= dy * (y - c.meanY)
	c.sxy -= dx * (y - c.meanY)
}

// reset recomputes the accumulator exactly from the window contents.
func (c *comoment) reset(x, y []float64) {
	*c = comoment{}

	var sumX, sumY float64

	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}

		c.n++
		sumX += x[i]
		sumY += y[i]
	}

	if c.n == 0 {
		return
	}

	c.meanX = sumX / float64(c.n)
	c.meanY = sumY / float64(c.n)

	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}

		dx := x[i] - c.meanX
		dy := y[i] - c.meanY
		c.sxx += dx * dx
		c.syy += dy * dy
		c.sxy += dx * dy
	}
}
