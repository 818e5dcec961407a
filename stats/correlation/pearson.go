package correlation

import "math"

// Pearson returns the correlation coefficient of x and y over the positions
// where both values are present (not NaN). It returns NaN when fewer than two
// complete pairs remain or either series has no variance over them.
// Only the common prefix is used when the lengths differ.
func Pearson(x, y []float64) float64 {
	n := min(len(x), len(y))

	var (
		count      int
		sumX, sumY float64
	)

	for i := range n {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}

		count++
		sumX += x[i]
		sumY += y[i]
	}

	if count < 2 {
		return math.NaN()
	}

	meanX := sumX / float64(count)
	meanY := sumY / float64(count)

	var sxx, syy, sxy float64

	for i := range n {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}

		dx := x[i] - meanX
		dy := y[i] - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}

	return coefficient(sxy, sxx, syy)
}

// coefficient forms r = sxy / sqrt(sxx·syy), clamped to [-1, 1].
func coefficient(sxy, sxx, syy float64) float64 {
	if !(sxx > 0) || !(syy > 0) {
		return math.NaN()
	}

	r := sxy / math.Sqrt(sxx*syy)

	return math.Max(-1, math.Min(1, r))
}
