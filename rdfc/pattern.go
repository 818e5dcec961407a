package rdfc

import (
	"fmt"

	"github.com/cwbudde/algo-rdfc/stats/correlation"
)

// BuildPattern computes the rdFC pattern of signals. Order 0 holds the
// whole-series correlation of each pair. Each following order replaces the
// three series by their rolling correlations over samplingRate samples and
// correlates those again.
func BuildPattern(signals ChannelSet, samplingRate, numOrders int) (PatternMatrix, error) {
	if numOrders < 2 {
		return nil, fmt.Errorf("%w: %d orders, need at least 2", ErrInvalidConfiguration, numOrders)
	}

	if samplingRate < 2 {
		return nil, fmt.Errorf("%w: rolling window of %d samples", ErrInvalidConfiguration, samplingRate)
	}

	n := signals.Len()
	if n < 0 {
		return nil, &ShapeError{Rows: NumChannels, Samples: -1}
	}

	pattern := make(PatternMatrix, numOrders)
	vals := [NumChannels][]float64(signals)

	var arenas [2][NumChannels][]float64

	for order := range numOrders {
		if n < 2 {
			return nil, fmt.Errorf("%w: %d samples at order %d", ErrSeriesTooShort, n, order)
		}

		for p, ch := range pairChannels {
			pattern[order][p] = correlation.Pearson(vals[ch[0]], vals[ch[1]])
		}

		if order == numOrders-1 {
			break
		}

		m := correlation.RollingLen(n, samplingRate)
		if m == 0 {
			return nil, fmt.Errorf("%w: %d samples at order %d, window is %d", ErrSeriesTooShort, n, order, samplingRate)
		}

		next := &arenas[order%2]

		for p, ch := range pairChannels {
			if next[p] == nil {
				next[p] = make([]float64, m)
			}

			if err := correlation.RollingInto(next[p][:m], vals[ch[0]], vals[ch[1]], samplingRate); err != nil {
				return nil, fmt.Errorf("rdfc: order %d %s: %w", order, Pair(p), err)
			}
		}

		for p := range vals {
			vals[p] = next[p][:m]
		}

		n = m
	}

	return pattern, nil
}
