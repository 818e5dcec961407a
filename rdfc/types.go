package rdfc

import (
	"fmt"
	"slices"
)

// NumChannels is the number of electrodes in a triplet.
const NumChannels = 3

// Pair identifies one of the three channel pairs of a triplet.
type Pair int

// Pairs in pattern row order.
const (
	PairAB Pair = iota
	PairBC
	PairAC
)

// pairChannels maps each Pair to its channel indices.
var pairChannels = [3][2]int{
	PairAB: {0, 1},
	PairBC: {1, 2},
	PairAC: {0, 2},
}

// String returns the pair label, e.g. "A-B".
func (p Pair) String() string {
	switch p {
	case PairAB:
		return "A-B"
	case PairBC:
		return "B-C"
	case PairAC:
		return "A-C"
	default:
		return fmt.Sprintf("Pair(%d)", int(p))
	}
}

// Channels returns the two channel indices the pair correlates.
func (p Pair) Channels() (int, int) {
	c := pairChannels[p]
	return c[0], c[1]
}

// ChannelSet holds the samples of channels A, B and C.
type ChannelSet [NumChannels][]float64

// ChannelSetFromRows builds a ChannelSet from a parsed grid with one row per
// channel. The rows are not copied.
func ChannelSetFromRows(rows [][]float64) (ChannelSet, error) {
	if len(rows) != NumChannels {
		return ChannelSet{}, &ShapeError{Rows: len(rows)}
	}

	return ChannelSet{rows[0], rows[1], rows[2]}, nil
}

// Len returns the per-channel sample count, or -1 if the channels differ
// in length.
func (c ChannelSet) Len() int {
	n := len(c[0])
	for _, ch := range c[1:] {
		if len(ch) != n {
			return -1
		}
	}

	return n
}

// Clone returns a deep copy.
func (c ChannelSet) Clone() ChannelSet {
	var out ChannelSet
	for i := range c {
		out[i] = slices.Clone(c[i])
	}

	return out
}

// PatternMatrix holds one correlation per pair and order, indexed
// [order][pair]. Values lie in [-1, 1] or are NaN.
type PatternMatrix [][NumChannels]float64

// PatternFromRows builds a PatternMatrix from a 3×K grid with one row per
// pair in A-B, B-C, A-C order.
func PatternFromRows(rows [][]float64) (PatternMatrix, error) {
	if len(rows) != NumChannels {
		return nil, fmt.Errorf("%w: pattern has %d rows, want %d", ErrShapeMismatch, len(rows), NumChannels)
	}

	k := len(rows[0])
	for i, r := range rows {
		if len(r) != k {
			return nil, fmt.Errorf("%w: pattern row %d has %d columns, want %d", ErrShapeMismatch, i, len(r), k)
		}
	}

	p := make(PatternMatrix, k)
	for o := range p {
		for pair := range p[o] {
			p[o][pair] = rows[pair][o]
		}
	}

	return p, nil
}

// Orders returns the number of correlation orders.
func (p PatternMatrix) Orders() int {
	return len(p)
}

// At returns the correlation of pair at the given order.
func (p PatternMatrix) At(pair Pair, order int) float64 {
	return p[order][pair]
}

// Column returns the three pair correlations at order.
func (p PatternMatrix) Column(order int) [NumChannels]float64 {
	return p[order]
}

// Row returns the correlations of pair across all orders.
func (p PatternMatrix) Row(pair Pair) []float64 {
	out := make([]float64, len(p))
	for o := range p {
		out[o] = p[o][pair]
	}

	return out
}

// Rows returns the matrix as three rows, one per pair.
func (p PatternMatrix) Rows() [][]float64 {
	return [][]float64{p.Row(PairAB), p.Row(PairBC), p.Row(PairAC)}
}

// NormalizedVector holds the unit-normed differences of adjacent pattern
// columns: one three-component column per order transition.
type NormalizedVector [][NumChannels]float64

// Columns returns the number of order transitions.
func (v NormalizedVector) Columns() int {
	return len(v)
}
