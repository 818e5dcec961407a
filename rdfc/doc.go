// Package rdfc computes the recursive dynamic functional connectivity
// (rdFC) pattern of an EEG electrode triplet and scores it against three
// reference patterns.
//
// A [Pipeline] conditions the three channels with a zero-phase elliptic
// bandpass and mains notch, builds a [PatternMatrix] of whole-series
// correlations across several orders of rolling correlation, reduces it to
// a [NormalizedVector] of unit-length order-to-order changes, and sums the
// per-order dot products against each reference in a [ReferenceStore].
//
// Constructed pipelines and reference stores are read-only and may be
// shared between goroutines; each Run allocates its own buffers.
package rdfc
