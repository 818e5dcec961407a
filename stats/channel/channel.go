// Package channel summarizes a single recorded channel before and after
// conditioning: offset, level, spread and whether the electrode looks flat.
package channel

import "math"

// FlatTolerance is the standard deviation below which a channel is reported
// as flat. Such channels make every correlation involving them undefined.
const FlatTolerance = 1e-12

// Summary holds time-domain statistics of one channel. NaN samples are
// counted and otherwise ignored.
//
//nolint:revive
type Summary struct {
	Length   int
	NaNCount int
	DC       float64 // mean
	RMS      float64
	RMS_dB   float64
	Min      float64
	Max      float64
	Peak     float64 // max(|max|, |min|)
	Variance float64
	StdDev   float64
	Flat     bool
}

// Summarize computes the summary in a single pass using Welford's update
// for the variance.
func Summarize(signal []float64) Summary {
	s := Summary{
		Length: len(signal),
		RMS_dB: math.Inf(-1),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Flat:   true,
	}

	var (
		count int
		mean  float64
		m2    float64
		sumSq float64
	)

	for _, x := range signal {
		if math.IsNaN(x) {
			s.NaNCount++
			continue
		}

		if count == 0 || x < s.Min {
			s.Min = x
		}

		if count == 0 || x > s.Max {
			s.Max = x
		}

		count++
		delta := x - mean
		mean += delta / float64(count)
		m2 += delta * (x - mean)
		sumSq += x * x
	}

	if count == 0 {
		s.DC = math.NaN()
		s.Variance = math.NaN()
		s.StdDev = math.NaN()

		return s
	}

	nf := float64(count)
	s.DC = mean
	s.RMS = math.Sqrt(sumSq / nf)
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.Variance = m2 / nf
	s.StdDev = math.Sqrt(s.Variance)
	s.Flat = s.StdDev <= FlatTolerance

	if s.RMS > 0 {
		s.RMS_dB = 20 * math.Log10(s.RMS)
	}

	return s
}
