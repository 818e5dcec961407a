// Package testutil provides deterministic signals and tolerance helpers for
// tests.
package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// ToneTriplet returns three electrodes sharing a toneHz sine, with amplitudes
// 1, 1.25 and 1.5, each with independent noise of the given amplitude.
func ToneTriplet(sampleRate, seconds int, toneHz, noise float64) [3][]float64 {
	n := sampleRate * seconds

	var out [3][]float64
	for i := range out {
		tone := DeterministicSine(toneHz, float64(sampleRate), 1+0.25*float64(i), n)
		hiss := DeterministicNoise(int64(100+i), noise, n)

		for j := range tone {
			tone[j] += hiss[j]
		}

		out[i] = tone
	}

	return out
}

// NoiseTriplet returns three noise electrodes that share a common component
// with weights 0.3, 0.6 and 0.9.
func NoiseTriplet(seed int64, length int) [3][]float64 {
	common := DeterministicNoise(seed, 1, length)

	var out [3][]float64
	for i := range out {
		own := DeterministicNoise(seed+int64(i)+1, 1, length)
		for j := range own {
			own[j] += float64(i+1) * 0.3 * common[j]
		}

		out[i] = own
	}

	return out
}
