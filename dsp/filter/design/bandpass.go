package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rdfc/dsp/filter/biquad"
)

// BandpassSpec describes a bandpass by its edges in Hz and its tolerances.
type BandpassSpec struct {
	PassLowHz, PassHighHz float64
	StopLowHz, StopHighHz float64

	// RippleDB is the maximum passband loss.
	RippleDB float64
	// AttenuationDB is the minimum stopband attenuation.
	AttenuationDB float64
}

// Bandpass is a designed digital bandpass.
type Bandpass struct {
	// Order is the order of the analog lowpass prototype. The digital
	// filter has twice this order.
	Order    int
	Sections []biquad.Coefficients
}

// Chain returns a fresh processing cascade for the design.
func (b Bandpass) Chain() *biquad.Chain {
	return biquad.NewChain(b.Sections)
}

// EllipticBandpass designs the minimum-order elliptic bandpass meeting spec
// at sampleRate. All edges must lie strictly between 0 Hz and Nyquist.
func EllipticBandpass(spec BandpassSpec, sampleRate float64) (Bandpass, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Bandpass{}, fmt.Errorf("%w: sample rate %g", ErrInvalidParams, sampleRate)
	}

	nyq := sampleRate / 2
	wp := [2]float64{spec.PassLowHz / nyq, spec.PassHighHz / nyq}
	ws := [2]float64{spec.StopLowHz / nyq, spec.StopHighHz / nyq}

	order, err := EllipticOrder(wp, ws, spec.RippleDB, spec.AttenuationDB)
	if err != nil {
		return Bandpass{}, err
	}

	proto, ok := ellipticPrototype(order, spec.RippleDB, spec.AttenuationDB)
	if !ok {
		return Bandpass{}, fmt.Errorf("%w: elliptic prototype of order %d", ErrDesignFailed, order)
	}

	// Pre-warp the passband edges for a bilinear transform at fs = 2, where
	// the Nyquist-normalized edges map directly.
	const fs = 2.0

	w0 := 2 * fs * math.Tan(math.Pi*wp[0]/fs)
	w1 := 2 * fs * math.Tan(math.Pi*wp[1]/fs)

	analog := lowpassToBandpass(proto, math.Sqrt(w0*w1), w1-w0)

	sections, ok := toSections(bilinear(analog, fs))
	if !ok {
		return Bandpass{}, fmt.Errorf("%w: could not factor order %d bandpass", ErrDesignFailed, order)
	}

	for i, s := range sections {
		if !s.Stable() {
			return Bandpass{}, fmt.Errorf("%w: section %d is unstable", ErrDesignFailed, i)
		}
	}

	return Bandpass{Order: order, Sections: sections}, nil
}
