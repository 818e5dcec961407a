package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rdfc/dsp/filter/biquad"
)

// Notch returns a second-order band-stop with a null at freqHz and a -3 dB
// bandwidth of freqHz/q. The gain is unity at DC and Nyquist.
func Notch(freqHz, q, sampleRate float64) (biquad.Coefficients, error) {
	if !(sampleRate > 0) || !(q > 0) {
		return biquad.Coefficients{}, fmt.Errorf("%w: notch q=%g fs=%g", ErrInvalidParams, q, sampleRate)
	}

	w0 := 2 * freqHz / sampleRate
	if !(w0 > 0 && w0 < 1) {
		return biquad.Coefficients{}, fmt.Errorf("%w: notch at %g Hz outside (0, %g)", ErrInvalidParams, freqHz, sampleRate/2)
	}

	bw := math.Pi * w0 / q
	w0 *= math.Pi

	gain := 1 / (1 + math.Tan(bw/2))
	c := -2 * gain * math.Cos(w0)

	return biquad.Coefficients{
		B0: gain, B1: c, B2: gain,
		A1: c, A2: 2*gain - 1,
	}, nil
}
