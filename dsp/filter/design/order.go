package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rdfc/internal/ellipticmath"
)

// EllipticOrder returns the lowest elliptic prototype order whose digital
// bandpass loses no more than rippleDB in the passband wp and attenuates at
// least stopbandDB in the stopbands outside ws. Edges are fractions of the
// Nyquist frequency and must satisfy 0 < ws[0] < wp[0] < wp[1] < ws[1] < 1.
func EllipticOrder(wp, ws [2]float64, rippleDB, stopbandDB float64) (int, error) {
	if !(ws[0] > 0 && ws[0] < wp[0] && wp[0] < wp[1] && wp[1] < ws[1] && ws[1] < 1) {
		return 0, fmt.Errorf("%w: band edges pass=%v stop=%v", ErrInvalidParams, wp, ws)
	}

	if !(rippleDB > 0) || !(stopbandDB > rippleDB) {
		return 0, fmt.Errorf("%w: ripple %g dB, attenuation %g dB", ErrInvalidParams, rippleDB, stopbandDB)
	}

	p0 := math.Tan(math.Pi * wp[0] / 2)
	p1 := math.Tan(math.Pi * wp[1] / 2)

	// Selectivity of the equivalent lowpass: the tighter of the two stopbands.
	nat := math.Inf(1)

	for _, w := range ws {
		s := math.Tan(math.Pi * w / 2)
		nat = math.Min(nat, math.Abs((s*s-p0*p1)/(s*(p0-p1))))
	}

	gstop := math.Pow(10, 0.1*stopbandDB)
	gpass := math.Pow(10, 0.1*rippleDB)

	arg1 := math.Sqrt((gpass - 1) / (gstop - 1))
	arg0 := 1 / nat

	k0, k0p := ellipticmath.EllipK(arg0, ellipticmath.Tol)
	k1, k1p := ellipticmath.EllipK(arg1, ellipticmath.Tol)

	ratio := (k0 * k1p) / (k0p * k1)
	if !finite(ratio) || ratio <= 0 {
		return 0, fmt.Errorf("%w: order estimate %v", ErrDesignFailed, ratio)
	}

	return int(math.Ceil(ratio)), nil
}
