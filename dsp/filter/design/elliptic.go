package design

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-rdfc/internal/ellipticmath"
)

const ellipticEpsilon = 2.220446049250313e-16

// zpk is an analog or digital transfer function in zero/pole/gain form.
type zpk struct {
	z, p []complex128
	k    float64
}

// ellipticPrototype returns the analog elliptic lowpass prototype with its
// passband edge at 1 rad/s, rippleDB of passband ripple and stopbandDB of
// minimum stopband attenuation.
//
//nolint:funlen,cyclop
func ellipticPrototype(order int, rippleDB, stopbandDB float64) (zpk, bool) {
	if order <= 0 || rippleDB <= 0 || stopbandDB <= rippleDB {
		return zpk{}, false
	}

	epsSq := math.Expm1(math.Ln10 * rippleDB / 10)
	stopSq := math.Expm1(math.Ln10 * stopbandDB / 10)

	ck1Sq := epsSq / stopSq
	if !(ck1Sq > 0 && ck1Sq < 1) {
		return zpk{}, false
	}

	if order == 1 {
		p := -math.Sqrt(1 / epsSq)
		return zpk{p: []complex128{complex(p, 0)}, k: -p}, true
	}

	tol := ellipticmath.Tol

	m := ellipticmath.Degree(order, ck1Sq, tol)
	if !(m > 0 && m < 1) {
		return zpk{}, false
	}

	kmod := math.Sqrt(m)
	capK, _ := ellipticmath.EllipK(kmod, tol)
	k1K, _ := ellipticmath.EllipK(math.Sqrt(ck1Sq), tol)

	if !finite(capK) || !finite(k1K) || capK == 0 || k1K == 0 {
		return zpk{}, false
	}

	half := (order + 1) / 2
	sn := make([]float64, 0, half)
	cn := make([]float64, 0, half)
	dn := make([]float64, 0, half)

	var zeros []complex128

	for j := 1 - order%2; j < order; j += 2 {
		s, c, d, ok := ellipticmath.Jacobi(float64(j)*capK/float64(order), kmod, tol)
		if !ok {
			return zpk{}, false
		}

		sn = append(sn, s)
		cn = append(cn, c)
		dn = append(dn, d)

		if math.Abs(s) > ellipticEpsilon {
			z := complex(0, 1/(kmod*s))
			zeros = append(zeros, z, cmplx.Conj(z))
		}
	}

	r := ellipticmath.ArcSC1(1/math.Sqrt(epsSq), ck1Sq)
	if !(r > 0) || !finite(r) {
		return zpk{}, false
	}

	v0 := capK * r / (float64(order) * k1K)

	sv, cv, dv, ok := ellipticmath.Jacobi(v0, math.Sqrt(1-m), tol)
	if !ok {
		return zpk{}, false
	}

	base := make([]complex128, len(sn))

	for i := range sn {
		den := 1 - (dn[i]*sv)*(dn[i]*sv)
		if math.Abs(den) <= ellipticEpsilon {
			return zpk{}, false
		}

		base[i] = -complex(cn[i]*dn[i]*sv*cv, sn[i]*dv) / complex(den, 0)
	}

	poles := append(make([]complex128, 0, order), base...)

	if order%2 == 1 {
		// The real pole of an odd order is not mirrored.
		norm := 0.0
		for _, p := range base {
			norm += real(p * cmplx.Conj(p))
		}

		thr := ellipticEpsilon * math.Sqrt(norm)

		for _, p := range base {
			if math.Abs(imag(p)) > thr {
				poles = append(poles, cmplx.Conj(p))
			}
		}
	} else {
		for _, p := range base {
			poles = append(poles, cmplx.Conj(p))
		}
	}

	gain := real(prodNeg(poles) / prodNeg(zeros))
	if order%2 == 0 {
		gain /= math.Sqrt(1 + epsSq)
	}

	if gain == 0 || !finite(gain) {
		return zpk{}, false
	}

	return zpk{z: zeros, p: poles, k: gain}, true
}

func prodNeg(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= -x
	}

	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
