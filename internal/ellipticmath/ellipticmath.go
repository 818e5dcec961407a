// Package ellipticmath implements the complete elliptic integral of the first
// kind and the Jacobi elliptic functions needed to place the poles and zeros
// of an elliptic (Cauer) analog prototype.
//
// All functions take the modulus k (not the parameter m = k²) unless the
// argument is named m.
package ellipticmath

import (
	"math"
	"math/cmplx"
)

// Tol is the convergence threshold used by the filter designers.
const Tol = 2.2e-16

const (
	kmin         = 1e-6
	arcSNMaxIter = 10
	degreeTerms  = 7
)

// Landen returns the descending Landen sequence of moduli for k, stopping
// once a term drops below tol.
func Landen(k, tol float64) []float64 {
	if k == 0 || k == 1 {
		return []float64{k}
	}

	var v []float64
	for k > tol {
		t := k / (1 + math.Sqrt((1-k)*(1+k)))
		k = t * t
		v = append(v, k)
	}

	return v
}

func landenK(v []float64) float64 {
	prod := 1.0
	for _, x := range v {
		prod *= 1 + x
	}

	return prod * math.Pi / 2
}

// EllipK returns K(k) and the complementary K'(k) = K(sqrt(1-k²)).
// Near the singular ends the logarithmic asymptotes are used.
func EllipK(k, tol float64) (float64, float64) {
	kmax := math.Sqrt(1 - kmin*kmin)

	var K, Kp float64

	switch {
	case k == 1:
		K = math.Inf(1)
	case k > kmax:
		kp := math.Sqrt((1 - k) * (1 + k))
		l := -math.Log(kp / 4)
		K = l + (l-1)*kp*kp/4
	default:
		K = landenK(Landen(k, tol))
	}

	switch {
	case k == 0:
		Kp = math.Inf(1)
	case k < kmin:
		l := -math.Log(k / 4)
		Kp = l + (l-1)*k*k/4
	default:
		Kp = landenK(Landen(math.Sqrt((1-k)*(1+k)), tol))
	}

	return K, Kp
}

// SN evaluates sn(u·K, k), with u expressed in quarter periods.
func SN(u, k, tol float64) float64 {
	v := Landen(k, tol)
	w := math.Sin(u * math.Pi / 2)

	for i := len(v) - 1; i >= 0; i-- {
		w = (1 + v[i]) * w / (1 + v[i]*w*w)
	}

	return w
}

// CD evaluates cd(u·K, k), with u expressed in quarter periods.
func CD(u, k, tol float64) float64 {
	v := Landen(k, tol)
	w := math.Cos(u * math.Pi / 2)

	for i := len(v) - 1; i >= 0; i-- {
		w = (1 + v[i]) * w / (1 + v[i]*w*w)
	}

	return w
}

// Jacobi returns sn, cn and dn at the absolute argument u for modulus k.
// ok is false when k is outside [0, 1) or the evaluation is not finite.
func Jacobi(u, k, tol float64) (sn, cn, dn float64, ok bool) {
	if !(k >= 0 && k < 1) {
		return 0, 0, 0, false
	}

	K, _ := EllipK(k, tol)
	if K == 0 || math.IsNaN(K) || math.IsInf(K, 0) {
		return 0, 0, 0, false
	}

	un := u / K

	sn = SN(un, k, tol)
	if math.IsNaN(sn) || math.IsInf(sn, 0) {
		return 0, 0, 0, false
	}

	dn2 := 1 - k*k*sn*sn
	if dn2 < -1e-12 {
		return 0, 0, 0, false
	}

	dn = math.Sqrt(math.Max(dn2, 0))
	cn = CD(un, k, tol) * dn

	return sn, cn, dn, true
}

// ArcSN returns the inverse Jacobi sn of a complex argument for parameter m.
func ArcSN(w complex128, m float64) complex128 {
	if m < 0 || m > 1 {
		return cmplx.NaN()
	}

	k := complex(math.Sqrt(m), 0)
	if real(k) == 1 {
		return cmplx.Atanh(w)
	}

	ks := []complex128{k}
	for range arcSNMaxIter - 1 {
		kn := ks[len(ks)-1]
		if kn == 0 {
			break
		}

		kp := complement(kn)
		ks = append(ks, (1-kp)/(1+kp))
	}

	K := math.Pi / 2
	for _, kn := range ks[1:] {
		K *= real(1 + kn)
	}

	wn := w
	for i := range len(ks) - 1 {
		den := (1 + ks[i+1]) * (1 + complement(ks[i]*wn))
		if den == 0 {
			return cmplx.NaN()
		}

		wn = 2 * wn / den
	}

	return complex(K, 0) * (2 / math.Pi) * cmplx.Asin(wn)
}

// ArcSC1 solves sc(u, sqrt(1-m)) = w for real u, which is the imaginary part
// of ArcSN(jw, m). It returns NaN when the result is not purely imaginary.
func ArcSC1(w, m float64) float64 {
	z := ArcSN(complex(0, w), m)
	if math.Abs(real(z)) > 1e-7*math.Max(1, math.Abs(imag(z))) {
		return math.NaN()
	}

	return imag(z)
}

func complement(k complex128) complex128 {
	return cmplx.Sqrt((1 - k) * (1 + k))
}

// Degree solves the degree equation n·K'(m)/K(m) = K'(m1)/K(m1) for the
// parameter m using the nome series. Both m1 and the result are parameters.
func Degree(n int, m1, tol float64) float64 {
	if n <= 0 || !(m1 > 0 && m1 < 1) {
		return math.NaN()
	}

	K1, K1p := EllipK(math.Sqrt(m1), tol)
	if !(K1 > 0 && K1p > 0) || math.IsInf(K1, 0) || math.IsInf(K1p, 0) {
		return math.NaN()
	}

	q := math.Pow(math.Exp(-math.Pi*K1p/K1), 1/float64(n))

	num := 0.0
	for i := range degreeTerms {
		num += math.Pow(q, float64(i*(i+1)))
	}

	den := 1.0
	for i := 1; i < degreeTerms; i++ {
		den += 2 * math.Pow(q, float64(i*i))
	}

	return 16 * q * math.Pow(num/den, 4)
}
