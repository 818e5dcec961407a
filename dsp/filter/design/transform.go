package design

import "math/cmplx"

// lowpassToBandpass maps an analog lowpass prototype with unit cutoff to a
// bandpass centred on wo (rad/s) with bandwidth bw (rad/s).
func lowpassToBandpass(a zpk, wo, bw float64) zpk {
	degree := len(a.p) - len(a.z)
	wo2 := complex(wo*wo, 0)
	half := complex(bw/2, 0)

	split := func(roots []complex128, extra int) []complex128 {
		out := make([]complex128, 0, 2*len(roots)+extra)

		for _, r := range roots {
			scaled := r * half
			d := cmplx.Sqrt(scaled*scaled - wo2)
			out = append(out, scaled+d, scaled-d)
		}

		for range extra {
			out = append(out, 0)
		}

		return out
	}

	k := a.k
	for range degree {
		k *= bw
	}

	return zpk{z: split(a.z, degree), p: split(a.p, 0), k: k}
}

// bilinear maps an analog zpk to the z-plane at sample rate fs.
// Zeros at infinity land on z = -1.
func bilinear(a zpk, fs float64) zpk {
	degree := len(a.p) - len(a.z)
	fs2 := complex(2*fs, 0)

	num := complex(1, 0)
	z := make([]complex128, 0, len(a.z)+degree)

	for _, r := range a.z {
		z = append(z, (fs2+r)/(fs2-r))
		num *= fs2 - r
	}

	for range degree {
		z = append(z, -1)
	}

	den := complex(1, 0)
	p := make([]complex128, len(a.p))

	for i, r := range a.p {
		p[i] = (fs2 + r) / (fs2 - r)
		den *= fs2 - r
	}

	return zpk{z: z, p: p, k: a.k * real(num/den)}
}
