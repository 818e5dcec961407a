package design

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-rdfc/dsp/filter/biquad"
)

const (
	realRootTol = 1e-9
	conjPairTol = 1e-4
)

// toSections factors a digital zpk into second-order sections. Pole pairs
// closest to the unit circle are matched first with their nearest zero
// pair and placed last in the cascade. The overall gain is applied to the
// first section.
func toSections(d zpk) ([]biquad.Coefficients, bool) {
	poles := groupRoots(d.p)
	zeros := groupRoots(d.z)

	if len(poles) == 0 || len(zeros) > len(poles) {
		return nil, false
	}

	sort.SliceStable(poles, func(i, j int) bool {
		return circleDistance(poles[i]) < circleDistance(poles[j])
	})

	out := make([]biquad.Coefficients, len(poles))

	for i, pg := range poles {
		var zg []complex128

		if len(zeros) > 0 {
			best := nearestGroup(zeros, pg[0])
			zg = zeros[best]
			zeros = append(zeros[:best], zeros[best+1:]...)
		}

		b1, b2 := quadFromRoots(zg)
		a1, a2 := quadFromRoots(pg)

		out[len(poles)-1-i] = biquad.Coefficients{B0: 1, B1: b1, B2: b2, A1: a1, A2: a2}
	}

	out[0].B0 *= d.k
	out[0].B1 *= d.k
	out[0].B2 *= d.k

	return out, true
}

// groupRoots splits roots into conjugate pairs and pairs of real roots.
// A leftover real root forms a group of one.
func groupRoots(roots []complex128) [][]complex128 {
	if len(roots) == 0 {
		return nil
	}

	sorted := append([]complex128(nil), roots...)
	sort.Slice(sorted, func(i, j int) bool {
		if imag(sorted[i]) != imag(sorted[j]) {
			return imag(sorted[i]) > imag(sorted[j])
		}

		return real(sorted[i]) < real(sorted[j])
	})

	used := make([]bool, len(sorted))
	groups := make([][]complex128, 0, (len(sorted)+1)/2)
	reals := make([]complex128, 0, len(sorted))

	for i, r := range sorted {
		if used[i] {
			continue
		}

		used[i] = true

		if math.Abs(imag(r)) <= realRootTol {
			reals = append(reals, complex(real(r), 0))
			continue
		}

		target := cmplx.Conj(r)
		best := -1
		bestDist := math.MaxFloat64

		for j, rr := range sorted {
			if used[j] {
				continue
			}

			if dist := cmplx.Abs(rr - target); dist < bestDist {
				best, bestDist = j, dist
			}
		}

		if best != -1 && bestDist <= conjPairTol {
			used[best] = true
			groups = append(groups, []complex128{r, cmplx.Conj(r)})
		} else {
			groups = append(groups, []complex128{r})
		}
	}

	sort.Slice(reals, func(i, j int) bool { return real(reals[i]) < real(reals[j]) })

	for i := 0; i+1 < len(reals); i += 2 {
		groups = append(groups, []complex128{reals[i], reals[i+1]})
	}

	if len(reals)%2 == 1 {
		groups = append(groups, []complex128{reals[len(reals)-1]})
	}

	return groups
}

func circleDistance(g []complex128) float64 {
	maxAbs := 0.0
	for _, r := range g {
		maxAbs = math.Max(maxAbs, cmplx.Abs(r))
	}

	return math.Abs(1 - maxAbs)
}

func nearestGroup(groups [][]complex128, target complex128) int {
	best := 0
	bestDist := math.MaxFloat64

	for i, g := range groups {
		for _, r := range g {
			if dist := cmplx.Abs(r - target); dist < bestDist {
				best, bestDist = i, dist
			}
		}
	}

	return best
}

// quadFromRoots expands (1 - r1 z^-1)(1 - r2 z^-1) into its z^-1 and z^-2
// coefficients.
func quadFromRoots(group []complex128) (float64, float64) {
	switch len(group) {
	case 0:
		return 0, 0
	case 1:
		return -real(group[0]), 0
	default:
		r1, r2 := group[0], group[1]
		return -real(r1 + r2), real(r1 * r2)
	}
}
