package rdfc

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Normalize returns the differences of adjacent pattern columns, each scaled
// to unit Euclidean length. A column whose difference is all zeros has no
// direction and comes out as NaN, as does any column touching a NaN.
func Normalize(p PatternMatrix) NormalizedVector {
	if len(p) < 2 {
		return NormalizedVector{}
	}

	v := make(NormalizedVector, len(p)-1)

	for i := range v {
		col := v[i][:]
		for j := range col {
			col[j] = p[i+1][j] - p[i][j]
		}

		norm := math.Sqrt(vecmath.DotProduct(col, col))
		if norm == 0 {
			for j := range col {
				col[j] = math.NaN()
			}

			continue
		}

		vecmath.ScaleBlockInPlace(col, 1/norm)
	}

	return v
}
