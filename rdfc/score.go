package rdfc

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Score sums the column-wise dot products of two normalized vectors. For
// unit columns each term is a cosine, so the result lies in [-(K-1), K-1].
// NaN in either input propagates.
func Score(query, ref NormalizedVector) (float64, error) {
	if len(query) != len(ref) {
		return 0, fmt.Errorf("%w: %d columns scored against %d", ErrShapeMismatch, len(query), len(ref))
	}

	var sum float64
	for i := range query {
		sum += vecmath.DotProduct(query[i][:], ref[i][:])
	}

	return sum, nil
}
