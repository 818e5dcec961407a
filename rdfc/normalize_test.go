package rdfc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_UnitColumns(t *testing.T) {
	p := PatternMatrix{
		{0.9, 0.8, 0.7},
		{0.5, 0.6, 0.1},
		{0.2, 0.2, 0.2},
		{0.25, -0.1, 0.3},
		{0.0, 0.0, 0.05},
	}

	v := Normalize(p)
	require.Equal(t, p.Orders()-1, v.Columns())

	for i, col := range v {
		norm := math.Sqrt(col[0]*col[0] + col[1]*col[1] + col[2]*col[2])
		assert.InDelta(t, 1.0, norm, 1e-12, "column %d", i)

		// Same direction as the raw difference.
		diff := [3]float64{p[i+1][0] - p[i][0], p[i+1][1] - p[i][1], p[i+1][2] - p[i][2]}
		dot := diff[0]*col[0] + diff[1]*col[1] + diff[2]*col[2]
		assert.Greater(t, dot, 0.0, "column %d", i)
	}
}

func TestNormalize_KnownColumn(t *testing.T) {
	v := Normalize(PatternMatrix{{0, 0, 0}, {3, 0, 4}})

	require.Len(t, v, 1)
	assert.InDelta(t, 0.6, v[0][0], 1e-15)
	assert.InDelta(t, 0.0, v[0][1], 1e-15)
	assert.InDelta(t, 0.8, v[0][2], 1e-15)
}

func TestNormalize_RepeatedColumnIsNaN(t *testing.T) {
	v := Normalize(PatternMatrix{{0.5, 0.4, 0.3}, {0.5, 0.4, 0.3}, {0.1, 0.1, 0.1}})

	require.Len(t, v, 2)

	for _, x := range v[0] {
		assert.True(t, math.IsNaN(x))
	}

	for _, x := range v[1] {
		assert.False(t, math.IsNaN(x))
	}
}

func TestNormalize_NaNPropagates(t *testing.T) {
	v := Normalize(PatternMatrix{{0.5, math.NaN(), 0.3}, {0.1, 0.2, 0.3}})

	for _, x := range v[0] {
		assert.True(t, math.IsNaN(x))
	}
}

func TestNormalize_TooFewOrders(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize(PatternMatrix{{1, 2, 3}}))
}

func TestNormalize_InputUntouched(t *testing.T) {
	p := PatternMatrix{{0.1, 0.2, 0.3}, {0.3, 0.2, 0.1}}
	orig := append(PatternMatrix(nil), p...)

	Normalize(p)
	assert.Equal(t, orig, p)
}
