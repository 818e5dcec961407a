package rdfc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rdfc/internal/testutil"
)

// triplet returns three channels sharing a tone at toneHz plus independent
// noise of the given amplitude.
func triplet(fs, seconds int, toneHz, noise float64) ChannelSet {
	return ChannelSet(testutil.ToneTriplet(fs, seconds, toneHz, noise))
}

// noiseTriplet returns three partially correlated noise channels.
func noiseTriplet(seed int64, n int) ChannelSet {
	return ChannelSet(testutil.NoiseTriplet(seed, n))
}

func testReferences(t *testing.T) *ReferenceStore {
	t.Helper()

	refs, err := LoadReferences(ReferencePaths("testdata/refs"))
	require.NoError(t, err)

	return refs
}

func requireInUnitRange(t *testing.T, p PatternMatrix) {
	t.Helper()

	for o := range p {
		for pair, v := range p[o] {
			require.False(t, math.IsNaN(v), "order %d pair %s is NaN", o, Pair(pair))
			require.GreaterOrEqual(t, v, -1.0, "order %d pair %s", o, Pair(pair))
			require.LessOrEqual(t, v, 1.0, "order %d pair %s", o, Pair(pair))
		}
	}
}
