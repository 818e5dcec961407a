package rdfc

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferences(t *testing.T) {
	refs := testReferences(t)

	assert.Equal(t, DefaultOrders, refs.Orders())

	first := refs.Pattern(0)
	assert.Equal(t, 0.9132, first.At(PairAB, 0))
	assert.Equal(t, 0.0695, first.At(PairAC, 4))

	for i := range 3 {
		assert.Len(t, refs.Vector(i), DefaultOrders-1)

		self, err := Score(refs.Vector(i), refs.Vector(i))
		require.NoError(t, err)
		assert.InDelta(t, float64(DefaultOrders-1), self, 1e-12)
	}
}

func TestLoadReferencesFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt": {Data: []byte("0.1 0.2 0.3\n0.4 0.5 0.6\n0.7 0.8 0.9\n")},
		"b.txt": {Data: []byte("0.9 0.5 0.3\n0.8 0.4 0.2\n0.7 0.3 0.1\n")},
		"c.txt": {Data: []byte("# c\n0.1 0.5 0.2\n0.2 0.1 0.3\n0.3 0.6 0.4\n")},
	}

	refs, err := LoadReferencesFS(fsys, [3]string{"a.txt", "b.txt", "c.txt"})
	require.NoError(t, err)
	assert.Equal(t, 3, refs.Orders())
	assert.Equal(t, 0.6, refs.Pattern(2).At(PairAC, 1))
}

func TestLoadReferences_Errors(t *testing.T) {
	dir := t.TempDir()
	paths := ReferencePaths(dir)

	_, err := LoadReferences(paths)
	require.ErrorIs(t, err, ErrReference)
	require.ErrorIs(t, err, os.ErrNotExist)

	grid := []byte("0.1 0.2 0.3\n0.4 0.5 0.6\n0.7 0.8 0.9\n")
	require.NoError(t, os.WriteFile(paths[0], grid, 0o600))
	require.NoError(t, os.WriteFile(paths[1], grid, 0o600))
	require.NoError(t, os.WriteFile(paths[2], []byte("0.1 0.2 0.3\n0.4 0.5 0.6\n"), 0o600))

	_, err = LoadReferences(paths)
	require.ErrorIs(t, err, ErrReference)
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), filepath.Base(paths[2]))

	require.NoError(t, os.WriteFile(paths[2], []byte("0.1 0.2\n0.4 0.5\n0.7 0.8\n"), 0o600))

	_, err = LoadReferences(paths)
	require.ErrorIs(t, err, ErrReference)
	assert.Contains(t, err.Error(), "reference 3 has 2 orders")
}

func TestNewReferenceStore_Copies(t *testing.T) {
	p := PatternMatrix{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}}

	refs, err := NewReferenceStore([3]PatternMatrix{p, p, p})
	require.NoError(t, err)

	p[0][0] = 42
	assert.Equal(t, 0.1, refs.Pattern(0).At(PairAB, 0))

	got := refs.Pattern(1)
	got[1][1] = 42
	assert.Equal(t, 0.5, refs.Pattern(1).At(PairBC, 1))

	_, err = NewReferenceStore([3]PatternMatrix{{{1, 2, 3}}, p, p})
	require.ErrorIs(t, err, ErrReference)
}

func TestReferenceStore_ConcurrentReaders(t *testing.T) {
	refs := testReferences(t)
	query := refs.Vector(2)

	want, err := refs.Scores(query)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][3]float64, 8)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], _ = refs.Scores(query)
		}()
	}

	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestReferencePaths(t *testing.T) {
	got := ReferencePaths("refPatterns")
	assert.Equal(t, filepath.Join("refPatterns", "secondRefPattern.txt"), got[1])
}
