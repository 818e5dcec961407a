package textgrid

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Grid(t *testing.T) {
	in := `# three electrodes
1 2.5 -3e2
	4   5 6   # trailing comment

nan inf -0
`

	rows, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []float64{1, 2.5, -300}, rows[0])
	assert.Equal(t, []float64{4, 5, 6}, rows[1])
	assert.True(t, math.IsNaN(rows[2][0]))
	assert.True(t, math.IsInf(rows[2][1], 1))
}

func TestRead_SingleRow(t *testing.T) {
	rows, err := Read(strings.NewReader("0.1 0.2 0.3 0.4"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 4)
}

func TestRead_Empty(t *testing.T) {
	rows, err := Read(strings.NewReader("\n# nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_Ragged(t *testing.T) {
	_, err := Read(strings.NewReader("1 2 3\n4 5\n"))
	require.ErrorIs(t, err, ErrRagged)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRead_Parse(t *testing.T) {
	_, err := Read(strings.NewReader("1 2 x\n"))
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestRead_LongRow(t *testing.T) {
	var sb strings.Builder
	for i := range 256 * 300 {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString("-12.345678")
	}

	rows, err := Read(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 256*300)
}

func TestRead_LineTooLong(t *testing.T) {
	in := "1 2 3\n4 5" + strings.Repeat(" ", 200) + "6\n"

	_, err := read(strings.NewReader(in), 128)
	require.ErrorIs(t, err, ErrLineTooLong)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "128 bytes")

	rows, err := read(strings.NewReader(in), 512)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, rows[1])
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n"), 0o600))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFS(t *testing.T) {
	fsys := fstest.MapFS{"refs/a.txt": {Data: []byte("0.5 0.25\n")}}

	rows, err := ReadFS(fsys, "refs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0.25}}, rows)
}
