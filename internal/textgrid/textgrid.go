// Package textgrid reads whitespace-delimited numeric grids: one row per
// line, blank lines and '#' comments ignored.
package textgrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrRagged reports rows with differing column counts.
	ErrRagged = errors.New("textgrid: ragged rows")
	// ErrParse reports a token that is not a number.
	ErrParse = errors.New("textgrid: invalid number")
	// ErrLineTooLong reports a row longer than MaxLine bytes.
	ErrLineTooLong = errors.New("textgrid: line too long")
)

// MaxLine bounds a single row in bytes. Five minutes at 10 kHz with
// 20-character tokens is about 60 MiB; longer rows fail with ErrLineTooLong.
const MaxLine = 256 << 20

// Read parses a grid from r. Tokens accept the forms of strconv.ParseFloat,
// including "nan" and "inf".
func Read(r io.Reader) ([][]float64, error) {
	return read(r, MaxLine)
}

func read(r io.Reader, maxLine int) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)

	var (
		rows   [][]float64
		lineNo int
	)

	for sc.Scan() {
		lineNo++

		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d values, want %d", ErrRagged, lineNo, len(fields), len(rows[0]))
		}

		row := make([]float64, len(fields))

		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrParse, lineNo, i+1, f)
			}

			row[i] = v
		}

		rows = append(rows, row)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, lineNo+1, maxLine)
		}

		return nil, fmt.Errorf("textgrid: read: %w", err)
	}

	return rows, nil
}

// ReadFile parses the grid stored at path.
func ReadFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// ReadFS parses the grid stored under name in fsys.
func ReadFS(fsys fs.FS, name string) ([][]float64, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
