package rdfc

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/cwbudde/algo-rdfc/internal/textgrid"
)

// DefaultReferenceNames are the file names of the three reference patterns
// inside a reference directory.
var DefaultReferenceNames = [3]string{
	"firstRefPattern.txt",
	"secondRefPattern.txt",
	"thirdRefPattern.txt",
}

// ReferenceStore holds the three reference patterns and their normalized
// vectors. It is immutable once built.
type ReferenceStore struct {
	patterns [3]PatternMatrix
	vectors  [3]NormalizedVector
}

// NewReferenceStore copies and normalizes three patterns with the same
// number of orders (at least two).
func NewReferenceStore(patterns [3]PatternMatrix) (*ReferenceStore, error) {
	k := patterns[0].Orders()
	if k < 2 {
		return nil, fmt.Errorf("%w: reference 1 has %d orders, need at least 2", ErrReference, k)
	}

	s := &ReferenceStore{}

	for i, p := range patterns {
		if p.Orders() != k {
			return nil, fmt.Errorf("%w: reference %d has %d orders, reference 1 has %d", ErrReference, i+1, p.Orders(), k)
		}

		s.patterns[i] = append(PatternMatrix(nil), p...)
		s.vectors[i] = Normalize(s.patterns[i])
	}

	return s, nil
}

// LoadReferences reads three reference grids from disk.
func LoadReferences(paths [3]string) (*ReferenceStore, error) {
	var patterns [3]PatternMatrix

	for i, path := range paths {
		rows, err := textgrid.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReference, path, err)
		}

		if patterns[i], err = PatternFromRows(rows); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReference, path, err)
		}
	}

	return NewReferenceStore(patterns)
}

// LoadReferencesFS reads three reference grids from fsys.
func LoadReferencesFS(fsys fs.FS, names [3]string) (*ReferenceStore, error) {
	var patterns [3]PatternMatrix

	for i, name := range names {
		rows, err := textgrid.ReadFS(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReference, name, err)
		}

		if patterns[i], err = PatternFromRows(rows); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReference, name, err)
		}
	}

	return NewReferenceStore(patterns)
}

// ReferencePaths joins DefaultReferenceNames onto dir.
func ReferencePaths(dir string) [3]string {
	var out [3]string
	for i, name := range DefaultReferenceNames {
		out[i] = filepath.Join(dir, name)
	}

	return out
}

// Orders returns the number of orders shared by the references.
func (s *ReferenceStore) Orders() int {
	return s.patterns[0].Orders()
}

// Pattern returns a copy of reference i (0-based).
func (s *ReferenceStore) Pattern(i int) PatternMatrix {
	return append(PatternMatrix(nil), s.patterns[i]...)
}

// Vector returns the normalized vector of reference i (0-based). The
// returned slice must not be modified.
func (s *ReferenceStore) Vector(i int) NormalizedVector {
	return s.vectors[i]
}

// Scores scores query against all three references.
func (s *ReferenceStore) Scores(query NormalizedVector) ([3]float64, error) {
	var out [3]float64

	for i, ref := range s.vectors {
		score, err := Score(query, ref)
		if err != nil {
			return out, fmt.Errorf("reference %d: %w", i+1, err)
		}

		out[i] = score
	}

	return out, nil
}
