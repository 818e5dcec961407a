// Package report renders an rdFC result as the classic console text, YAML
// or JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rdfc/rdfc"
)

// ErrFormat reports an unknown output format.
var ErrFormat = errors.New("report: unknown format")

// Format selects the rendering.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text", "yaml" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// Number is a float that renders NaN as JSON null.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(f)
}

// MarshalYAML implements yaml.Marshaler.
func (n Number) MarshalYAML() (any, error) {
	return float64(n), nil
}

// Order is one pattern column.
type Order struct {
	Order int    `json:"order" yaml:"order"`
	AB    Number `json:"a_b" yaml:"a_b"`
	BC    Number `json:"b_c" yaml:"b_c"`
	AC    Number `json:"a_c" yaml:"a_c"`
}

// Score is the match score against one reference.
type Score struct {
	Reference int    `json:"reference" yaml:"reference"`
	Score     Number `json:"score" yaml:"score"`
}

// Document is the structured form of a report.
type Document struct {
	SamplingRate int          `json:"sampling_rate" yaml:"sampling_rate"`
	NotchHz      int          `json:"notch_hz" yaml:"notch_hz"`
	Pattern      []Order      `json:"pattern" yaml:"pattern"`
	Scores       []Score      `json:"scores" yaml:"scores"`
	BestMatch    int          `json:"best_match,omitempty" yaml:"best_match,omitempty"`
	Degenerate   bool         `json:"degenerate" yaml:"degenerate"`
	Diagnostics  *Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// New builds the document for res. BestMatch is 1-based and omitted when
// every score is NaN.
func New(cfg rdfc.Config, res rdfc.Result) Document {
	doc := Document{
		SamplingRate: cfg.SamplingRate,
		NotchHz:      int(cfg.Notch),
		Pattern:      make([]Order, res.Pattern.Orders()),
		Scores:       make([]Score, len(res.Scores)),
		BestMatch:    res.BestMatch() + 1,
		Degenerate:   res.Degenerate(),
	}

	for o := range doc.Pattern {
		doc.Pattern[o] = Order{
			Order: o + 1,
			AB:    Number(res.Pattern.At(rdfc.PairAB, o)),
			BC:    Number(res.Pattern.At(rdfc.PairBC, o)),
			AC:    Number(res.Pattern.At(rdfc.PairAC, o)),
		}
	}

	for i, s := range res.Scores {
		doc.Scores[i] = Score{Reference: i + 1, Score: Number(s)}
	}

	return doc
}

// Write renders doc in the given format.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatText:
		return WriteText(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// WriteText renders the console report.
func WriteText(w io.Writer, doc Document) error {
	var b strings.Builder

	b.WriteString("rdFC Pattern:\n")

	for _, o := range doc.Pattern {
		fmt.Fprintf(&b, "Order %d: %s %s %s\n", o.Order, fixed(o.AB, 8), fixed(o.BC, 8), fixed(o.AC, 8))
	}

	b.WriteString("\nMatch Scores for rdFC Pattern:\n")

	for _, s := range doc.Scores {
		fmt.Fprintf(&b, "Reference Pattern %d : %s\n", s.Reference, fixed(s.Score, 0))
	}

	if doc.Diagnostics != nil {
		doc.Diagnostics.writeText(&b)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// fixed formats v with four decimals, right-aligned to width, spelling
// non-finite values in lower case.
func fixed(v Number, width int) string {
	f := float64(v)

	var s string

	switch {
	case math.IsNaN(f):
		s = "nan"
	case math.IsInf(f, 1):
		s = "inf"
	case math.IsInf(f, -1):
		s = "-inf"
	default:
		s = fmt.Sprintf("%.4f", f)
	}

	if pad := width - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}

	return s
}
