package rdfc

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Result is the outcome of one pipeline run.
type Result struct {
	Pattern PatternMatrix    `json:"pattern"`
	Vector  NormalizedVector `json:"vector"`
	Scores  [3]float64       `json:"scores"`

	// Conditioned holds the filtered channels.
	Conditioned ChannelSet `json:"-"`
}

// Degenerate reports whether any score is NaN, which happens when a pattern
// column repeats or a correlation was undefined.
func (r Result) Degenerate() bool {
	for _, s := range r.Scores {
		if math.IsNaN(s) {
			return true
		}
	}

	return false
}

// BestMatch returns the 0-based index of the highest score, or -1 if all
// scores are NaN.
func (r Result) BestMatch() int {
	best := -1
	for i, s := range r.Scores {
		if math.IsNaN(s) {
			continue
		}

		if best < 0 || s > r.Scores[best] {
			best = i
		}
	}

	return best
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for per-stage debug records.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// Pipeline runs conditioning, pattern extraction, normalization and scoring
// for one configuration and reference set.
type Pipeline struct {
	cfg  Config
	refs *ReferenceStore
	cond *Conditioner
	log  *slog.Logger
}

// NewPipeline validates cfg against refs and designs the filters.
func NewPipeline(cfg Config, refs *ReferenceStore, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if refs == nil {
		return nil, fmt.Errorf("%w: no reference patterns", ErrReference)
	}

	if refs.Orders() != cfg.Orders {
		return nil, fmt.Errorf("%w: references have %d orders, configuration asks for %d",
			ErrInvalidConfiguration, refs.Orders(), cfg.Orders)
	}

	p := &Pipeline{
		cfg:  cfg,
		refs: refs,
		log:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(p)
	}

	cond, err := NewConditioner(cfg.SamplingRate, cfg.Notch)
	if err != nil {
		return nil, err
	}

	p.cond = cond

	p.log.Debug("filters designed",
		"sampling_rate", cfg.SamplingRate,
		"bandpass_order", cond.Bandpass().Order,
		"sections", len(cond.Bandpass().Sections),
		"notch_hz", int(cfg.Notch))

	return p, nil
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Conditioner returns the conditioning stage.
func (p *Pipeline) Conditioner() *Conditioner {
	return p.cond
}

// References returns the reference store.
func (p *Pipeline) References() *ReferenceStore {
	return p.refs
}

// Run analyses one triplet. The input is not modified.
func (p *Pipeline) Run(signals ChannelSet) (Result, error) {
	if err := CheckShape(signals, p.cfg); err != nil {
		return Result{}, err
	}

	start := time.Now()

	conditioned, err := p.cond.Condition(signals)
	if err != nil {
		return Result{}, err
	}

	p.log.Debug("conditioning done", "samples", signals.Len(), "elapsed", time.Since(start))

	start = time.Now()

	pattern, err := BuildPattern(conditioned, p.cfg.SamplingRate, p.cfg.Orders)
	if err != nil {
		return Result{}, err
	}

	p.log.Debug("pattern built", "orders", pattern.Orders(), "elapsed", time.Since(start))

	vec := Normalize(pattern)

	scores, err := p.refs.Scores(vec)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Pattern:     pattern,
		Vector:      vec,
		Scores:      scores,
		Conditioned: conditioned,
	}

	if res.Degenerate() {
		p.log.Warn("degenerate pattern, scores are undefined", "scores", scores)
	} else {
		p.log.Debug("scored", "scores", scores, "best", res.BestMatch()+1)
	}

	return res, nil
}
