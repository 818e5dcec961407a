// Package linenoise measures how much of a signal's power sits around the
// mains frequency, using a Welch-averaged windowed FFT.
package linenoise

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rdfc/dsp/window"
)

// ErrInvalidInput reports a signal or configuration that cannot be measured.
var ErrInvalidInput = errors.New("linenoise: invalid input")

// Config controls a mains measurement.
type Config struct {
	// SampleRate in Hz.
	SampleRate float64
	// MainsHz is the line frequency, typically 50 or 60.
	MainsHz float64
	// BandHz is the half-width of the band counted as mains power.
	// Zero selects 1 Hz.
	BandHz float64
	// SegmentSize is the FFT length of each Welch segment. Zero selects the
	// smallest power of two covering two seconds.
	SegmentSize int
	// Window tapers each segment. The zero value is Hann.
	Window window.Type
}

// Result reports the averaged power near mains relative to the whole
// spectrum above DC.
type Result struct {
	MainsHz    float64
	BandPower  float64
	TotalPower float64
	// RelativeDB is 10·log10(BandPower / TotalPower).
	RelativeDB float64
	Segments   int
	BinHz      float64
}

// Analyzer performs mains measurements for one configuration. It reuses its
// FFT plan and buffers and is not safe for concurrent use.
type Analyzer struct {
	cfg    Config
	plan   *algofft.Plan[complex128]
	window []float64

	frame  []float64
	in     []complex128
	out    []complex128
	re, im []float64
	power  []float64
	accum  []float64
}

// NewAnalyzer validates cfg and prepares the FFT plan.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if !(cfg.SampleRate > 0) || !(cfg.MainsHz > 0) || cfg.MainsHz >= cfg.SampleRate/2 {
		return nil, fmt.Errorf("%w: mains %g Hz at %g Hz", ErrInvalidInput, cfg.MainsHz, cfg.SampleRate)
	}

	if cfg.BandHz <= 0 {
		cfg.BandHz = 1
	}

	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = nextPowerOf2(int(math.Ceil(2 * cfg.SampleRate)))
	}

	if cfg.SegmentSize < 4 {
		return nil, fmt.Errorf("%w: segment size %d", ErrInvalidInput, cfg.SegmentSize)
	}

	plan, err := algofft.NewPlan64(cfg.SegmentSize)
	if err != nil {
		return nil, fmt.Errorf("linenoise: fft plan: %w", err)
	}

	n := cfg.SegmentSize
	bins := n/2 + 1

	return &Analyzer{
		cfg:    cfg,
		plan:   plan,
		window: window.Generate(cfg.Window, n, window.WithPeriodic()),
		frame:  make([]float64, n),
		in:     make([]complex128, n),
		out:    make([]complex128, n),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
		power:  make([]float64, bins),
		accum:  make([]float64, bins),
	}, nil
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Measure averages the one-sided power spectrum over half-overlapping
// segments of signal and integrates it around the mains frequency.
func (a *Analyzer) Measure(signal []float64) (Result, error) {
	n := a.cfg.SegmentSize
	if len(signal) < n {
		return Result{}, fmt.Errorf("%w: %d samples, need %d", ErrInvalidInput, len(signal), n)
	}

	for i := range a.accum {
		a.accum[i] = 0
	}

	hop := n / 2
	segments := 0

	for start := 0; start+n <= len(signal); start += hop {
		vecmath.MulBlock(a.frame, signal[start:start+n], a.window)

		for i, x := range a.frame {
			a.in[i] = complex(x, 0)
		}

		if err := a.plan.Forward(a.out, a.in); err != nil {
			return Result{}, fmt.Errorf("linenoise: fft: %w", err)
		}

		for i := range a.re {
			a.re[i] = real(a.out[i])
			a.im[i] = imag(a.out[i])
		}

		vecmath.Power(a.power, a.re, a.im)
		vecmath.AddBlockInPlace(a.accum, a.power)

		segments++
	}

	vecmath.ScaleBlockInPlace(a.accum, 1/float64(segments))

	binHz := a.cfg.SampleRate / float64(n)
	lo := int(math.Ceil((a.cfg.MainsHz - a.cfg.BandHz) / binHz))
	hi := int(math.Floor((a.cfg.MainsHz + a.cfg.BandHz) / binHz))

	var band, total float64

	for k := 1; k < len(a.accum); k++ {
		total += a.accum[k]

		if k >= lo && k <= hi {
			band += a.accum[k]
		}
	}

	res := Result{
		MainsHz:    a.cfg.MainsHz,
		BandPower:  band,
		TotalPower: total,
		RelativeDB: math.Inf(-1),
		Segments:   segments,
		BinHz:      binHz,
	}

	switch {
	case total == 0:
		res.RelativeDB = math.NaN()
	case band > 0:
		res.RelativeDB = 10 * math.Log10(band/total)
	}

	return res, nil
}

// Measure is a convenience wrapper building a one-shot Analyzer.
func Measure(signal []float64, cfg Config) (Result, error) {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return Result{}, err
	}

	return a.Measure(signal)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
