package rdfc

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, cfg Config, opts ...Option) *Pipeline {
	t.Helper()

	p, err := NewPipeline(cfg, testReferences(t), opts...)
	require.NoError(t, err)

	return p
}

func TestPipeline_SyntheticTone(t *testing.T) {
	const fs = 256

	p := newTestPipeline(t, DefaultConfig(fs))

	res, err := p.Run(triplet(fs, DefaultDurationSeconds, 10, 0.1))
	require.NoError(t, err)

	require.Equal(t, DefaultOrders, res.Pattern.Orders())
	require.Equal(t, DefaultOrders-1, res.Vector.Columns())

	for pair := range NumChannels {
		r := res.Pattern.At(Pair(pair), 0)
		assert.GreaterOrEqual(t, r, 0.9, "pair %s", Pair(pair))
		assert.LessOrEqual(t, r, 1.0, "pair %s", Pair(pair))
	}

	requireInUnitRange(t, res.Pattern)
	assert.False(t, res.Degenerate())

	for i, s := range res.Scores {
		assert.LessOrEqual(t, math.Abs(s), float64(DefaultOrders-1), "reference %d", i+1)
	}

	assert.GreaterOrEqual(t, res.BestMatch(), 0)
	assert.Len(t, res.Conditioned[0], fs*DefaultDurationSeconds)
}

func TestPipeline_Deterministic(t *testing.T) {
	cfg := DefaultConfig(200)
	cfg.DurationSeconds = 30
	cfg.Notch = Notch60

	p := newTestPipeline(t, cfg)
	in := noiseTriplet(12, cfg.SamplesPerChannel())

	var wg sync.WaitGroup

	results := make([]Result, 4)
	errs := make([]error, 4)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], errs[i] = p.Run(in)
		}()
	}

	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].Pattern, results[i].Pattern)
		assert.Equal(t, results[0].Scores, results[i].Scores)
	}
}

func TestPipeline_ShapeMismatchBeforeFiltering(t *testing.T) {
	var logs bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := newTestPipeline(t, DefaultConfig(256), WithLogger(logger))

	_, err := ChannelSetFromRows([][]float64{make([]float64, 256*300), make([]float64, 256*300)})
	require.ErrorIs(t, err, ErrShapeMismatch)

	var shape *ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "Expected 3 rows in input file. Found 2 rows instead.", shape.Message())

	short := ChannelSet{make([]float64, 1000), make([]float64, 1000), make([]float64, 1000)}

	_, err = p.Run(short)
	require.ErrorIs(t, err, ErrShapeMismatch)
	require.ErrorAs(t, err, &shape)
	assert.Equal(t,
		"Expected 76800 samples per electrode in input file (5 minutes at sampling rate 256). Found 1000 samples per electrode instead.",
		shape.Message())

	ragged := ChannelSet{make([]float64, 76800), make([]float64, 76800), make([]float64, 76799)}

	_, err = p.Run(ragged)
	require.ErrorIs(t, err, ErrShapeMismatch)

	assert.NotContains(t, logs.String(), "conditioning done")
}

func TestNewPipeline_Validation(t *testing.T) {
	refs := testReferences(t)

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"notch", Config{SamplingRate: 256, Notch: 55, Orders: 5, DurationSeconds: 300}, ErrInvalidConfiguration},
		{"rate", Config{SamplingRate: 0, Notch: 50, Orders: 5, DurationSeconds: 300}, ErrInvalidConfiguration},
		{"orders", Config{SamplingRate: 256, Notch: 50, Orders: 1, DurationSeconds: 300}, ErrInvalidConfiguration},
		{"reference orders", Config{SamplingRate: 256, Notch: 50, Orders: 4, DurationSeconds: 300}, ErrInvalidConfiguration},
		{"duration", Config{SamplingRate: 256, Notch: 50, Orders: 5}, ErrInvalidConfiguration},
		{"nyquist", Config{SamplingRate: 160, Notch: 60, Orders: 5, DurationSeconds: 300}, ErrFilterDesign},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPipeline(tc.cfg, refs)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := NewPipeline(DefaultConfig(256), nil)
	require.ErrorIs(t, err, ErrReference)
}

func TestPipeline_DegenerateInput(t *testing.T) {
	cfg := DefaultConfig(200)
	cfg.DurationSeconds = 20

	p := newTestPipeline(t, cfg)

	flat := make([]float64, cfg.SamplesPerChannel())
	in := noiseTriplet(5, cfg.SamplesPerChannel())
	in[1] = flat

	res, err := p.Run(in)
	require.NoError(t, err)
	assert.True(t, res.Degenerate())
	assert.Equal(t, -1, res.BestMatch())
	assert.True(t, math.IsNaN(res.Pattern.At(PairAB, 0)))
}

func TestShapeError_Unwrap(t *testing.T) {
	err := error(&ShapeError{Rows: 3, Samples: 10, WantSamples: 6000, SamplingRate: 200, DurationSeconds: 30})

	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Equal(t, "rdfc: shape mismatch: 10 samples per channel, want 6000", err.Error())

	var shape *ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Contains(t, shape.Message(), "(30 seconds at sampling rate 200)")
}

func TestResult_BestMatch(t *testing.T) {
	r := Result{Scores: [3]float64{0.5, math.NaN(), 2.5}}
	assert.Equal(t, 2, r.BestMatch())
	assert.True(t, r.Degenerate())
}
