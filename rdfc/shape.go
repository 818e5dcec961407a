package rdfc

import "fmt"

// ShapeError describes an input triplet of the wrong size. It unwraps to
// ErrShapeMismatch.
type ShapeError struct {
	Rows int
	// Samples is the per-channel count found; -1 when channels differ.
	Samples         int
	WantSamples     int
	SamplingRate    int
	DurationSeconds int
}

func (e *ShapeError) Error() string {
	return "rdfc: shape mismatch: " + e.detail()
}

// Unwrap makes errors.Is(err, ErrShapeMismatch) hold.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// Message returns the sentence shown to command-line users.
func (e *ShapeError) Message() string {
	if e.Rows != NumChannels {
		return fmt.Sprintf("Expected %d rows in input file. Found %d rows instead.", NumChannels, e.Rows)
	}

	if e.Samples < 0 {
		return "Expected the same number of samples for every electrode in input file."
	}

	return fmt.Sprintf("Expected %d samples per electrode in input file (%s at sampling rate %d). Found %d samples per electrode instead.",
		e.WantSamples, durationText(e.DurationSeconds), e.SamplingRate, e.Samples)
}

func (e *ShapeError) detail() string {
	switch {
	case e.Rows != NumChannels:
		return fmt.Sprintf("%d rows, want %d", e.Rows, NumChannels)
	case e.Samples < 0:
		return "channels differ in length"
	default:
		return fmt.Sprintf("%d samples per channel, want %d", e.Samples, e.WantSamples)
	}
}

func durationText(seconds int) string {
	switch {
	case seconds == 60:
		return "1 minute"
	case seconds > 0 && seconds%60 == 0:
		return fmt.Sprintf("%d minutes", seconds/60)
	case seconds == 1:
		return "1 second"
	default:
		return fmt.Sprintf("%d seconds", seconds)
	}
}

// CheckShape verifies that signals hold cfg.SamplesPerChannel samples on
// every channel.
func CheckShape(signals ChannelSet, cfg Config) error {
	n := signals.Len()
	want := cfg.SamplesPerChannel()

	if n != want {
		return &ShapeError{
			Rows:            NumChannels,
			Samples:         n,
			WantSamples:     want,
			SamplingRate:    cfg.SamplingRate,
			DurationSeconds: cfg.DurationSeconds,
		}
	}

	return nil
}
