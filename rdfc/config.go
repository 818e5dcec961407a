package rdfc

import "fmt"

// Defaults of the analysis.
const (
	DefaultOrders          = 5
	DefaultDurationSeconds = 5 * 60
	DefaultNotch           = Notch50
)

// Config describes one analysis setup.
type Config struct {
	// SamplingRate in samples per second; also the rolling window length.
	SamplingRate int `json:"sampling_rate" yaml:"sampling_rate"`
	// Notch is the mains frequency to remove.
	Notch NotchFrequency `json:"notch" yaml:"notch"`
	// Orders is the number of correlation orders in the pattern.
	Orders int `json:"orders" yaml:"orders"`
	// DurationSeconds is the expected epoch length.
	DurationSeconds int `json:"duration_seconds" yaml:"duration_seconds"`
}

// DefaultConfig returns the standard five-minute, five-order setup with a
// 50 Hz notch.
func DefaultConfig(samplingRate int) Config {
	return Config{
		SamplingRate:    samplingRate,
		Notch:           DefaultNotch,
		Orders:          DefaultOrders,
		DurationSeconds: DefaultDurationSeconds,
	}
}

// Validate checks the configuration without designing filters.
func (c Config) Validate() error {
	switch {
	case !c.Notch.Valid():
		return fmt.Errorf("%w: Please specify a notch frequency of 50Hz or 60Hz (got %d)", ErrInvalidConfiguration, c.Notch)
	case c.SamplingRate <= 0:
		return fmt.Errorf("%w: sampling rate %d", ErrInvalidConfiguration, c.SamplingRate)
	case c.Orders < 2:
		return fmt.Errorf("%w: %d orders, need at least 2", ErrInvalidConfiguration, c.Orders)
	case c.DurationSeconds <= 0:
		return fmt.Errorf("%w: duration %d s", ErrInvalidConfiguration, c.DurationSeconds)
	}

	return nil
}

// SamplesPerChannel returns the expected per-channel sample count.
func (c Config) SamplesPerChannel() int {
	return c.SamplingRate * c.DurationSeconds
}
