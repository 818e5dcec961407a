package rdfc

import (
	"fmt"

	"github.com/cwbudde/algo-rdfc/dsp/filter/biquad"
	"github.com/cwbudde/algo-rdfc/dsp/filter/design"
	"github.com/cwbudde/algo-rdfc/dsp/filter/zerophase"
)

// NotchFrequency is the mains frequency removed during conditioning.
type NotchFrequency int

// Supported mains frequencies.
const (
	Notch50 NotchFrequency = 50
	Notch60 NotchFrequency = 60
)

// Valid reports whether n is 50 or 60 Hz.
func (n NotchFrequency) Valid() bool {
	return n == Notch50 || n == Notch60
}

// Conditioning band in Hz and its tolerances.
const (
	PassLowHz         = 0.5
	PassHighHz        = 70.0
	StopLowHz         = 0.01
	StopHighHz        = 90.0
	PassRippleDB      = 0.1
	StopAttenuationDB = 20.0
	NotchQ            = 30.0
)

// EEGBand is the bandpass tolerance scheme applied to every channel.
var EEGBand = design.BandpassSpec{
	PassLowHz:     PassLowHz,
	PassHighHz:    PassHighHz,
	StopLowHz:     StopLowHz,
	StopHighHz:    StopHighHz,
	RippleDB:      PassRippleDB,
	AttenuationDB: StopAttenuationDB,
}

// Conditioner filters channels with the EEG bandpass followed by the mains
// notch, each applied forward and backward. Filters are designed once.
type Conditioner struct {
	samplingRate int
	notchHz      NotchFrequency
	bandpass     design.Bandpass
	notch        []biquad.Coefficients
}

// NewConditioner designs the conditioning filters for samplingRate.
// The rate must put 90 Hz below Nyquist.
func NewConditioner(samplingRate int, notch NotchFrequency) (*Conditioner, error) {
	if !notch.Valid() {
		return nil, fmt.Errorf("%w: Please specify a notch frequency of 50Hz or 60Hz (got %d)", ErrInvalidConfiguration, notch)
	}

	if samplingRate <= 0 {
		return nil, fmt.Errorf("%w: sampling rate %d", ErrInvalidConfiguration, samplingRate)
	}

	fs := float64(samplingRate)

	bp, err := design.EllipticBandpass(EEGBand, fs)
	if err != nil {
		return nil, fmt.Errorf("%w: bandpass at %d Hz: %w", ErrFilterDesign, samplingRate, err)
	}

	n, err := design.Notch(float64(notch), NotchQ, fs)
	if err != nil {
		return nil, fmt.Errorf("%w: %d Hz notch at %d Hz: %w", ErrFilterDesign, notch, samplingRate, err)
	}

	return &Conditioner{
		samplingRate: samplingRate,
		notchHz:      notch,
		bandpass:     bp,
		notch:        []biquad.Coefficients{n},
	}, nil
}

// SamplingRate returns the rate the filters were designed for.
func (c *Conditioner) SamplingRate() int {
	return c.samplingRate
}

// NotchFrequency returns the mains frequency being removed.
func (c *Conditioner) NotchFrequency() NotchFrequency {
	return c.notchHz
}

// Bandpass returns the designed bandpass.
func (c *Conditioner) Bandpass() design.Bandpass {
	return c.bandpass
}

// Notch returns the notch section.
func (c *Conditioner) Notch() biquad.Coefficients {
	return c.notch[0]
}

// MinSamples returns the shortest channel the conditioner accepts.
func (c *Conditioner) MinSamples() int {
	return max(zerophase.PadLength(c.bandpass.Sections), zerophase.PadLength(c.notch)) + 1
}

// ConditionChannel returns the filtered copy of one channel. Channels
// shorter than MinSamples fail with ErrSeriesTooShort.
func (c *Conditioner) ConditionChannel(x []float64) ([]float64, error) {
	if minLen := c.MinSamples(); len(x) < minLen {
		return nil, fmt.Errorf("%w: %d samples, filtering needs at least %d", ErrSeriesTooShort, len(x), minLen)
	}

	y, err := zerophase.Filter(c.bandpass.Sections, x)
	if err != nil {
		return nil, fmt.Errorf("bandpass: %w", err)
	}

	y, err = zerophase.Filter(c.notch, y)
	if err != nil {
		return nil, fmt.Errorf("notch: %w", err)
	}

	return y, nil
}

// Condition filters each channel independently. The input is not modified.
func (c *Conditioner) Condition(signals ChannelSet) (ChannelSet, error) {
	var out ChannelSet

	for i, x := range signals {
		y, err := c.ConditionChannel(x)
		if err != nil {
			return ChannelSet{}, fmt.Errorf("rdfc: channel %c: %w", 'A'+i, err)
		}

		out[i] = y
	}

	return out, nil
}
