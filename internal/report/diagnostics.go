package report

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-rdfc/dsp/window"
	"github.com/cwbudde/algo-rdfc/measure/linenoise"
	"github.com/cwbudde/algo-rdfc/rdfc"
	"github.com/cwbudde/algo-rdfc/stats/channel"
)

// Diagnostics summarizes each channel before and after conditioning.
type Diagnostics struct {
	MainsHz  int       `json:"mains_hz" yaml:"mains_hz"`
	// Window names the taper of the spectral estimate.
	Window   string    `json:"window" yaml:"window"`
	Channels []Channel `json:"channels" yaml:"channels"`
}

// Channel holds per-electrode levels and the share of power near mains.
type Channel struct {
	Name string `json:"name" yaml:"name"`
	DC   Number `json:"dc" yaml:"dc"`
	RMS  Number `json:"rms" yaml:"rms"`
	Flat bool   `json:"flat" yaml:"flat"`
	// MainsRawDB and MainsDB are the mains share of total power in dB
	// before and after conditioning.
	MainsRawDB Number `json:"mains_raw_db" yaml:"mains_raw_db"`
	MainsDB    Number `json:"mains_db" yaml:"mains_db"`
}

// NewDiagnostics measures raw and conditioned channels at samplingRate,
// tapering each spectral segment with taper.
func NewDiagnostics(raw, conditioned rdfc.ChannelSet, samplingRate int, mains rdfc.NotchFrequency, taper window.Type) (*Diagnostics, error) {
	a, err := linenoise.NewAnalyzer(linenoise.Config{
		SampleRate: float64(samplingRate),
		MainsHz:    float64(mains),
		Window:     taper,
	})
	if err != nil {
		return nil, fmt.Errorf("report: mains analyzer: %w", err)
	}

	d := &Diagnostics{
		MainsHz:  int(mains),
		Window:   taper.String(),
		Channels: make([]Channel, rdfc.NumChannels),
	}

	for i := range raw {
		before, err := a.Measure(raw[i])
		if err != nil {
			return nil, fmt.Errorf("report: channel %c: %w", 'A'+i, err)
		}

		after, err := a.Measure(conditioned[i])
		if err != nil {
			return nil, fmt.Errorf("report: channel %c: %w", 'A'+i, err)
		}

		s := channel.Summarize(raw[i])

		d.Channels[i] = Channel{
			Name:       string(rune('A' + i)),
			DC:         Number(s.DC),
			RMS:        Number(s.RMS),
			Flat:       s.Flat,
			MainsRawDB: Number(before.RelativeDB),
			MainsDB:    Number(after.RelativeDB),
		}
	}

	return d, nil
}

func (d *Diagnostics) writeText(b *strings.Builder) {
	fmt.Fprintf(b, "\nChannel Diagnostics (mains %d Hz, %s window):\n", d.MainsHz, d.Window)

	for _, c := range d.Channels {
		flat := ""
		if c.Flat {
			flat = "  FLAT"
		}

		fmt.Fprintf(b, "Electrode %s : dc %s rms %s mains %s dB -> %s dB%s\n",
			c.Name, fixed(c.DC, 10), fixed(c.RMS, 10), fixed(c.MainsRawDB, 9), fixed(c.MainsDB, 9), flat)
	}
}
