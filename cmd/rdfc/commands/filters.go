package commands

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-rdfc/dsp/filter/biquad"
	"github.com/cwbudde/algo-rdfc/rdfc"
)

// settleSeconds bounds the impulse response inspected for settling time.
const settleSeconds = 120

// settleThreshold is the envelope level, relative to the peak, that counts
// as settled.
const settleThreshold = 1e-3

// probeHz are the frequencies at which the filters' responses are listed.
var probeHz = []float64{0.01, 0.1, 0.5, 1, 10, 30, 50, 60, 70, 80, 90}

func newFiltersCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Print the conditioning filters designed for a sampling rate",
		Long: `Print the elliptic bandpass and mains notch used for conditioning: the
prototype order, the biquad sections, and the zero-phase magnitude at
reference frequencies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o := loadOptions(v)

			cond, err := rdfc.NewConditioner(o.SamplingRate, rdfc.NotchFrequency(o.Notch))
			if err != nil {
				return err
			}

			return printFilters(cmd, cond)
		},
	}
}

func printFilters(cmd *cobra.Command, cond *rdfc.Conditioner) error {
	fs := float64(cond.SamplingRate())
	bp := cond.Bandpass()
	notch := cond.Notch()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Sampling rate\t%d Hz\t\n", cond.SamplingRate())
	fmt.Fprintf(w, "Bandpass\t%.2f-%.0f Hz, stop %.2f/%.0f Hz\t\n", rdfc.PassLowHz, rdfc.PassHighHz, rdfc.StopLowHz, rdfc.StopHighHz)
	fmt.Fprintf(w, "Prototype order\t%d (%d sections)\t\n", bp.Order, len(bp.Sections))
	fmt.Fprintf(w, "Notch\t%d Hz, Q %.0f\t\n", cond.NotchFrequency(), rdfc.NotchQ)
	fmt.Fprintf(w, "Min samples\t%d\t\n", cond.MinSamples())
	fmt.Fprintf(w, "Bandpass settles\t%.2f s\t\n", settlingTime(bp.Chain().ImpulseResponse(settleSeconds*cond.SamplingRate()), fs))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Section\tb0\tb1\tb2\ta1\ta2\t")

	for i, s := range bp.Sections {
		fmt.Fprintf(w, "bp %d\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t\n", i+1, s.B0, s.B1, s.B2, s.A1, s.A2)
	}

	fmt.Fprintf(w, "notch\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t\n", notch.B0, notch.B1, notch.B2, notch.A1, notch.A2)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Freq (Hz)\tBandpass (dB)\tNotch (dB)\tZero-phase total (dB)\t")

	for _, f := range probeHz {
		if f >= fs/2 {
			continue
		}

		b := biquad.CascadeMagnitudeDB(bp.Sections, f, fs)
		n := notch.MagnitudeDB(f, fs)

		// Forward-backward filtering squares the magnitude.
		fmt.Fprintf(w, "%g\t%.3f\t%.3f\t%.3f\t\n", f, b, n, 2*(b+n))
	}

	return w.Flush()
}

// settlingTime returns the time after which |ir| stays below
// settleThreshold times its peak.
func settlingTime(ir []float64, sampleRate float64) float64 {
	peak := 0.0
	for _, v := range ir {
		peak = math.Max(peak, math.Abs(v))
	}

	last := 0
	for i, v := range ir {
		if math.Abs(v) > settleThreshold*peak {
			last = i
		}
	}

	return float64(last+1) / sampleRate
}
