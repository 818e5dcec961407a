// Package commands wires the rdfc command-line interface.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-rdfc/dsp/window"
	"github.com/cwbudde/algo-rdfc/internal/report"
	"github.com/cwbudde/algo-rdfc/internal/textgrid"
	"github.com/cwbudde/algo-rdfc/rdfc"
)

// EnvPrefix prefixes environment variables, e.g. RDFC_SAMPLING_RATE.
const EnvPrefix = "RDFC"

// Flag names, shared with configuration file keys.
const (
	flagConfig       = "config"
	flagInput        = "input"
	flagSamplingRate = "sampling-rate"
	flagNotch        = "notch"
	flagOrders       = "orders"
	flagDuration     = "duration"
	flagRefsDir      = "refs-dir"
	flagRefFirst     = "ref-first"
	flagRefSecond    = "ref-second"
	flagRefThird     = "ref-third"
	flagFormat       = "format"
	flagVerbose      = "verbose"
	flagMainsReport  = "mains-report"
	flagMainsWindow  = "mains-window"
)

// errUsage reports missing or conflicting flags.
var errUsage = errors.New("usage")

// options is the resolved configuration of one invocation.
type options struct {
	Input        string
	SamplingRate int
	Notch        int
	Orders       int
	Duration     int
	RefsDir      string
	RefFiles     [3]string
	Format       string
	Verbose      bool
	MainsReport  bool
	MainsWindow  string
}

func loadOptions(v *viper.Viper) options {
	return options{
		Input:        v.GetString(flagInput),
		SamplingRate: v.GetInt(flagSamplingRate),
		Notch:        v.GetInt(flagNotch),
		Orders:       v.GetInt(flagOrders),
		Duration:     v.GetInt(flagDuration),
		RefsDir:      v.GetString(flagRefsDir),
		RefFiles:     [3]string{v.GetString(flagRefFirst), v.GetString(flagRefSecond), v.GetString(flagRefThird)},
		Format:       v.GetString(flagFormat),
		Verbose:      v.GetBool(flagVerbose),
		MainsReport:  v.GetBool(flagMainsReport),
		MainsWindow:  v.GetString(flagMainsWindow),
	}
}

func (o options) config() rdfc.Config {
	return rdfc.Config{
		SamplingRate:    o.SamplingRate,
		Notch:           rdfc.NotchFrequency(o.Notch),
		Orders:          o.Orders,
		DurationSeconds: o.Duration,
	}
}

// referencePaths returns the explicit reference files when all three are
// given, or the default names inside RefsDir.
func (o options) referencePaths() ([3]string, error) {
	set := 0
	for _, f := range o.RefFiles {
		if f != "" {
			set++
		}
	}

	switch set {
	case 0:
		return rdfc.ReferencePaths(o.RefsDir), nil
	case len(o.RefFiles):
		return o.RefFiles, nil
	default:
		return [3]string{}, fmt.Errorf("%w: --%s, --%s and --%s must be given together",
			errUsage, flagRefFirst, flagRefSecond, flagRefThird)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewRootCmd builds the rdfc command tree with its own configuration state.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "rdfc",
		Short: "Generate the rdFC pattern of an EEG electrode triplet",
		Long: `Generate the rdFC pattern for a 5-minute EEG epoch of an electrode triplet
and compute its match score with each of the three reference patterns.

Prior to pattern generation, the signals are bandpass filtered from 0.5Hz to
70Hz and notch filtered at the given mains frequency.

The input file holds 3 rows of (sampling rate * 300) whitespace-separated samples.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalysis(cmd, loadOptions(v))
		},
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "config file (default $HOME/.rdfc.yaml)")
	pf.Int(flagSamplingRate, 0, "sampling rate of the input signals in Hz")
	pf.Int(flagNotch, 0, "mains frequency to notch out: 50 or 60 (required)")
	pf.BoolP(flagVerbose, "v", false, "log pipeline stages to stderr")

	f := root.Flags()
	f.StringP(flagInput, "i", "", "file containing the EEG epoch of an electrode triplet")
	f.Int(flagOrders, rdfc.DefaultOrders, "number of correlation orders")
	f.Int(flagDuration, rdfc.DefaultDurationSeconds, "expected epoch length in seconds")
	f.String(flagRefsDir, "refPatterns", "directory holding the three reference pattern files")
	f.String(flagRefFirst, "", "first reference pattern file (overrides --refs-dir)")
	f.String(flagRefSecond, "", "second reference pattern file")
	f.String(flagRefThird, "", "third reference pattern file")
	f.StringP(flagFormat, "f", string(report.FormatText), "output format: text, yaml or json")
	f.Bool(flagMainsReport, false, "append per-electrode levels and mains residual")
	f.String(flagMainsWindow, window.TypeHann.String(), "taper for the mains estimate: hann, rectangular, hamming or blackman")

	root.AddCommand(newFiltersCmd(v))

	return root
}

// initConfig layers flags over RDFC_* environment variables over the config
// file.
func initConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgFile := v.GetString(flagConfig)
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}

		cfgFile = filepath.Join(home, ".rdfc.yaml")
		if _, err := os.Stat(cfgFile); err != nil {
			return nil
		}
	}

	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", cfgFile, err)
	}

	return nil
}

func runAnalysis(cmd *cobra.Command, o options) error {
	logger := newLogger(cmd.ErrOrStderr(), o.Verbose)

	if o.Input == "" {
		return fmt.Errorf("%w: --%s is required", errUsage, flagInput)
	}

	format, err := report.ParseFormat(o.Format)
	if err != nil {
		return err
	}

	taper, err := window.ParseType(o.MainsWindow)
	if err != nil {
		return err
	}

	cfg := o.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	paths, err := o.referencePaths()
	if err != nil {
		return err
	}

	refs, err := rdfc.LoadReferences(paths)
	if err != nil {
		return err
	}

	logger.Debug("references loaded", "paths", paths[:], "orders", refs.Orders())

	rows, err := textgrid.ReadFile(o.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	signals, err := rdfc.ChannelSetFromRows(rows)
	if err != nil {
		return err
	}

	if err := rdfc.CheckShape(signals, cfg); err != nil {
		return err
	}

	pipeline, err := rdfc.NewPipeline(cfg, refs, rdfc.WithLogger(logger))
	if err != nil {
		return err
	}

	res, err := pipeline.Run(signals)
	if err != nil {
		return err
	}

	doc := report.New(cfg, res)

	if o.MainsReport {
		doc.Diagnostics, err = report.NewDiagnostics(signals, res.Conditioned, cfg.SamplingRate, cfg.Notch, taper)
		if err != nil {
			return err
		}
	}

	return report.Write(cmd.OutOrStdout(), format, doc)
}

// UserMessage returns the text shown for err on the command line.
func UserMessage(err error) string {
	var shape *rdfc.ShapeError
	if errors.As(err, &shape) {
		return shape.Message()
	}

	return err.Error()
}
