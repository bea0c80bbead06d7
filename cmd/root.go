// Package cmd provides the CLI commands for arbeitszeit.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/manav03panchal/arbeitszeit/internal/config"
	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/logging"
	"github.com/manav03panchal/arbeitszeit/internal/metrics"
	"github.com/manav03panchal/arbeitszeit/internal/output"
	"github.com/manav03panchal/arbeitszeit/internal/parser"
	"github.com/manav03panchal/arbeitszeit/internal/runtime"
	"github.com/manav03panchal/arbeitszeit/internal/tui"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagConfig string
)

// Root command flags.
var rootFlagStart string

// ctx is the shared runtime context.
var ctx *runtime.Context

// logFile is the debug log of the interactive calculator, closed after the run.
var logFile io.Closer

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "arbeitszeit",
	Short: "Working time calculator with live countdowns",
	Long: `Arbeitszeit computes when your working day may end: the minimum
(7.6 hours + 30 minute break) and maximum (9 hours + 30 minute break)
working time, starting from when you began work.

Without a subcommand it opens the interactive calculator.

Examples:
  arbeitszeit
  arbeitszeit --start 08:00
  arbeitszeit calc 7:45
  arbeitszeit countdown max --start 08:00`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		format, err := output.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		colorMode, err := output.ParseColorMode(flagColor)
		if err != nil {
			return err
		}

		if err := initLogging(cmd == cmd.Root()); err != nil {
			return err
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		if cmd.Flags().Changed("config") {
			opts.ConfigPath = flagConfig
		}

		ctx, err = runtime.New(opts)
		if err != nil {
			return errors.WithContext(err, "load configuration")
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()

		logging.LogOperation("init",
			"command", cmd.Name(),
			"config", opts.ConfigPath,
			"format", string(format),
		)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if flagDebug {
			logMetrics()
		}
		if logFile != nil {
			err := logFile.Close()
			logFile = nil
			return err
		}
		return nil
	},
	RunE: runCalculator,
}

// initLogging configures the package logger. The interactive calculator
// owns the screen, so its logs go to the debug log file or nowhere.
func initLogging(interactive bool) error {
	switch {
	case interactive && flagDebug:
		path := logging.DebugLogPath()
		f, err := logging.OpenDebugLog(path)
		if err != nil {
			return errors.NewSystemError("cannot open debug log",
				errors.WithContextf(err, "open %s", path))
		}
		logFile = f
		cfg := logging.DebugConfig()
		cfg.Output = f
		logging.Init(cfg)
	case interactive:
		logging.Init(logging.DiscardConfig())
	case flagDebug:
		logging.InitDebug()
	default:
		logging.Init(logging.Config{Level: slog.LevelWarn, Output: os.Stderr})
	}
	return nil
}

// logMetrics writes the counters of this run to the debug log.
func logMetrics() {
	samples, err := metrics.Snapshot(prometheus.DefaultGatherer)
	if err != nil {
		logging.Warn("gather metrics", logging.KeyError, err)
		return
	}
	logging.DebugLog("metrics", metrics.LogArgs(samples)...)
}

// runCalculator opens the interactive calculator.
func runCalculator(cmd *cobra.Command, args []string) error {
	if err := runtime.RequireTerminal(os.Stdout); err != nil {
		return err
	}

	cfg := tui.Config{
		Session:         ctx.NewSession(),
		Clock:           ctx.Clock,
		TickInterval:    ctx.Config.Display.TickInterval,
		TransitionDelay: ctx.Config.Display.TransitionDelay,
	}
	if rootFlagStart != "" {
		start, err := parser.ParseClockTime(rootFlagStart, ctx.Now())
		if err != nil {
			return err
		}
		cfg.Start = &start
	}

	return tui.Run(cfg)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Errors are reported in the selected output format.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var f *output.Formatter
		if ctx != nil {
			f = ctx.Formatter
		} else if flagFormat == string(output.FormatJSON) {
			f = &output.Formatter{Writer: rootCmd.OutOrStdout(), Format: output.FormatJSON}
		}
		runtime.ReportError(f, rootCmd.ErrOrStderr(), err, flagDebug)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath(),
		"Config file path")

	rootCmd.Flags().StringVarP(&rootFlagStart, "start", "s", "",
		"Prefill the start time (e.g. 08:00, 8am, now)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("arbeitszeit %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
