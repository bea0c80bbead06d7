package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/logging"
	"github.com/manav03panchal/arbeitszeit/internal/model"
	"github.com/manav03panchal/arbeitszeit/internal/parser"
	"github.com/manav03panchal/arbeitszeit/internal/runtime"
	"github.com/manav03panchal/arbeitszeit/internal/timer"
)

// Countdown command flags.
var (
	countdownFlagStart string
	countdownFlagOnce  bool
)

// countdownCmd runs a live countdown without the interactive screen.
var countdownCmd = &cobra.Command{
	Use:     "countdown <min|max> --start <start>",
	Aliases: []string{"cd", "until"},
	Short:   "Count down to the minimum or maximum end of work",
	Long: `Run a live countdown to one end of the working day.

On a terminal the countdown redraws in place; otherwise it prints one line
per second. It exits when the end time is reached or on Ctrl+C.

Examples:
  arbeitszeit countdown max --start 08:00
  arbeitszeit countdown min --start 7:45 --once
  arbeitszeit countdown min --start 8am --format json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"min\tminimum working time", "max\tmaximum working time"},
	RunE:      runCountdown,
}

func init() {
	countdownCmd.Flags().StringVarP(&countdownFlagStart, "start", "s", "",
		"Start of work (e.g. 08:00, 8am, now)")
	countdownCmd.Flags().BoolVar(&countdownFlagOnce, "once", false,
		"Print the remaining time once and exit")

	rootCmd.AddCommand(countdownCmd)
}

func runCountdown(cmd *cobra.Command, args []string) error {
	kind, err := parser.ParseThresholdKind(args[0])
	if err != nil {
		return err
	}
	if countdownFlagStart == "" {
		return errors.NewUserErrorWithField("start", "",
			errors.ErrNoStartTime.Error(),
			"Pass the start of work with --start, e.g. --start 08:00",
		)
	}

	now := ctx.Now()
	start, err := parser.ParseClockTime(countdownFlagStart, now)
	if err != nil {
		return err
	}

	s := ctx.NewSession()
	s.EndTransition(s.SetStart(start, now))
	if projection, ok := s.Projection(); ok {
		ctx.Debugf("countdown: %s from %s toward %s", kind,
			projection.StartAt.Format(time.RFC3339), projection.TargetAt(kind).Format(time.RFC3339))
	}

	sched := ctx.NewScheduler()
	defer sched.Close()

	out := cmd.OutOrStdout()
	display := timer.NewCountdownDisplay()
	display.Writer = out
	display.UseColor = ctx.Formatter.IsColorEnabled()
	display.Width = barWidth(out)

	runner := timer.NewRunner(timer.RunnerConfig{
		Session:  s,
		Kind:     kind,
		Clock:    ctx.Clock,
		Ticker:   sched,
		Interval: ctx.Config.Display.TickInterval,
		Display:  display,
		Live:     ctx.IsCLI() && isTerminal(out) && !countdownFlagOnce,
		Once:     countdownFlagOnce,
	})

	if ctx.IsJSON() {
		display.Writer = io.Discard
		jf := ctx.JSONFormatter()
		runner.SetCallback(func(event timer.Event, cd model.Countdown) {
			if event == timer.EventQuit || (countdownFlagOnce && event != timer.EventStarted) {
				return
			}
			if err := jf.PrintCountdown(&cd); err != nil {
				logging.Warn("cannot write countdown", logging.KeyError, err)
			}
		})
	}

	runCtx, stop := signal.NotifyContext(logging.NewSessionContext(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runner.Run(runCtx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && runtime.IsTerminal(f)
}

// barWidth sizes the progress bar to the terminal.
func barWidth(w io.Writer) int {
	width := 40
	if f, ok := w.(*os.File); ok {
		width = runtime.TerminalWidth(f, 50) - 10
	}
	if width < 10 {
		width = 10
	}
	if width > 60 {
		width = 60
	}
	return width
}
