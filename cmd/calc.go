package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/arbeitszeit/internal/logging"
	"github.com/manav03panchal/arbeitszeit/internal/parser"
)

// calcCmd prints both end times for a start time.
var calcCmd = &cobra.Command{
	Use:     "calc <start>",
	Aliases: []string{"c", "end"},
	Short:   "Print the minimum and maximum end of work",
	Long: `Compute when the working day may end for a given start time.

The minimum end is start + 7.6 hours + 30 minute break (8h06m), the maximum
end is start + 9 hours + 30 minute break (9h30m). Times wrap past midnight.

Start times may be written as 08:00, 8:00, 0800, 8, 8.30, now, 8am or in
natural language.

Examples:
  arbeitszeit calc 08:00
  arbeitszeit calc 7:45 --format json
  arbeitszeit calc now --format plain
  arbeitszeit calc half past seven`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	now := ctx.Now()
	start, err := parser.ParseClockTime(strings.Join(args, " "), now)
	if err != nil {
		return err
	}

	projection := ctx.Projector.Project(start, now)
	ctx.Debugf("calc: start %s resolved to %s, targets %s and %s",
		strings.Join(args, " "), projection.StartAt.Format(time.RFC3339),
		projection.MinTargetAt.Format(time.RFC3339), projection.MaxTargetAt.Format(time.RFC3339))
	logging.LogOperation("calc",
		logging.KeyStart, start.String(),
		"min_end", projection.MinEnd.String(),
		"max_end", projection.MaxEnd.String(),
	)

	switch {
	case ctx.IsJSON():
		return ctx.JSONFormatter().PrintProjection(projection, ctx.Projector.Thresholds())
	case ctx.IsPlain():
		ctx.PlainFormatter().PrintProjection(projection)
	default:
		ctx.CLIFormatter().PrintProjection(projection, ctx.Projector.Thresholds())
	}
	return nil
}
