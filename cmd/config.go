package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/arbeitszeit/internal/output"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Inspect application configuration",
	Long: `Inspect the effective configuration.

Values come from built-in defaults, the optional YAML config file and
ARBEITSZEIT_* environment variables, in that order.

Config file keys:
  thresholds.minimum_work     Work time of the minimum end (default 7h36m)
  thresholds.maximum_work     Work time of the maximum end (default 9h)
  thresholds.break            Break added to both (default 30m)
  display.tick_interval       Countdown refresh period (default 1s)
  display.transition_delay    Fade-in after a start time change (default 500ms)

Environment:
  ARBEITSZEIT_MIN_WORK, ARBEITSZEIT_MAX_WORK, ARBEITSZEIT_BREAK,
  ARBEITSZEIT_TICK_INTERVAL, ARBEITSZEIT_TRANSITION_DELAY, ARBEITSZEIT_CONFIG

Examples:
  arbeitszeit config show
  arbeitszeit config show --format plain > config.yaml
  arbeitszeit config path`,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configPathCmd prints the config file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := ctx.Config

	switch {
	case ctx.IsJSON():
		return ctx.Formatter.JSON(output.ConfigOutput{
			Path:            ctx.ConfigPath,
			MinimumWork:     cfg.Thresholds.MinimumWork.String(),
			MaximumWork:     cfg.Thresholds.MaximumWork.String(),
			Break:           cfg.Thresholds.Break.String(),
			TickInterval:    cfg.Display.TickInterval.String(),
			TransitionDelay: cfg.Display.TransitionDelay.String(),
		})

	case ctx.IsPlain():
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		ctx.Formatter.Print(string(data))
		return nil
	}

	cli := ctx.CLIFormatter()
	cli.Title("Configuration")
	cli.PrintTable([]string{"Key", "Value"}, []output.TableRow{
		{Columns: []string{"thresholds.minimum_work", cfg.Thresholds.MinimumWork.String()}},
		{Columns: []string{"thresholds.maximum_work", cfg.Thresholds.MaximumWork.String()}},
		{Columns: []string{"thresholds.break", cfg.Thresholds.Break.String()}},
		{Columns: []string{"display.tick_interval", cfg.Display.TickInterval.String()}},
		{Columns: []string{"display.transition_delay", cfg.Display.TransitionDelay.String()}},
	})
	cli.Println()
	cli.Muted("File: " + ctx.ConfigPath)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"path": ctx.ConfigPath})
	}
	ctx.Formatter.Println(ctx.ConfigPath)
	return nil
}
