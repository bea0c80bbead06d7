// Package runtime provides the per-invocation context of arbeitszeit.
package runtime

import (
	"fmt"
	"time"

	"github.com/manav03panchal/arbeitszeit/internal/clock"
	"github.com/manav03panchal/arbeitszeit/internal/config"
	"github.com/manav03panchal/arbeitszeit/internal/logging"
	"github.com/manav03panchal/arbeitszeit/internal/output"
	"github.com/manav03panchal/arbeitszeit/internal/projector"
	"github.com/manav03panchal/arbeitszeit/internal/scheduler"
	"github.com/manav03panchal/arbeitszeit/internal/session"
)

// Context holds the application runtime context.
type Context struct {
	Config     *config.RuntimeConfig
	ConfigPath string
	Clock      clock.Clock
	Projector  *projector.Projector
	Formatter  *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	Format     output.Format
	ColorMode  output.ColorMode
	Clock      clock.Clock
	Debug      bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		ConfigPath: config.DefaultPath(),
		Format:     output.FormatCLI,
		ColorMode:  output.ColorAuto,
		Clock:      clock.Real,
	}
}

// New creates a new runtime context. The configuration is loaded from
// opts.ConfigPath; an empty path means defaults plus environment.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Clock == nil {
		opts.Clock = clock.Real
	}
	if opts.Format == "" {
		opts.Format = output.FormatCLI
	}
	if opts.ColorMode == "" {
		opts.ColorMode = output.ColorAuto
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		Clock:      opts.Clock,
		Projector:  projector.New(cfg.ThresholdPolicies()),
		Formatter:  formatter,
		Debug:      opts.Debug,
	}, nil
}

// Now returns the current time of the context clock.
func (c *Context) Now() time.Time {
	return c.Clock.Now()
}

// NewSession returns an empty session using the configured policies.
func (c *Context) NewSession() *session.Session {
	return session.New(c.Projector)
}

// NewScheduler returns a scheduler on the context clock. Callers must
// Close it.
func (c *Context) NewScheduler() *scheduler.Scheduler {
	return scheduler.New(c.Clock)
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// PlainFormatter returns a plain formatter.
func (c *Context) PlainFormatter() *output.PlainFormatter {
	return output.NewPlainFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsPlain returns true if output format is plain.
func (c *Context) IsPlain() bool {
	return c.Formatter.Format == output.FormatPlain
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf writes a formatted message to the debug log if debug mode is
// enabled. It never touches command output.
func (c *Context) Debugf(format string, args ...any) {
	if c.Debug {
		logging.DebugLog(fmt.Sprintf(format, args...))
	}
}
