package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMinimum = lipgloss.Color("#3B82F6") // Blue
	colorMaximum = lipgloss.Color("#A855F7") // Light purple
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleMinimum = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMinimum)

	styleMaximum = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMaximum)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// BreakHint is shown under every projection.
const BreakHint = "Note: the 30 minute break is already included"

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	return c.render(styleNote, text)
}

// EndTime formats an end time in the color of its threshold.
func (c *CLIFormatter) EndTime(kind model.ThresholdKind, t model.ClockTime) string {
	if kind == model.ThresholdMaximum {
		return c.render(styleMaximum, t.String())
	}
	return c.render(styleMinimum, t.String())
}

// PrintProjection prints both end times for a start time.
func (c *CLIFormatter) PrintProjection(p model.Projection, thresholds []model.Threshold) {
	c.Title(fmt.Sprintf("Start of work: %s", p.Start))
	c.Println()

	for _, th := range thresholds {
		c.Printf("  %s  %s\n", c.EndTime(th.Kind, p.End(th.Kind)), c.render(styleBold, th.Label()))
		c.Printf("         %s\n", c.Note(th.BreakNote()))
	}

	if !p.StartAt.IsZero() {
		for _, th := range thresholds {
			if at := p.TargetAt(th.Kind); at.YearDay() != p.StartAt.YearDay() {
				c.Println()
				c.Warning(fmt.Sprintf("%s ends the next day at %s", th.Label(), FormatTimeOnly(at)))
			}
		}
	}

	c.Println()
	c.Muted(BreakHint)
}

// PrintCountdown prints the state of one countdown on a single line.
func (c *CLIFormatter) PrintCountdown(cd *model.Countdown) {
	if cd.Finished {
		c.Success(fmt.Sprintf("%s countdown to %s finished", cd.Kind, cd.TargetTime))
		return
	}
	c.Printf("%s countdown to %s: %s remaining\n",
		cd.Kind, c.EndTime(cd.Kind, cd.TargetTime), c.render(styleBold, cd.Display()))
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// TableRow is one row of a CLI table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	var headerLine strings.Builder
	for i, h := range headers {
		fmt.Fprintf(&headerLine, "%-*s  ", widths[i], h)
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				fmt.Fprintf(&rowLine, "%-*s  ", widths[i], col)
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
