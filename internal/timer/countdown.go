// Package timer renders countdowns for the terminal and runs a headless
// countdown toward one threshold.
package timer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// CountdownDisplay handles the visual display of a countdown.
type CountdownDisplay struct {
	Writer   io.Writer
	UseColor bool
	Width    int // progress bar width in cells
}

// NewCountdownDisplay creates a new countdown display.
func NewCountdownDisplay() *CountdownDisplay {
	return &CountdownDisplay{
		Writer:   os.Stdout,
		UseColor: true,
		Width:    30,
	}
}

// Styles for countdown display.
var (
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	minimumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")) // Blue

	maximumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A855F7")) // Light purple

	finishedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// KindTitle returns the display title of a threshold kind.
func KindTitle(kind model.ThresholdKind) string {
	switch kind {
	case model.ThresholdMinimum:
		return "MINIMUM"
	case model.ThresholdMaximum:
		return "MAXIMUM"
	default:
		return "UNKNOWN"
	}
}

// FormatDuration formats a duration as HH:MM:SS.
func FormatDuration(d time.Duration) string {
	return model.FormatHMS(d)
}

func (cd *CountdownDisplay) style(s lipgloss.Style, text string) string {
	if cd.UseColor {
		return s.Render(text)
	}
	return text
}

// RenderCountdown renders one countdown. total is the full span from
// start of work to the target and drives the progress bar.
func (cd *CountdownDisplay) RenderCountdown(c *model.Countdown, total time.Duration) string {
	var sb strings.Builder

	header := KindTitle(c.Kind)
	headerStyle := minimumStyle
	if c.Kind == model.ThresholdMaximum {
		headerStyle = maximumStyle
	}
	sb.WriteString(cd.style(headerStyle, header))
	sb.WriteString(cd.style(progressStyle, fmt.Sprintf(" until %s", c.TargetTime)))
	sb.WriteString("\n\n")

	if c.Finished {
		sb.WriteString(cd.style(finishedStyle, FormatDuration(0)+"  Finished"))
	} else {
		sb.WriteString(cd.style(timerStyle, c.Display()))
	}
	sb.WriteString("\n\n")

	progress := 1.0
	if total > 0 {
		progress = 1.0 - float64(c.Remaining)/float64(total)
	}
	sb.WriteString(cd.style(progressStyle, cd.renderProgressBar(progress, cd.Width)))
	sb.WriteString("\n\n")

	status := "Press Ctrl+C to quit"
	if c.Finished {
		status = "Time to go home."
	}
	sb.WriteString(cd.style(statusStyle, status))

	return sb.String()
}

// renderProgressBar creates a progress bar string.
func (cd *CountdownDisplay) renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	if width <= 0 {
		width = 30
	}

	filled := int(progress * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d%%", bar, int(progress*100))
}

// RenderLine renders a single status line, used when output is not a terminal.
func (cd *CountdownDisplay) RenderLine(c *model.Countdown) string {
	state := c.Display()
	if c.Finished {
		state += " finished"
	}
	return fmt.Sprintf("%s %s %s", c.Kind, c.TargetTime, state)
}

// ClearScreen clears the terminal screen.
func (cd *CountdownDisplay) ClearScreen() {
	fmt.Fprint(cd.Writer, "\033[H\033[2J")
}

// MoveCursorHome moves cursor to home position.
func (cd *CountdownDisplay) MoveCursorHome() {
	fmt.Fprint(cd.Writer, "\033[H")
}

// Bell rings the terminal bell.
func (cd *CountdownDisplay) Bell() {
	fmt.Fprint(cd.Writer, "\a")
}
