// Package tui provides the interactive working time calculator screen.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the calculator screen.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorMinimum   = lipgloss.Color("#3B82F6") // Blue
	ColorMaximum   = lipgloss.Color("#A855F7") // Light purple
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
	ColorDimmed    = lipgloss.Color("#374151") // Darker gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for the screen title.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for subtitles and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleInput is the start time field.
	StyleInput = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleEndTime is used for a computed end time.
	StyleEndTime = lipgloss.NewStyle().
			Bold(true)

	// StyleCountdown is used for remaining HH:MM:SS.
	StyleCountdown = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleNote is used for notes and hints.
	StyleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorMuted)

	// StyleDimmed renders results while they fade in.
	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	// StyleButton is an enabled start button.
	StyleButton = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleButtonDisabled is a start button whose countdown already runs.
	StyleButtonDisabled = lipgloss.NewStyle().
				Foreground(ColorMuted)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleSuccess is used for finished countdowns.
	StyleSuccess = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for the screen sections.
var (
	// StyleInputBox frames the start time field.
	StyleInputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)

	// StyleMinimumCard frames the minimum threshold card.
	StyleMinimumCard = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMinimum).
				Padding(1, 2)

	// StyleMaximumCard frames the maximum threshold card.
	StyleMaximumCard = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMaximum).
				Padding(1, 2)

	// StyleCountdownBox frames a countdown card.
	StyleCountdownBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 2)

	// StyleSelectedCountdownBox frames the selected countdown card.
	StyleSelectedCountdownBox = lipgloss.NewStyle().
					Border(lipgloss.ThickBorder()).
					BorderForeground(ColorPrimary).
					Padding(0, 2)

	// StyleFinishedBox frames a finished countdown card.
	StyleFinishedBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSuccess).
				Padding(0, 2)
)

// ProgressBar creates a progress bar string.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}
