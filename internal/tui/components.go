package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/arbeitszeit/internal/model"
	"github.com/manav03panchal/arbeitszeit/internal/timer"
)

// Button labels of a threshold card.
const (
	LabelStartCountdown   = "Start countdown"
	LabelCountdownRunning = "Countdown running"
)

// BreakHint is shown below the threshold cards.
const BreakHint = "Note: the 30 minute break is already included"

// ThresholdCard displays one computed end time and its start button.
type ThresholdCard struct {
	Threshold model.Threshold
	End       model.ClockTime
	Running   bool
	Dimmed    bool
	Key       string
	Width     int
}

// View renders the threshold card.
func (tc *ThresholdCard) View() string {
	var content strings.Builder

	endStyle := StyleEndTime.Foreground(ColorMinimum)
	box := StyleMinimumCard
	if tc.Threshold.Kind == model.ThresholdMaximum {
		endStyle = StyleEndTime.Foreground(ColorMaximum)
		box = StyleMaximumCard
	}
	if tc.Dimmed {
		endStyle = StyleDimmed
	}

	content.WriteString(endStyle.Render(tc.End.String()))
	content.WriteString("\n\n")
	content.WriteString(tc.Threshold.Label())
	content.WriteString("\n")
	content.WriteString(StyleNote.Render(tc.Threshold.BreakNote()))
	content.WriteString("\n\n")

	if tc.Running {
		content.WriteString(StyleButtonDisabled.Render("[ " + LabelCountdownRunning + " ]"))
	} else {
		content.WriteString(StyleButton.Render("[ " + LabelStartCountdown + " ]"))
		content.WriteString(" ")
		content.WriteString(StyleHelpKey.Render(tc.Key))
	}

	if tc.Width > 0 {
		box = box.Width(tc.Width)
	}
	return box.Render(content.String())
}

// CountdownCard displays one live countdown.
type CountdownCard struct {
	Countdown *model.Countdown
	Total     time.Duration
	Selected  bool
	Width     int
}

// View renders the countdown card.
func (cc *CountdownCard) View() string {
	var content strings.Builder
	cd := cc.Countdown

	header := fmt.Sprintf("%s countdown until %s", titleCase(timer.KindTitle(cd.Kind)), cd.TargetTime)
	content.WriteString(StyleSubtitle.Render(header))
	content.WriteString("\n")

	box := StyleCountdownBox
	if cd.Finished {
		content.WriteString(StyleSuccess.Render(cd.Display() + "  Finished"))
		box = StyleFinishedBox
	} else {
		content.WriteString(StyleCountdown.Render(cd.Display()))
	}

	barWidth := cc.Width - 8
	if barWidth < 10 {
		barWidth = 10
	}
	percentage := 100.0
	if cc.Total > 0 && !cd.Finished {
		percentage = 100 * (1 - float64(cd.Remaining)/float64(cc.Total))
	}
	content.WriteString("\n")
	content.WriteString(ProgressBar(percentage, barWidth))

	if cc.Selected {
		box = StyleSelectedCountdownBox
	}
	if cc.Width > 0 {
		box = box.Width(cc.Width)
	}
	return box.Render(content.String())
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

type helpKey struct {
	key  string
	desc string
}

// HelpBar renders the help bar at the bottom.
func HelpBar(hasCountdowns bool) string {
	keys := []helpKey{
		{"0-9", "start time"},
		{"n", "now"},
		{"esc", "clear"},
		{"m", "min countdown"},
		{"x", "max countdown"},
	}
	if hasCountdowns {
		keys = append(keys, helpKey{"↑/↓", "select"}, helpKey{"d", "delete"})
	}
	keys = append(keys, helpKey{"q", "quit"})

	var parts []string
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}

// joinCards lays cards out side by side when they fit, stacked otherwise.
func joinCards(width int, cards ...string) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if width > 0 && lipgloss.Width(row) > width {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return row
}
