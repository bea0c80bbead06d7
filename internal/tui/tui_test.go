package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/arbeitszeit/internal/clock"
	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/model"
	"github.com/manav03panchal/arbeitszeit/internal/session"
)

// =============================================================================
// Helpers
// =============================================================================

type harness struct {
	m     *CalculatorModel
	s     *session.Session
	clock *clock.Fake
	bell  *bytes.Buffer
}

func newHarness(t *testing.T, now time.Time) *harness {
	t.Helper()
	h := &harness{
		s:     session.New(nil),
		clock: clock.NewFake(now),
		bell:  &bytes.Buffer{},
	}
	h.m = NewCalculatorModel(Config{
		Session:         h.s,
		Clock:           h.clock,
		TickInterval:    time.Millisecond,
		TransitionDelay: time.Millisecond,
		Bell:            h.bell,
	})
	h.m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and returns the resulting command.
func (h *harness) press(msg tea.KeyMsg) tea.Cmd {
	_, cmd := h.m.Update(msg)
	return cmd
}

func (h *harness) typeText(s string) tea.Cmd {
	var last tea.Cmd
	for _, r := range s {
		last = h.press(runes(string(r)))
	}
	return last
}

// drain executes cmd and every command batched inside it.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func day(hour, minute, second int) time.Time {
	return time.Date(2024, 3, 4, hour, minute, second, 0, time.Local)
}

// =============================================================================
// TimeInput Tests
// =============================================================================

func TestTimeInput(t *testing.T) {
	var in TimeInput
	assert.True(t, in.Empty())
	assert.Equal(t, "__:__", in.String())

	assert.True(t, in.Push('0'))
	assert.True(t, in.Push('8'))
	assert.False(t, in.Push('a'))
	assert.Equal(t, "08:__", in.String())

	_, ok, err := in.Value()
	assert.False(t, ok)
	assert.NoError(t, err)

	in.Push('3')
	in.Push('0')
	assert.True(t, in.Complete())
	assert.False(t, in.Push('1'))

	ct, ok, err := in.Value()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.ClockTime{Hour: 8, Minute: 30}, ct)

	assert.True(t, in.Backspace())
	assert.Equal(t, "08:3_", in.String())

	in.Clear()
	assert.False(t, in.Backspace())

	in.Set(model.ClockTime{Hour: 23, Minute: 5})
	assert.Equal(t, "23:05", in.String())
}

func TestTimeInputInvalid(t *testing.T) {
	var in TimeInput
	for _, r := range "2560" {
		in.Push(r)
	}
	_, ok, err := in.Value()
	assert.False(t, ok)
	assert.ErrorIs(t, err, errors.ErrInvalidClockTime)
	assert.NotEmpty(t, errors.GetSuggestion(err))

	assert.True(t, in.Restart('1'))
	assert.Equal(t, "1_:__", in.String())
}

// =============================================================================
// CalculatorModel Tests
// =============================================================================

func TestCalculatorViewBeforeResize(t *testing.T) {
	m := NewCalculatorModel(Config{})
	assert.Equal(t, "Loading...", m.View())
	assert.Nil(t, m.Init())
}

func TestCalculatorProjection(t *testing.T) {
	h := newHarness(t, day(7, 0, 0))

	cmd := h.typeText("0800")
	require.NotNil(t, cmd)

	p, ok := h.s.Projection()
	require.True(t, ok)
	assert.Equal(t, "16:06", p.MinEnd.String())
	assert.Equal(t, "17:30", p.MaxEnd.String())
	assert.True(t, h.s.Animating())

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	h.m.Update(msgs[0])
	assert.False(t, h.s.Animating())

	view := h.m.View()
	assert.Contains(t, view, "16:06")
	assert.Contains(t, view, "17:30")
	assert.Contains(t, view, "Minimum working time (7.6h)")
	assert.Contains(t, view, "Maximum working time (9h)")
	assert.Contains(t, view, LabelStartCountdown)
	assert.Contains(t, view, BreakHint)
}

func TestCalculatorStaleTransition(t *testing.T) {
	h := newHarness(t, day(7, 0, 0))

	h.typeText("0800")
	first := h.s.TransitionSeq()

	h.press(tea.KeyMsg{Type: tea.KeyBackspace})
	h.typeText("5")
	assert.Equal(t, "08:05", h.m.Input())

	h.m.Update(transitionDoneMsg{seq: first})
	assert.True(t, h.s.Animating(), "an older transition must not end the current one")

	h.m.Update(transitionDoneMsg{seq: h.s.TransitionSeq()})
	assert.False(t, h.s.Animating())
}

func TestCalculatorIncompleteInputResets(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))

	h.typeText("0800")
	h.press(runes("m"))
	require.Len(t, h.s.Countdowns(), 1)

	h.press(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.False(t, h.s.HasStart())
	assert.Empty(t, h.s.Countdowns())
	assert.False(t, h.m.Ticking())
}

func TestCalculatorInvalidTime(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))

	h.typeText("2599")
	assert.Error(t, h.m.Err())
	assert.False(t, h.s.HasStart())
	assert.Contains(t, h.m.View(), "Error:")

	h.press(tea.KeyMsg{Type: tea.KeyEscape})
	assert.NoError(t, h.m.Err())
	assert.Equal(t, "__:__", h.m.Input())
}

func TestCalculatorInvalidTimeShowsHintAndRestarts(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))

	h.typeText("9999")
	require.Error(t, h.m.Err())
	assert.Contains(t, h.m.View(), "Try: "+errors.Suggestions[errors.ErrInvalidClockTime])

	h.typeText("0800")
	assert.NoError(t, h.m.Err())
	assert.Equal(t, "08:00", h.m.Input())
	p, ok := h.s.Projection()
	require.True(t, ok)
	assert.Equal(t, "16:06", p.MinEnd.String())
}

func TestCalculatorChangingStartKeepsProgressTotal(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))
	h.typeText("0800")
	h.press(runes("m"))

	h.press(runes("n"))
	cd, ok := h.s.Countdown(model.ThresholdMinimum)
	require.True(t, ok)
	assert.Equal(t, 8*time.Hour+6*time.Minute, cd.Total())
}

func TestCalculatorSetNow(t *testing.T) {
	h := newHarness(t, day(8, 15, 42))

	h.press(runes("n"))
	assert.Equal(t, "08:15", h.m.Input())

	start, ok := h.s.Start()
	require.True(t, ok)
	assert.Equal(t, model.ClockTime{Hour: 8, Minute: 15}, start)
}

func TestCalculatorStartCountdown(t *testing.T) {
	h := newHarness(t, day(17, 29, 30))
	h.typeText("0800")

	cmd := h.press(runes("x"))
	require.NotNil(t, cmd)
	assert.True(t, h.m.Ticking())

	cd, ok := h.s.Countdown(model.ThresholdMaximum)
	require.True(t, ok)
	assert.Equal(t, "00:00:30", cd.Display())
	assert.Contains(t, h.m.View(), LabelCountdownRunning)
	assert.Contains(t, h.m.View(), "00:00:30")

	// Starting the same kind again is a no-op.
	assert.Nil(t, h.press(runes("x")))
	again, _ := h.s.Countdown(model.ThresholdMaximum)
	assert.Equal(t, cd.ID, again.ID)
	assert.Len(t, h.s.Countdowns(), 1)
}

func TestCalculatorStartWithoutStartTime(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))

	assert.Nil(t, h.press(runes("m")))
	assert.Empty(t, h.s.Countdowns())
	assert.Error(t, h.m.Err())
}

func TestCalculatorDigitShortcuts(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))

	// While the field is incomplete 1 and 2 are digits.
	h.typeText("12")
	assert.Equal(t, "12:__", h.m.Input())
	assert.Empty(t, h.s.Countdowns())

	h.typeText("00")
	h.press(runes("1"))
	h.press(runes("2"))
	assert.Equal(t, "12:00", h.m.Input())
	assert.True(t, h.s.Running(model.ThresholdMinimum))
	assert.True(t, h.s.Running(model.ThresholdMaximum))
}

func TestCalculatorTickFinishes(t *testing.T) {
	h := newHarness(t, day(17, 29, 30))
	h.typeText("0800")
	h.press(runes("x"))

	h.clock.Advance(31 * time.Second)
	_, cmd := h.m.Update(tickMsg{seq: h.m.tickSeq})
	require.NotNil(t, cmd)

	cd, _ := h.s.Countdown(model.ThresholdMaximum)
	assert.True(t, cd.Finished)
	assert.Equal(t, "00:00:00", cd.Display())

	msgs := drain(cmd)
	assert.Equal(t, "\a", h.bell.String())
	assert.True(t, h.m.Ticking(), "finished countdowns keep the interval alive until deleted")

	var sawTick bool
	for _, msg := range msgs {
		if tm, ok := msg.(tickMsg); ok {
			sawTick = true
			assert.Equal(t, h.m.tickSeq, tm.seq)
		}
	}
	assert.True(t, sawTick)
	assert.Contains(t, h.m.View(), "Finished")
}

func TestCalculatorAlreadyFinishedRingsBell(t *testing.T) {
	h := newHarness(t, day(18, 0, 0))
	h.typeText("0800")

	drain(h.press(runes("m")))
	cd, ok := h.s.Countdown(model.ThresholdMinimum)
	require.True(t, ok)
	assert.True(t, cd.Finished)
	assert.Equal(t, "\a", h.bell.String())
}

func TestCalculatorDeleteStopsTicking(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))
	h.typeText("0800")
	h.press(runes("m"))
	h.press(runes("x"))
	require.Len(t, h.s.Countdowns(), 2)

	staleSeq := h.m.tickSeq

	h.press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, h.m.Selected())

	h.press(runes("d"))
	require.Len(t, h.s.Countdowns(), 1)
	assert.Equal(t, model.ThresholdMaximum, h.s.Countdowns()[0].Kind)
	assert.True(t, h.m.Ticking())

	h.press(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Empty(t, h.s.Countdowns())
	assert.False(t, h.m.Ticking())

	_, cmd := h.m.Update(tickMsg{seq: staleSeq})
	assert.Nil(t, cmd)

	// Deleting with no cards is a no-op.
	assert.Nil(t, h.press(runes("d")))
}

func TestCalculatorSelection(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))
	h.typeText("0800")
	h.press(runes("m"))
	h.press(runes("x"))

	assert.Equal(t, 1, h.m.Selected())
	h.press(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, h.m.Selected())
	h.press(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, h.m.Selected())
	h.press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, h.m.Selected())
}

func TestCalculatorClearRemovesEverything(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))
	h.typeText("0800")
	h.press(runes("m"))
	h.press(runes("x"))

	h.press(tea.KeyMsg{Type: tea.KeyCtrlU})

	_, ok := h.s.Projection()
	assert.False(t, ok)
	assert.Empty(t, h.s.Countdowns())
	assert.False(t, h.m.Ticking())
	assert.Contains(t, h.m.View(), "Enter your start time")
}

func TestCalculatorChangingStartKeepsCountdowns(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))
	h.typeText("0800")
	h.press(runes("m"))
	before, _ := h.s.Countdown(model.ThresholdMinimum)

	h.press(runes("n"))
	after, ok := h.s.Countdown(model.ThresholdMinimum)
	require.True(t, ok)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "16:06", after.TargetTime.String())
}

func TestCalculatorInitialStart(t *testing.T) {
	start := model.ClockTime{Hour: 8, Minute: 0}
	m := NewCalculatorModel(Config{
		Clock:           clock.NewFake(day(9, 0, 0)),
		TransitionDelay: time.Millisecond,
		Start:           &start,
	})
	assert.NotNil(t, m.Init())
	assert.Equal(t, "08:00", m.Input())
}

func TestCalculatorQuit(t *testing.T) {
	h := newHarness(t, day(9, 0, 0))

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		cmd := h.press(msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}

// =============================================================================
// Component Tests
// =============================================================================

func TestThresholdCardView(t *testing.T) {
	th := model.DefaultThresholds()[0]

	card := &ThresholdCard{Threshold: th, End: model.ClockTime{Hour: 16, Minute: 6}, Key: "m", Width: 40}
	view := card.View()
	assert.Contains(t, view, "16:06")
	assert.Contains(t, view, "incl. 30 min break")
	assert.Contains(t, view, LabelStartCountdown)

	card.Running = true
	card.Dimmed = true
	view = card.View()
	assert.Contains(t, view, LabelCountdownRunning)
	assert.NotContains(t, view, LabelStartCountdown)
}

func TestCountdownCardView(t *testing.T) {
	cd := &model.Countdown{
		Kind:       model.ThresholdMinimum,
		TargetTime: model.ClockTime{Hour: 16, Minute: 6},
		Remaining:  time.Hour,
	}
	card := &CountdownCard{Countdown: cd, Total: 2 * time.Hour, Width: 50}
	view := card.View()
	assert.Contains(t, view, "Minimum countdown until 16:06")
	assert.Contains(t, view, "01:00:00")

	cd.Finished = true
	cd.Remaining = 0
	card.Selected = true
	assert.Contains(t, card.View(), "Finished")
}

func TestHelpBar(t *testing.T) {
	bar := HelpBar(false)
	assert.Contains(t, bar, "quit")
	assert.NotContains(t, bar, "delete")

	assert.Contains(t, HelpBar(true), "delete")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, 10, strings.Count(ProgressBar(50, 10), "█")+strings.Count(ProgressBar(50, 10), "░"))
	assert.Equal(t, 10, strings.Count(ProgressBar(150, 10), "█"))
	assert.Equal(t, 10, strings.Count(ProgressBar(-10, 10), "░"))
}
