package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/arbeitszeit/internal/clock"
	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/logging"
	"github.com/manav03panchal/arbeitszeit/internal/model"
	"github.com/manav03panchal/arbeitszeit/internal/session"
)

// tickMsg refreshes the countdowns. Ticks from a stopped interval carry a
// stale sequence number and are dropped.
type tickMsg struct {
	seq uint64
	at  time.Time
}

// transitionDoneMsg lowers the transition flag raised by a start time change.
type transitionDoneMsg struct {
	seq uint64
}

// Config holds configuration for the calculator screen.
type Config struct {
	Session         *session.Session
	Clock           clock.Clock
	TickInterval    time.Duration
	TransitionDelay time.Duration
	Bell            io.Writer // receives "\a" when a countdown finishes
	Start           *model.ClockTime
}

// CalculatorModel is the bubbletea model of the working time calculator.
type CalculatorModel struct {
	session *session.Session
	clock   clock.Clock
	input   TimeInput

	tickInterval    time.Duration
	transitionDelay time.Duration
	bell            io.Writer

	// tickSeq identifies the live refresh interval; ticking is false
	// while no countdown exists.
	tickSeq uint64
	ticking bool

	selected int

	width  int
	height int
	err    error
}

// NewCalculatorModel creates a new calculator model.
func NewCalculatorModel(cfg Config) *CalculatorModel {
	if cfg.Session == nil {
		cfg.Session = session.New(nil)
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.TransitionDelay < 0 {
		cfg.TransitionDelay = 0
	}
	if cfg.Bell == nil {
		cfg.Bell = io.Discard
	}

	m := &CalculatorModel{
		session:         cfg.Session,
		clock:           cfg.Clock,
		tickInterval:    cfg.TickInterval,
		transitionDelay: cfg.TransitionDelay,
		bell:            cfg.Bell,
	}
	if cfg.Start != nil {
		m.input.Set(*cfg.Start)
	}
	return m
}

// Init initializes the model.
func (m *CalculatorModel) Init() tea.Cmd {
	if m.input.Complete() {
		return m.applyInput()
	}
	return nil
}

// Update handles messages and updates the model.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case transitionDoneMsg:
		m.session.EndTransition(msg.seq)
		return m, nil

	case tickMsg:
		if !m.ticking || msg.seq != m.tickSeq {
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *CalculatorModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "ctrl+u":
		m.input.Clear()
		return m, m.applyInput()

	case "backspace":
		if m.input.Backspace() {
			return m, m.applyInput()
		}
		return m, nil

	case "n":
		m.input.Set(model.ClockTimeOf(m.clock.Now()))
		return m, m.applyInput()

	case "m":
		return m, m.startCountdown(model.ThresholdMinimum)

	case "x":
		return m, m.startCountdown(model.ThresholdMaximum)

	case "up", "k", "shift+tab":
		m.moveSelection(-1)
		return m, nil

	case "down", "j", "tab":
		m.moveSelection(1)
		return m, nil

	case "d", "delete":
		return m, m.deleteSelected()
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		// A full but invalid field starts over with the new digit.
		if m.input.Complete() && !m.session.HasStart() {
			m.input.Restart(rune(key[0]))
			return m, m.applyInput()
		}
		// With a complete field 1 and 2 act as the start buttons.
		if m.input.Complete() {
			switch key {
			case "1":
				return m, m.startCountdown(model.ThresholdMinimum)
			case "2":
				return m, m.startCountdown(model.ThresholdMaximum)
			}
			return m, nil
		}
		m.input.Push(rune(key[0]))
		return m, m.applyInput()
	}

	return m, nil
}

// applyInput recomputes the projection from the input field. An
// incomplete or empty field resets the start time, which also removes
// every countdown.
func (m *CalculatorModel) applyInput() tea.Cmd {
	start, ok, err := m.input.Value()
	m.err = err
	if !ok {
		if m.session.HasStart() {
			m.session.ClearStart()
			m.stopTicking()
			m.selected = 0
		}
		return nil
	}

	seq := m.session.SetStart(start, m.clock.Now())
	if m.transitionDelay == 0 {
		m.session.EndTransition(seq)
		return nil
	}
	return tea.Tick(m.transitionDelay, func(time.Time) tea.Msg {
		return transitionDoneMsg{seq: seq}
	})
}

// startCountdown starts the countdown of kind and the refresh interval
// if it is not running yet.
func (m *CalculatorModel) startCountdown(kind model.ThresholdKind) tea.Cmd {
	cd, created, err := m.session.StartCountdown(kind, m.clock.Now())
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	if !created {
		return nil
	}

	for i, c := range m.session.Countdowns() {
		if c.ID == cd.ID {
			m.selected = i
		}
	}

	var cmds []tea.Cmd
	if cd.Finished {
		cmds = append(cmds, m.ring())
	}
	if !m.ticking {
		m.ticking = true
		m.tickSeq++
		cmds = append(cmds, m.tickCmd())
	}
	return tea.Batch(cmds...)
}

// deleteSelected removes the selected countdown card.
func (m *CalculatorModel) deleteSelected() tea.Cmd {
	countdowns := m.session.Countdowns()
	if len(countdowns) == 0 {
		return nil
	}
	if m.selected >= len(countdowns) {
		m.selected = len(countdowns) - 1
	}
	m.session.DeleteCountdown(countdowns[m.selected].ID)

	if !m.session.NeedsTick() {
		m.stopTicking()
	}
	m.clampSelection()
	return nil
}

func (m *CalculatorModel) moveSelection(delta int) {
	n := len(m.session.Countdowns())
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = (m.selected + delta + n) % n
}

func (m *CalculatorModel) clampSelection() {
	n := len(m.session.Countdowns())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// tick refreshes every countdown and schedules the next tick while
// countdowns exist.
func (m *CalculatorModel) tick() tea.Cmd {
	finished := m.session.Tick(m.clock.Now())

	var cmds []tea.Cmd
	if len(finished) > 0 {
		cmds = append(cmds, m.ring())
	}
	if m.session.NeedsTick() {
		cmds = append(cmds, m.tickCmd())
	} else {
		m.stopTicking()
	}
	return tea.Batch(cmds...)
}

func (m *CalculatorModel) stopTicking() {
	if m.ticking {
		logging.LogOperation("stop_tick")
	}
	m.ticking = false
	m.tickSeq++
}

// tickCmd returns a command that sends a tick message.
func (m *CalculatorModel) tickCmd() tea.Cmd {
	seq := m.tickSeq
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{seq: seq, at: t}
	})
}

// ring returns a command that rings the terminal bell.
func (m *CalculatorModel) ring() tea.Cmd {
	w := m.bell
	return func() tea.Msg {
		fmt.Fprint(w, "\a")
		return nil
	}
}

// Ticking reports whether the refresh interval is live.
func (m *CalculatorModel) Ticking() bool {
	return m.ticking
}

// Input returns the current content of the start time field.
func (m *CalculatorModel) Input() string {
	return m.input.String()
}

// Selected returns the index of the selected countdown card.
func (m *CalculatorModel) Selected() int {
	return m.selected
}

// Err returns the last input error, if any.
func (m *CalculatorModel) Err() error {
	return m.err
}

// View renders the calculator.
func (m *CalculatorModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, StyleInputBox.Render(
		"Start of work  "+StyleInput.Render(m.input.String())))

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
		if suggestion := errors.GetSuggestion(m.err); suggestion != "" {
			sections = append(sections, StyleNote.Render("Try: "+suggestion))
		}
	}

	if projection, ok := m.session.Projection(); ok {
		sections = append(sections, m.renderThresholds(projection))
		sections = append(sections, StyleNote.Render(BreakHint))
	} else {
		sections = append(sections, StyleSubtitle.Render("Enter your start time (HH:MM) or press n for now"))
	}

	if countdowns := m.renderCountdowns(); countdowns != "" {
		sections = append(sections, "", countdowns)
	}

	sections = append(sections, HelpBar(len(m.session.Countdowns()) > 0))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title with the current time.
func (m *CalculatorModel) renderHeader() string {
	title := StyleTitle.Render("Arbeitszeitrechner")
	now := StyleSubtitle.Render(m.clock.Now().Format("Mon Jan 2, 15:04:05"))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", now)
}

func (m *CalculatorModel) renderThresholds(p model.Projection) string {
	cardWidth := (m.width - 4) / 2
	if cardWidth > 40 {
		cardWidth = 40
	}

	keys := map[model.ThresholdKind]string{
		model.ThresholdMinimum: "m",
		model.ThresholdMaximum: "x",
	}

	var cards []string
	for _, th := range m.session.Projector().Thresholds() {
		card := &ThresholdCard{
			Threshold: th,
			End:       p.End(th.Kind),
			Running:   m.session.Running(th.Kind),
			Dimmed:    m.session.Animating(),
			Key:       keys[th.Kind],
			Width:     cardWidth,
		}
		cards = append(cards, card.View())
	}
	return joinCards(m.width, cards...)
}

func (m *CalculatorModel) renderCountdowns() string {
	countdowns := m.session.Countdowns()
	if len(countdowns) == 0 {
		return ""
	}

	cardWidth := m.width - 4
	if cardWidth > 60 {
		cardWidth = 60
	}

	var cards []string
	for i, cd := range countdowns {
		card := &CountdownCard{
			Countdown: cd,
			Total:     cd.Total(),
			Selected:  i == m.selected,
			Width:     cardWidth,
		}
		cards = append(cards, card.View())
	}
	return strings.Join(cards, "\n")
}

// Run starts the calculator TUI.
func Run(cfg Config) error {
	if cfg.Bell == nil {
		cfg.Bell = os.Stderr
	}
	m := NewCalculatorModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
