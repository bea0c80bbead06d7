package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/manav03panchal/arbeitszeit/internal/clock"
	"github.com/manav03panchal/arbeitszeit/internal/logging"
	"github.com/manav03panchal/arbeitszeit/internal/model"
	"github.com/manav03panchal/arbeitszeit/internal/scheduler"
	"github.com/manav03panchal/arbeitszeit/internal/session"
)

// Ticker schedules the refresh interval and the wake-up at the target.
// *scheduler.Scheduler implements it.
type Ticker interface {
	Every(d time.Duration, fn func()) scheduler.Task
	After(d time.Duration, fn func()) scheduler.Task
}

// Event represents events from the countdown runner.
type Event int

const (
	EventStarted Event = iota
	EventTick
	EventFinished
	EventQuit
)

// Callback is called when events occur.
type Callback func(event Event, cd model.Countdown)

// RunnerConfig configures a headless countdown.
type RunnerConfig struct {
	Session  *session.Session
	Kind     model.ThresholdKind
	Clock    clock.Clock
	Ticker   Ticker
	Interval time.Duration
	Display  *CountdownDisplay
	Live     bool // redraw in place instead of printing one line per tick
	Once     bool // render the current state and return
}

// Runner drives one countdown from start to finish outside the TUI.
type Runner struct {
	cfg      RunnerConfig
	callback Callback
}

// NewRunner creates a runner. The session must already have a start time.
func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.Display == nil {
		cfg.Display = NewCountdownDisplay()
	}
	return &Runner{cfg: cfg}
}

// SetCallback sets the event callback.
func (r *Runner) SetCallback(cb Callback) {
	r.callback = cb
}

func (r *Runner) emit(event Event, cd *model.Countdown) {
	if r.callback != nil {
		r.callback(event, *cd)
	}
}

// Run starts the countdown and blocks until it finishes or ctx is done.
// Cancellation is a normal way to quit and is not reported as an error.
func (r *Runner) Run(ctx context.Context) error {
	cd, _, err := r.cfg.Session.StartCountdown(r.cfg.Kind, r.cfg.Clock.Now())
	if err != nil {
		return err
	}
	r.emit(EventStarted, cd)

	total := cd.Total()

	r.render(cd, total)
	if r.cfg.Once || cd.Finished {
		if cd.Finished {
			r.emit(EventFinished, cd)
		}
		return nil
	}

	ticks := make(chan struct{}, 1)
	wake := func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	}
	task := r.cfg.Ticker.Every(r.cfg.Interval, wake)
	defer task.Stop()
	// The target rarely falls on an interval boundary.
	finish := r.cfg.Ticker.After(cd.TargetAt.Sub(r.cfg.Clock.Now()), wake)
	defer finish.Stop()

	log := logging.FromContext(ctx).With(logging.KeyKind, cd.Kind.String(), logging.KeyCountdownID, cd.ID)
	log.Debug("countdown running", logging.KeyTarget, cd.TargetTime.String())

	for {
		select {
		case <-ctx.Done():
			log.Debug("countdown interrupted", logging.KeyRemaining, cd.Display())
			r.emit(EventQuit, cd)
			return nil

		case <-ticks:
			r.cfg.Session.Tick(r.cfg.Clock.Now())
			r.render(cd, total)
			if cd.Finished {
				r.cfg.Display.Bell()
				r.emit(EventFinished, cd)
				return nil
			}
			r.emit(EventTick, cd)
		}
	}
}

// render writes the countdown to the display.
func (r *Runner) render(cd *model.Countdown, total time.Duration) {
	d := r.cfg.Display
	if !r.cfg.Live {
		fmt.Fprintln(d.Writer, d.RenderLine(cd))
		return
	}
	d.MoveCursorHome()
	d.ClearScreen()
	fmt.Fprintln(d.Writer, d.RenderCountdown(cd, total))
}
