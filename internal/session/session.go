// Package session holds the state of one calculator screen: the entered
// start time, its projection, the running countdowns and the fade-in flag.
// The presentation layer owns exactly one Session and drives it from its
// event loop.
package session

import (
	"time"

	"github.com/manav03panchal/arbeitszeit/internal/countdown"
	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/logging"
	"github.com/manav03panchal/arbeitszeit/internal/metrics"
	"github.com/manav03panchal/arbeitszeit/internal/model"
	"github.com/manav03panchal/arbeitszeit/internal/projector"
)

// Session is the explicit state container of the calculator.
type Session struct {
	projector *projector.Projector
	registry  *countdown.Registry

	hasStart   bool
	projection model.Projection

	animating     bool
	transitionSeq uint64
}

// New returns an empty session using p for projections.
func New(p *projector.Projector) *Session {
	if p == nil {
		p = projector.Default()
	}
	return &Session{
		projector: p,
		registry:  countdown.NewRegistry(),
	}
}

// Projector returns the projector the session computes with.
func (s *Session) Projector() *projector.Projector {
	return s.projector
}

// SetStart sets the work start time and recomputes both end times,
// anchored on now's calendar day. Running countdowns keep their targets.
// It raises the transition flag and returns the sequence number that
// EndTransition must be called with to lower it; earlier sequence numbers
// become stale.
func (s *Session) SetStart(start model.ClockTime, now time.Time) uint64 {
	s.hasStart = true
	s.projection = s.projector.Project(start, now)
	s.animating = true
	s.transitionSeq++
	metrics.RecordProjection()

	logging.LogOperation("set_start",
		logging.KeyStart, start.String(),
		"min_end", s.projection.MinEnd.String(),
		"max_end", s.projection.MaxEnd.String(),
	)
	return s.transitionSeq
}

// ClearStart resets the input: the projection and every countdown are
// removed and any pending transition is cancelled.
func (s *Session) ClearStart() {
	s.hasStart = false
	s.projection = model.Projection{}
	s.registry.Clear()
	s.animating = false
	s.transitionSeq++
	metrics.RecordReset()

	logging.LogOperation("clear_start")
}

// HasStart reports whether a start time is set.
func (s *Session) HasStart() bool {
	return s.hasStart
}

// Start returns the entered start time.
func (s *Session) Start() (model.ClockTime, bool) {
	return s.projection.Start, s.hasStart
}

// Projection returns the current projection.
func (s *Session) Projection() (model.Projection, bool) {
	return s.projection, s.hasStart
}

// Animating reports whether the results are still fading in.
func (s *Session) Animating() bool {
	return s.animating
}

// TransitionSeq returns the sequence number of the latest transition.
func (s *Session) TransitionSeq() uint64 {
	return s.transitionSeq
}

// EndTransition lowers the transition flag if seq is the latest
// transition. It reports whether the flag changed.
func (s *Session) EndTransition(seq uint64) bool {
	if seq != s.transitionSeq || !s.animating {
		return false
	}
	s.animating = false
	return true
}

// StartCountdown starts the countdown for kind toward the current
// projection. Starting a kind that already runs is a no-op and returns the
// existing countdown with created=false.
func (s *Session) StartCountdown(kind model.ThresholdKind, now time.Time) (cd *model.Countdown, created bool, err error) {
	if !kind.Valid() {
		return nil, false, errors.InvalidInput(errors.ErrInvalidThreshold, "kind", kind.String())
	}
	if !s.hasStart {
		return nil, false, errors.ErrNoStartTime
	}

	cd, created = s.registry.Start(kind, s.projection.End(kind), s.projection.StartAt, s.projection.TargetAt(kind), now)
	if created {
		metrics.RecordCountdownStarted(kind.String(), s.registry.Len())
		if cd.Finished {
			metrics.RecordCountdownFinished(kind.String())
		}
		logging.LogOperation("start_countdown",
			logging.KeyKind, kind.String(),
			logging.KeyCountdownID, cd.ID,
			logging.KeyTarget, cd.TargetTime.String(),
			logging.KeyRemaining, cd.Display(),
		)
	}
	return cd, created, nil
}

// DeleteCountdown removes the countdown with id; unknown ids are ignored.
func (s *Session) DeleteCountdown(id string) bool {
	removed := s.registry.Delete(id)
	if removed {
		metrics.RecordCountdownDeleted(s.registry.Len())
		logging.LogOperation("delete_countdown", logging.KeyCountdownID, id)
	}
	return removed
}

// Tick refreshes every countdown at now and returns those that finished.
func (s *Session) Tick(now time.Time) []*model.Countdown {
	finished := s.registry.Tick(now)
	for _, cd := range finished {
		metrics.RecordCountdownFinished(cd.Kind.String())
		logging.Info("countdown finished",
			logging.KeyKind, cd.Kind.String(),
			logging.KeyCountdownID, cd.ID,
			logging.KeyTarget, cd.TargetTime.String(),
		)
	}
	return finished
}

// Countdowns returns the running countdowns, minimum first.
func (s *Session) Countdowns() []*model.Countdown {
	return s.registry.List()
}

// Countdown returns the countdown for kind, if running.
func (s *Session) Countdown(kind model.ThresholdKind) (*model.Countdown, bool) {
	return s.registry.Get(kind)
}

// Running reports whether a countdown for kind exists.
func (s *Session) Running(kind model.ThresholdKind) bool {
	return s.registry.Has(kind)
}

// NeedsTick reports whether the refresh interval should be running.
func (s *Session) NeedsTick() bool {
	return !s.registry.Empty()
}
