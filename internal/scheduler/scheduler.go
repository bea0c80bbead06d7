// Package scheduler runs one-shot and repeating tasks that are cancelled
// together on teardown.
package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/arbeitszeit/internal/clock"
	"github.com/manav03panchal/arbeitszeit/internal/logging"
)

// Task is a scheduled callback that can be cancelled.
type Task interface {
	// Stop cancels the task. Stopping a task more than once is safe.
	Stop()
}

// Scheduler owns a set of tasks. Repeating tasks run on a cron engine,
// one-shot tasks on the clock. Close cancels everything still pending.
type Scheduler struct {
	cron  *cron.Cron
	clock clock.Clock

	mu      sync.Mutex
	tasks   map[*task]struct{}
	started bool
	closed  bool
}

// New creates a scheduler using clk for one-shot delays.
func New(clk clock.Clock) *Scheduler {
	if clk == nil {
		clk = clock.Real
	}
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds()),
		clock: clk,
		tasks: make(map[*task]struct{}),
	}
}

type task struct {
	s      *Scheduler
	once   sync.Once
	timer  clock.Timer
	entry  cron.EntryID
	repeat bool
}

func (t *task) Stop() {
	t.once.Do(func() {
		if t.repeat {
			t.s.cron.Remove(t.entry)
		} else if t.timer != nil {
			t.timer.Stop()
		}
		t.s.forget(t)
	})
}

// After runs fn once after d unless the task is stopped first.
func (s *Scheduler) After(d time.Duration, fn func()) Task {
	t := &task{s: s}
	if !s.track(t) {
		return t
	}
	t.timer = s.clock.AfterFunc(d, func() {
		if s.forget(t) {
			fn()
		}
	})
	return t
}

// Every runs fn every d until the task is stopped. Periods below one
// second are rounded up to one second by the cron engine.
func (s *Scheduler) Every(d time.Duration, fn func()) Task {
	t := &task{s: s, repeat: true}
	if !s.track(t) {
		return t
	}
	t.entry = s.cron.Schedule(cron.Every(d), cron.FuncJob(fn))

	s.mu.Lock()
	if !s.started {
		s.started = true
		s.cron.Start()
	}
	s.mu.Unlock()
	return t
}

// Pending returns the number of tasks that are neither stopped nor fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Close stops every pending task and the cron engine, waiting for running
// jobs to return.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	tasks := make([]*task, 0, len(s.tasks))
	for t := range s.tasks {
		tasks = append(tasks, t)
	}
	started := s.started
	s.mu.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
	if started {
		<-s.cron.Stop().Done()
	}
	logging.DebugLog("scheduler closed", logging.KeyCount, len(tasks))
}

func (s *Scheduler) track(t *task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.tasks[t] = struct{}{}
	return true
}

// forget removes t and reports whether it was still pending.
func (s *Scheduler) forget(t *task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t]; !ok {
		return false
	}
	delete(s.tasks, t)
	return true
}
