// Package countdown keeps the live countdowns toward threshold end times.
package countdown

import (
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// Registry holds at most one countdown per threshold kind. It is not safe
// for concurrent use; the owning session serializes access.
type Registry struct {
	byKind map[model.ThresholdKind]*model.Countdown
	newID  func() string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[model.ThresholdKind]*model.Countdown, len(model.ThresholdKinds)),
		newID:  uuid.NewString,
	}
}

// Start creates a countdown for kind toward target unless one already
// exists. startAt is the work start the target was projected from. The remaining time is computed immediately from now. It returns
// the countdown for kind and whether it was created by this call.
func (r *Registry) Start(kind model.ThresholdKind, target model.ClockTime, startAt, targetAt, now time.Time) (*model.Countdown, bool) {
	if existing, ok := r.byKind[kind]; ok {
		return existing, false
	}

	cd := &model.Countdown{
		ID:         r.newID(),
		Kind:       kind,
		TargetTime: target,
		StartAt:    startAt,
		TargetAt:   targetAt,
		CreatedAt:  now,
	}
	cd.Update(now)
	r.byKind[kind] = cd
	return cd, true
}

// Tick recomputes every countdown at now. It returns the countdowns that
// finished during this tick.
func (r *Registry) Tick(now time.Time) []*model.Countdown {
	var finished []*model.Countdown
	for _, kind := range model.ThresholdKinds {
		cd, ok := r.byKind[kind]
		if !ok {
			continue
		}
		if cd.Update(now) {
			finished = append(finished, cd)
		}
	}
	return finished
}

// Delete removes the countdown with id. It reports whether one was removed.
func (r *Registry) Delete(id string) bool {
	for kind, cd := range r.byKind {
		if cd.ID == id {
			delete(r.byKind, kind)
			return true
		}
	}
	return false
}

// Clear removes every countdown.
func (r *Registry) Clear() {
	clear(r.byKind)
}

// Get returns the countdown for kind, if any.
func (r *Registry) Get(kind model.ThresholdKind) (*model.Countdown, bool) {
	cd, ok := r.byKind[kind]
	return cd, ok
}

// Has reports whether a countdown for kind exists.
func (r *Registry) Has(kind model.ThresholdKind) bool {
	_, ok := r.byKind[kind]
	return ok
}

// List returns the countdowns ordered minimum first.
func (r *Registry) List() []*model.Countdown {
	list := make([]*model.Countdown, 0, len(r.byKind))
	for _, kind := range model.ThresholdKinds {
		if cd, ok := r.byKind[kind]; ok {
			list = append(list, cd)
		}
	}
	return list
}

// Len returns the number of countdowns.
func (r *Registry) Len() int {
	return len(r.byKind)
}

// Empty reports whether no countdown is running, i.e. the refresh tick
// can stop.
func (r *Registry) Empty() bool {
	return len(r.byKind) == 0
}
