// Package clock abstracts wall-clock time so countdowns and scheduled
// tasks can be driven deterministically in tests.
package clock

import "time"

// Timer is a pending one-shot callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock provides the time operations used by the session and scheduler.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is the default Clock backed by the time package.
var Real Clock = realClock{}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
