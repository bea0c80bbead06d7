package model

import (
	"fmt"
	"time"
)

// Countdown is a live countdown toward one threshold's target time.
type Countdown struct {
	ID         string        `json:"id"`
	Kind       ThresholdKind `json:"kind"`
	TargetTime ClockTime     `json:"target_time"`
	StartAt    time.Time     `json:"start_at"`
	TargetAt   time.Time     `json:"target_at"`
	Remaining  time.Duration `json:"remaining"`
	Finished   bool          `json:"finished"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Update recomputes the remaining duration at now. Once finished a
// countdown stays finished. It reports whether this call finished it.
func (c *Countdown) Update(now time.Time) bool {
	if c.Finished {
		c.Remaining = 0
		return false
	}
	diff := c.TargetAt.Sub(now)
	if diff <= 0 {
		c.Remaining = 0
		c.Finished = true
		return true
	}
	c.Remaining = diff.Truncate(time.Second)
	return false
}

// Total returns the span from the work start the countdown was created
// for to its target, or zero when the start is unknown.
func (c *Countdown) Total() time.Duration {
	if c.StartAt.IsZero() || !c.TargetAt.After(c.StartAt) {
		return 0
	}
	return c.TargetAt.Sub(c.StartAt)
}

// HMS splits the remaining duration into hours, minutes and seconds.
func (c *Countdown) HMS() (hours, minutes, seconds int) {
	return SplitDuration(c.Remaining)
}

// Display renders the remaining duration as HH:MM:SS.
func (c *Countdown) Display() string {
	return FormatHMS(c.Remaining)
}

// SplitDuration floors d to whole seconds and splits it. Negative
// durations count as zero.
func SplitDuration(d time.Duration) (hours, minutes, seconds int) {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return total / 3600, (total % 3600) / 60, total % 60
}

// FormatHMS renders d as zero-padded HH:MM:SS.
func FormatHMS(d time.Duration) string {
	h, m, s := SplitDuration(d)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
