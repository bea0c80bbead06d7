// Package model defines the domain types of the work-time calculator:
// clock times, threshold policies, projections and countdowns.
package model

import "time"

// Default threshold policy. The minimum is 7.6 work hours, the maximum 9,
// each with the statutory 30 minute break on top.
const (
	DefaultMinimumWork = 7*time.Hour + 36*time.Minute
	DefaultMaximumWork = 9 * time.Hour
	DefaultBreak       = 30 * time.Minute
)
