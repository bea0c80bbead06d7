package model

import "time"

// Projection holds the end times computed for one start time. The target
// instants are anchored on the day the start time applies to, so a target
// past midnight falls on the following day.
type Projection struct {
	Start       ClockTime `json:"start"`
	MinEnd      ClockTime `json:"min_end"`
	MaxEnd      ClockTime `json:"max_end"`
	StartAt     time.Time `json:"start_at"`
	MinTargetAt time.Time `json:"min_target_at"`
	MaxTargetAt time.Time `json:"max_target_at"`
}

// End returns the projected end time for kind.
func (p Projection) End(kind ThresholdKind) ClockTime {
	if kind == ThresholdMaximum {
		return p.MaxEnd
	}
	return p.MinEnd
}

// TargetAt returns the absolute target instant for kind.
func (p Projection) TargetAt(kind ThresholdKind) time.Time {
	if kind == ThresholdMaximum {
		return p.MaxTargetAt
	}
	return p.MinTargetAt
}
