package model

import (
	"fmt"
	"strings"
	"time"
)

// ThresholdKind identifies one of the two work-duration policies.
type ThresholdKind int

const (
	ThresholdMinimum ThresholdKind = iota
	ThresholdMaximum
)

// ThresholdKinds lists every kind in display order.
var ThresholdKinds = []ThresholdKind{ThresholdMinimum, ThresholdMaximum}

// String returns the short name used on the command line.
func (k ThresholdKind) String() string {
	switch k {
	case ThresholdMinimum:
		return "min"
	case ThresholdMaximum:
		return "max"
	default:
		return "unknown"
	}
}

// Valid reports whether k is a known kind.
func (k ThresholdKind) Valid() bool {
	return k == ThresholdMinimum || k == ThresholdMaximum
}

// MarshalText implements encoding.TextMarshaler.
func (k ThresholdKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid threshold kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ThresholdKind) UnmarshalText(text []byte) error {
	parsed, ok := ParseThresholdKind(string(text))
	if !ok {
		return fmt.Errorf("invalid threshold kind %q", string(text))
	}
	*k = parsed
	return nil
}

// ParseThresholdKind accepts min, minimum, max and maximum, ignoring case.
func ParseThresholdKind(s string) (ThresholdKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimum":
		return ThresholdMinimum, true
	case "max", "maximum":
		return ThresholdMaximum, true
	}
	return 0, false
}

// Threshold is a work-duration policy: required work plus break.
type Threshold struct {
	Kind  ThresholdKind `json:"kind"`
	Work  time.Duration `json:"work"`
	Break time.Duration `json:"break"`
}

// Offset is the total time from start of work to the threshold end.
func (t Threshold) Offset() time.Duration {
	return t.Work + t.Break
}

// Label is the card title, e.g. "Minimum working time (7.6h)".
func (t Threshold) Label() string {
	name := "Minimum"
	if t.Kind == ThresholdMaximum {
		name = "Maximum"
	}
	return fmt.Sprintf("%s working time (%sh)", name, formatHours(t.Work))
}

// BreakNote is the card subtitle, e.g. "incl. 30 min break".
func (t Threshold) BreakNote() string {
	return fmt.Sprintf("incl. %d min break", int(t.Break/time.Minute))
}

// formatHours renders 7h36m as 7.6 and 9h as 9.
func formatHours(d time.Duration) string {
	s := fmt.Sprintf("%.2f", d.Hours())
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// DefaultThresholds returns the minimum and maximum policies.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Kind: ThresholdMinimum, Work: DefaultMinimumWork, Break: DefaultBreak},
		{Kind: ThresholdMaximum, Work: DefaultMaximumWork, Break: DefaultBreak},
	}
}
