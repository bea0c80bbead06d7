package model

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day with minute precision. It carries
// no date or zone; arithmetic wraps around midnight.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewClockTime returns the clock time for hour:minute, or an error when
// either component is out of range.
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("minute %d out of range 0-59", minute)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ClockTimeOf truncates t to its local time of day.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// ClockTimeFromMinutes builds a clock time from minutes since midnight,
// wrapping into a single day.
func ClockTimeFromMinutes(m int) ClockTime {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return ClockTime{Hour: m / 60, Minute: m % 60}
}

// Minutes returns the number of minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Add returns c shifted by d, truncated to whole minutes, modulo 24h.
func (c ClockTime) Add(d time.Duration) ClockTime {
	return ClockTimeFromMinutes(c.Minutes() + int(d/time.Minute))
}

// On anchors c to the calendar day of day, in day's location.
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, day.Location())
}

// OnAfter anchors c shifted by d to the calendar day of day. The shift is
// applied on the wall clock, so the result reads c.Add(d) even across a
// daylight saving switch; minutes past midnight roll into the next day.
func (c ClockTime) OnAfter(day time.Time, d time.Duration) time.Time {
	y, m, dd := day.Date()
	return time.Date(y, m, dd, c.Hour, c.Minute+int(d/time.Minute), 0, 0, day.Location())
}

// Valid reports whether both components are in range.
func (c ClockTime) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// String renders the time as zero-padded 24-hour HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
