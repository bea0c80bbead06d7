// Package parser turns user input into start times and threshold kinds.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/arbeitszeit/internal/model"
)

var (
	// clockRegex matches "8", "08", "8:30", "08.30" and "8h30".
	clockRegex = regexp.MustCompile(`^(\d{1,2})(?:[:.h](\d{2}))?$`)

	// compactRegex matches "830" and "0830".
	compactRegex = regexp.MustCompile(`^(\d{3,4})$`)
)

// ParseClockTime parses a start time. It accepts 24-hour clock notation
// ("08:00", "8:00", "0800", "8"), "now", and natural language expressions
// such as "8am" or "2 hours ago" resolved relative to now.
func ParseClockTime(input string, now time.Time) (model.ClockTime, error) {
	raw := input
	input = strings.TrimSpace(input)
	if input == "" {
		return model.ClockTime{}, NewTimeParseError(raw, "start time is empty", ClockExamples...)
	}

	if strings.EqualFold(input, "now") {
		return model.ClockTimeOf(now), nil
	}

	if match := clockRegex.FindStringSubmatch(input); match != nil {
		return clockFromParts(raw, match[1], match[2])
	}

	if compactRegex.MatchString(input) {
		split := len(input) - 2
		return clockFromParts(raw, input[:split], input[split:])
	}

	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return model.ClockTime{}, NewTimeParseError(raw, "not a recognised time", ClockExamples...)
	}

	return model.ClockTimeOf(result.Time.In(now.Location())), nil
}

func clockFromParts(raw, hourStr, minuteStr string) (model.ClockTime, error) {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}

	ct, err := model.NewClockTime(hour, minute)
	if err != nil {
		return model.ClockTime{}, NewTimeParseError(raw, err.Error(), ClockExamples...)
	}
	return ct, nil
}
