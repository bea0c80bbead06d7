package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// TimeParseError represents a start time parsing error with examples.
type TimeParseError struct {
	Input    string
	Message  string
	Examples []string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid start time '%s': %s", e.Input, e.Message)
}

// Unwrap lets callers match errors.ErrInvalidClockTime.
func (e *TimeParseError) Unwrap() error {
	return errors.ErrInvalidClockTime
}

// NewTimeParseError creates a new time parse error with examples.
func NewTimeParseError(input, message string, examples ...string) *TimeParseError {
	return &TimeParseError{
		Input:    input,
		Message:  message,
		Examples: examples,
	}
}

// FormatWithExamples returns the error message with example suggestions.
func (e *TimeParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// ClockExamples provides example start time formats.
var ClockExamples = []string{
	"08:00",
	"7:45",
	"0830",
	"now",
	"8am",
	"20 minutes ago",
}

// ParseThresholdKind parses "min" / "max" and their long forms, returning
// a UserError for anything else.
func ParseThresholdKind(input string) (model.ThresholdKind, error) {
	kind, ok := model.ParseThresholdKind(input)
	if !ok {
		return 0, errors.InvalidInput(errors.ErrInvalidThreshold, "kind", input)
	}
	return kind, nil
}
