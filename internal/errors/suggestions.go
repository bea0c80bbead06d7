package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidClockTime:  "Use a 24-hour time like '08:00', '0800', '8' or an expression like 'now' or '8am'.",
	ErrInvalidThreshold:  "Use 'min' (7.6h + break) or 'max' (9h + break).",
	ErrNoStartTime:       "Enter a start time first.",
	ErrInvalidConfig:     "Check the config file with 'arbeitszeit config show'.",
	ErrInvalidDuration:   "Use Go duration syntax like '7h36m', '30m' or '1s'.",
	ErrNotATerminal:      "Run interactively in a terminal, or use 'arbeitszeit calc'.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// A UserError carries its own suggestion
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrInvalidClockTime: {
		"arbeitszeit calc 08:00",
		"arbeitszeit calc 7:45",
		"arbeitszeit calc now",
	},
	ErrInvalidThreshold: {
		"arbeitszeit countdown min --start 08:00",
		"arbeitszeit countdown max --start 08:00",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
