package tui

import (
	"strings"

	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// TimeInput is a fixed HH:MM field filled digit by digit.
type TimeInput struct {
	digits []byte
}

// Push appends a digit. It reports false when the field is full or r is
// not a digit.
func (in *TimeInput) Push(r rune) bool {
	if r < '0' || r > '9' || in.Complete() {
		return false
	}
	in.digits = append(in.digits, byte(r))
	return true
}

// Backspace removes the last digit.
func (in *TimeInput) Backspace() bool {
	if len(in.digits) == 0 {
		return false
	}
	in.digits = in.digits[:len(in.digits)-1]
	return true
}

// Clear empties the field.
func (in *TimeInput) Clear() {
	in.digits = in.digits[:0]
}

// Set fills the field from a clock time.
func (in *TimeInput) Set(ct model.ClockTime) {
	in.digits = []byte(strings.Replace(ct.String(), ":", "", 1))
}

// Empty reports whether no digit has been entered.
func (in *TimeInput) Empty() bool {
	return len(in.digits) == 0
}

// Complete reports whether all four digits are present.
func (in *TimeInput) Complete() bool {
	return len(in.digits) == 4
}

// Value returns the entered time once the field is complete. An out of
// range entry is a UserError carrying the start time suggestion.
func (in *TimeInput) Value() (model.ClockTime, bool, error) {
	if !in.Complete() {
		return model.ClockTime{}, false, nil
	}
	hour := int(in.digits[0]-'0')*10 + int(in.digits[1]-'0')
	minute := int(in.digits[2]-'0')*10 + int(in.digits[3]-'0')
	ct, err := model.NewClockTime(hour, minute)
	if err != nil {
		return model.ClockTime{}, false, errors.InvalidInput(errors.ErrInvalidClockTime, "start", in.String())
	}
	return ct, true, nil
}

// Restart empties the field and enters r as its first digit.
func (in *TimeInput) Restart(r rune) bool {
	in.Clear()
	return in.Push(r)
}

// String renders the field with placeholders, e.g. "08:3_".
func (in *TimeInput) String() string {
	slots := []byte("__:__")
	positions := []int{0, 1, 3, 4}
	for i, d := range in.digits {
		slots[positions[i]] = d
	}
	return string(slots)
}
