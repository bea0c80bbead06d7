package runtime

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/output"
	"github.com/manav03panchal/arbeitszeit/internal/parser"
)

// Error codes reported in JSON error responses.
const (
	CodeInvalidInput = "invalid_input"
	CodeSystemError  = "system_error"
	CodeError        = "error"
)

// ErrorCode maps an error to its JSON error code.
func ErrorCode(err error) string {
	switch errors.Classify(err) {
	case errors.CategoryUser:
		return CodeInvalidInput
	case errors.CategorySystem:
		return CodeSystemError
	default:
		return CodeError
	}
}

// FormatError formats an error with its suggestion and examples. Start
// time parse errors list the accepted formats instead of commands.
func FormatError(err error) string {
	var tpe *parser.TimeParseError
	if stderrors.As(err, &tpe) && len(tpe.Examples) > 0 {
		msg := strings.TrimRight(tpe.FormatWithExamples(), "\n")
		if suggestion := errors.GetSuggestion(err); suggestion != "" {
			msg += "\n\nTry: " + suggestion
		}
		return msg
	}

	msg := errors.FormatByCategory(err)
	if examples := errors.GetExamples(err); len(examples) > 0 {
		msg += "\n\nExamples:"
		for _, ex := range examples {
			msg += "\n  " + ex
		}
	}
	return msg
}

// ReportError writes err in the output format of f. JSON errors go to
// f's writer so scripts can parse them; other formats go to stderr, with
// the full error chain when debug is set.
func ReportError(f *output.Formatter, stderr io.Writer, err error, debug bool) {
	if err == nil {
		return
	}
	if f != nil && f.Format == output.FormatJSON {
		jf := output.NewJSONFormatter(f)
		if jerr := jf.PrintError("error", ErrorCode(err), err.Error(), errors.GetSuggestion(err)); jerr == nil {
			return
		}
	}
	if debug {
		fmt.Fprint(stderr, errors.FormatDebugError(err))
		return
	}
	fmt.Fprintln(stderr, "Error: "+FormatError(err))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// RequireTerminal returns a SystemError when f is not a terminal.
func RequireTerminal(f *os.File) error {
	if IsTerminal(f) {
		return nil
	}
	return errors.NewSystemErrorWithOp("open terminal",
		"the interactive calculator needs a terminal", errors.ErrNotATerminal)
}

// TerminalWidth returns the width of the terminal behind f, or fallback
// when it cannot be determined.
func TerminalWidth(f *os.File, fallback int) int {
	if !IsTerminal(f) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
