package validate

import "strings"

// Outcome is the per-file validation verdict.
type Outcome int

const (
	// Valid means the file parsed under safe-load rules.
	Valid Outcome = iota
	// SyntaxError means the parser rejected the contents.
	SyntaxError
	// ReadError means the file could not be opened, read or decoded.
	ReadError
)

// String returns the outcome name used in reports.
func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case SyntaxError:
		return "syntax-error"
	case ReadError:
		return "read-error"
	default:
		return "unknown"
	}
}

// Result is the outcome of validating one file.
type Result struct {
	// Path is the file as it was given to the validator.
	Path string

	// Outcome is the verdict.
	Outcome Outcome

	// Err is the underlying parse or read error (nil when valid).
	Err error

	// Documents is the number of documents parsed successfully.
	Documents int

	// Explanation is an annotated source excerpt for syntax errors, when
	// explanations are enabled and one could be produced.
	Explanation string
}

// OK reports whether the file is valid.
func (r Result) OK() bool {
	return r.Outcome == Valid
}

// Message returns the text shown after the status line: the truncated
// diagnostic for syntax errors, the raw error for read errors.
func (r Result) Message() string {
	switch {
	case r.Err == nil:
		return ""
	case r.Outcome == SyntaxError:
		return Diagnostic(r.Err.Error())
	default:
		return r.Err.Error()
	}
}

// diagnosticWidth caps diagnostics that carry no position marker.
const diagnosticWidth = 60

// Diagnostic shortens a raw parser message for terminal output: text
// before the first "line" if present, else the first 60 characters.
func Diagnostic(raw string) string {
	if i := strings.Index(raw, "line"); i >= 0 {
		return raw[:i]
	}
	runes := []rune(raw)
	if len(runes) > diagnosticWidth {
		return string(runes[:diagnosticWidth])
	}
	return raw
}
