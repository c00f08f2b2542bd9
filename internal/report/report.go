// Package report renders validation results: the line-oriented text
// stream and the structured json/yaml report.
package report

import (
	"fmt"
	"io"

	"github.com/yamlwhisperer/cli/internal/output"
	"github.com/yamlwhisperer/cli/internal/validate"
)

// Reporter receives the events of one run in order.
type Reporter interface {
	// Start is called once before any file is validated.
	Start()
	// File is called once per validated file.
	File(res validate.Result)
	// Finish is called once after the last file with the full summary.
	Finish(summary *Summary) error
}

// Fixed text of the line-oriented report.
const (
	Banner         = "🔍 Listening for YAML whispers..."
	ValidText      = "YAML is whispering sweet nothings (valid!)"
	SyntaxText     = "YAML is screaming about indentation!"
	ReadText       = "YAML is hiding!"
	SuccessSummary = "🎉 All YAML files are whispering peacefully!"
	FailureSummary = "💥 Some YAML files are screaming! Check above."
)

// Outcome markers.
const (
	MarkerValid  = "✅"
	MarkerSyntax = "🔴"
	MarkerRead   = "❓"
)

// New returns the reporter for format, writing to w.
func New(format output.OutputFormat, w io.Writer) (Reporter, error) {
	switch format {
	case output.FormatText:
		return NewText(w), nil
	case output.FormatJSON, output.FormatYAML:
		return NewStructured(format, w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// Usage writes the usage text shown when no paths are given.
func Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s <file1.yaml> [file2.yaml ...]\n", program)
	fmt.Fprintf(w, "Example: %s k8s/*.yaml\n", program)
	fmt.Fprintf(w, "Example: %s k8s/\n", program)
}

// errWriter remembers the first write error so callers can report it once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) println(a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, a...)
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}
