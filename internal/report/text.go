package report

import (
	"io"
	"strings"

	"github.com/yamlwhisperer/cli/internal/output"
	"github.com/yamlwhisperer/cli/internal/validate"
)

// explanationIndent prefixes every line of an annotated excerpt.
const explanationIndent = "     "

// TextReporter writes one status block per file and a closing summary.
type TextReporter struct {
	out    *errWriter
	styles output.Styles
}

// NewText creates a TextReporter writing to w.
func NewText(w io.Writer) *TextReporter {
	return &TextReporter{
		out:    &errWriter{w: w},
		styles: output.NewStyles(w),
	}
}

// Start writes the banner followed by an empty line.
func (t *TextReporter) Start() {
	t.out.println(Banner)
	t.out.println()
}

// File writes the status block for one result.
func (t *TextReporter) File(res validate.Result) {
	path := t.styles.Noun.Render(res.Path)
	status := t.styles.Status(statusName(res.Outcome))

	switch res.Outcome {
	case validate.Valid:
		t.out.printf("%s %s: %s\n", MarkerValid, path, status.Render(ValidText))
	case validate.SyntaxError:
		t.out.printf("%s %s: %s\n", MarkerSyntax, path, status.Render(SyntaxText))
		t.out.printf("   Error: %s...\n", res.Message())
		if res.Explanation != "" {
			for _, line := range strings.Split(strings.TrimRight(res.Explanation, "\n"), "\n") {
				t.out.println(explanationIndent + line)
			}
		}
	default:
		t.out.printf("%s %s: %s %s\n", MarkerRead, path, status.Render(ReadText), res.Message())
	}
}

// Finish writes the separator and the summary line.
func (t *TextReporter) Finish(summary *Summary) error {
	t.out.println()
	t.out.println(t.styles.Separator())
	if summary.AllValid() {
		t.out.println(t.styles.Summary.Render(SuccessSummary))
	} else {
		t.out.println(t.styles.Summary.Render(FailureSummary))
	}
	return t.out.err
}

func statusName(o validate.Outcome) string {
	switch o {
	case validate.Valid:
		return output.StatusValid
	case validate.SyntaxError:
		return output.StatusSyntaxError
	default:
		return output.StatusReadError
	}
}
