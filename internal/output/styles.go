package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the valid outcome.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the read-error outcome.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the syntax-error outcome (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")
)

// Outcome status names shared by the text and structured reports.
const (
	StatusValid       = "valid"
	StatusSyntaxError = "syntax-error"
	StatusReadError   = "read-error"
)

// SeparatorWidth is the number of characters in the closing separator line.
const SeparatorWidth = 50

// Styles holds the semantic styles bound to one output writer. Writers
// that are not terminals get an ASCII profile, so rendering is a no-op.
type Styles struct {
	// Noun styles file paths.
	Noun lipgloss.Style

	// Dim styles structural chrome such as the separator.
	Dim lipgloss.Style

	// Summary styles the final summary line.
	Summary lipgloss.Style

	r *lipgloss.Renderer
}

// NewStyles creates styles that render for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Noun:    r.NewStyle().Foreground(ColorCyan),
		Dim:     r.NewStyle().Faint(true),
		Summary: r.NewStyle().Bold(true),
		r:       r,
	}
}

// Status returns the style for an outcome status. Unknown statuses
// return an unstyled default.
func (s Styles) Status(status string) lipgloss.Style {
	switch status {
	case StatusValid:
		return s.r.NewStyle().Foreground(ColorGreen)
	case StatusSyntaxError:
		return s.r.NewStyle().Bold(true).Foreground(ColorBoldRed)
	case StatusReadError:
		return s.r.NewStyle().Foreground(ColorYellow)
	default:
		return s.r.NewStyle()
	}
}

// Separator renders the closing separator line.
func (s Styles) Separator() string {
	return s.Dim.Render(strings.Repeat("=", SeparatorWidth))
}
