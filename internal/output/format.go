package output

import "strings"

// OutputFormat specifies how a run is reported on stdout.
type OutputFormat string

const (
	// FormatText writes one status block per file plus a summary line.
	FormatText OutputFormat = "text"

	// FormatJSON writes a single JSON report.
	FormatJSON OutputFormat = "json"

	// FormatYAML writes a single YAML report.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The empty string maps to FormatText; unknown values are returned as-is
// so callers can report them via IsValid.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return OutputFormat(s)
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "json", "yaml"}
}
