package report

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/yamlwhisperer/cli/internal/output"
	"github.com/yamlwhisperer/cli/internal/validate"
)

// Report is the machine-readable form of a run.
type Report struct {
	Valid  bool         `json:"valid"`
	Total  int          `json:"total"`
	Counts Counts       `json:"counts"`
	Files  []FileReport `json:"files"`
}

// Counts tallies results per outcome.
type Counts struct {
	Valid       int `json:"valid"`
	SyntaxError int `json:"syntaxError"`
	ReadError   int `json:"readError"`
}

// FileReport is the result for one file. Message carries the full,
// untruncated error text.
type FileReport struct {
	Path      string `json:"path"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Documents int    `json:"documents,omitempty"`
}

// StructuredReporter buffers results and writes a single report at the end.
type StructuredReporter struct {
	format output.OutputFormat
	w      io.Writer
}

// NewStructured creates a StructuredReporter for FormatJSON or FormatYAML.
func NewStructured(format output.OutputFormat, w io.Writer) *StructuredReporter {
	return &StructuredReporter{format: format, w: w}
}

// Start is a no-op; structured output is written in one piece.
func (s *StructuredReporter) Start() {}

// File is a no-op; results are taken from the summary.
func (s *StructuredReporter) File(validate.Result) {}

// Finish writes the report.
func (s *StructuredReporter) Finish(summary *Summary) error {
	rep := Build(summary)

	switch s.format {
	case output.FormatJSON:
		enc := json.NewEncoder(s.w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case output.FormatYAML:
		data, err := yaml.Marshal(rep)
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		_, err = s.w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", s.format)
	}
}

// Build converts a summary into a Report.
func Build(summary *Summary) Report {
	rep := Report{
		Valid: summary.AllValid(),
		Total: summary.Total(),
		Counts: Counts{
			Valid:       summary.Valid,
			SyntaxError: summary.SyntaxErrors,
			ReadError:   summary.ReadErrors,
		},
		Files: make([]FileReport, 0, len(summary.Results)),
	}

	for _, res := range summary.Results {
		fr := FileReport{
			Path:      res.Path,
			Status:    res.Outcome.String(),
			Documents: res.Documents,
		}
		if res.Err != nil {
			fr.Message = res.Err.Error()
		}
		rep.Files = append(rep.Files, fr)
	}

	return rep
}
