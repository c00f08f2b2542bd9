// Package runner drives one validation run: classify each argument,
// validate its candidates in order and feed the results to a reporter.
package runner

import (
	"github.com/yamlwhisperer/cli/internal/discover"
	"github.com/yamlwhisperer/cli/internal/output"
	"github.com/yamlwhisperer/cli/internal/report"
	"github.com/yamlwhisperer/cli/internal/validate"
)

// Options configures a Runner.
type Options struct {
	// WarnSkipped logs a warning for arguments that yield no files.
	WarnSkipped bool
}

// Runner validates path arguments sequentially.
type Runner struct {
	validator *validate.Validator
	reporter  report.Reporter
	opts      Options
}

// New creates a Runner.
func New(v *validate.Validator, r report.Reporter, opts Options) *Runner {
	return &Runner{validator: v, reporter: r, opts: opts}
}

// Run validates every candidate of every path in argument order and
// returns the summary. Per-file failures never stop the run; the error
// is non-nil only when the report could not be written.
func (r *Runner) Run(paths []string) (*report.Summary, error) {
	summary := &report.Summary{}

	r.reporter.Start()
	for _, path := range paths {
		c := discover.ClassifyPath(path)
		r.logClassification(c)

		for _, file := range c.Files {
			summary.Add(r.validateFile(file))
		}
	}

	if err := r.reporter.Finish(summary); err != nil {
		return summary, err
	}
	return summary, nil
}

// ValidateFile validates a single file and reports it. It returns true
// iff the file is valid.
func (r *Runner) ValidateFile(path string) bool {
	return r.validateFile(path).OK()
}

func (r *Runner) validateFile(path string) validate.Result {
	res := r.validator.ValidateFile(path)
	r.reporter.File(res)

	log := output.FileLogger(path)
	if res.OK() {
		log.Debug("valid", "documents", res.Documents)
	} else {
		log.Debug("invalid", "outcome", res.Outcome, "error", res.Err)
	}
	return res
}

func (r *Runner) logClassification(c discover.Classification) {
	if len(c.Files) > 0 {
		output.Debug("classified path", "path", c.Path, "kind", c.Kind, "candidates", len(c.Files))
		return
	}
	if r.opts.WarnSkipped {
		output.Warn("path skipped", "path", c.Path, "reason", c.Reason)
		return
	}
	output.Debug("path skipped", "path", c.Path, "reason", c.Reason)
}
