package report

import "github.com/yamlwhisperer/cli/internal/validate"

// Summary accumulates the results of one run in validation order.
type Summary struct {
	Results []validate.Result

	Valid        int
	SyntaxErrors int
	ReadErrors   int
}

// Add records a result.
func (s *Summary) Add(r validate.Result) {
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case validate.Valid:
		s.Valid++
	case validate.SyntaxError:
		s.SyntaxErrors++
	case validate.ReadError:
		s.ReadErrors++
	}
}

// Total returns the number of files attempted.
func (s *Summary) Total() int {
	return len(s.Results)
}

// Failed returns the number of files that were not valid.
func (s *Summary) Failed() int {
	return s.SyntaxErrors + s.ReadErrors
}

// AllValid is the aggregate outcome: true iff every attempted file was
// valid. A run that attempted no files is valid.
func (s *Summary) AllValid() bool {
	return s.Failed() == 0
}
