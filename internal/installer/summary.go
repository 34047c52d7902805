package installer

import "github.com/gabrielgad/crab/internal/classify"

// Failure pairs a failed tool with its classified reason.
type Failure struct {
	Tool   string
	Reason classify.Category
}

// Summary aggregates a run's outcomes. Installed counts fresh installs only:
// tools that were already on PATH land in Skipped and never enter the
// installed tally.
type Summary struct {
	Installed int
	Skipped   int
	Failures  []Failure
}

// Failed returns the number of failed tools.
func (s Summary) Failed() int {
	return len(s.Failures)
}

// Summarize folds outcomes into a Summary. Failures keep encounter order.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case Installed:
			s.Installed++
		case AlreadyPresent:
			s.Skipped++
		case Failed:
			s.Failures = append(s.Failures, Failure{Tool: o.Tool.Name, Reason: o.Reason})
		}
	}
	return s
}
