package installer

import (
	"github.com/gabrielgad/crab/internal/catalog"
	"github.com/gabrielgad/crab/internal/classify"
)

// Status tags a per-tool outcome.
type Status int

const (
	Installed Status = iota
	AlreadyPresent
	Failed
)

// Outcome records what happened to one selected tool.
type Outcome struct {
	Tool   catalog.Tool
	Status Status
	Reason classify.Category // set when Status is Failed
}

// Progress receives per-tool events as the run advances. Implementations
// decide how to render; the orchestrator only reports what happened.
type Progress interface {
	Skipped(t catalog.Tool)
	Installing(t catalog.Tool)
	Installed(t catalog.Tool)
	Failed(t catalog.Tool, reason classify.Category)
}

// Run attempts each selected tool in order and returns one outcome per tool.
//
// A tool whose command is already on PATH is skipped without invoking cargo.
// A failed install is classified and recorded; it never stops the walk.
// Installs are strictly sequential, with no retries and no timeout.
func Run(selected []string, cat *catalog.Catalog, inst Installer, progress Progress) []Outcome {
	outcomes := make([]Outcome, 0, len(selected))

	for _, name := range selected {
		tool := cat.Get(name)
		if tool == nil {
			continue // selections are built from the catalog
		}

		if inst.Probe(tool.CommandName()) {
			progress.Skipped(*tool)
			outcomes = append(outcomes, Outcome{Tool: *tool, Status: AlreadyPresent})
			continue
		}

		progress.Installing(*tool)
		stderr, err := inst.Install(tool.CrateName())
		if err != nil {
			reason := classify.Classify(stderr)
			progress.Failed(*tool, reason)
			outcomes = append(outcomes, Outcome{Tool: *tool, Status: Failed, Reason: reason})
			continue
		}

		progress.Installed(*tool)
		outcomes = append(outcomes, Outcome{Tool: *tool, Status: Installed})
	}

	return outcomes
}
