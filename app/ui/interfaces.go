package ui

import (
	"github.com/lysyi3m/quote-comb/app/tasks"
)

// RunReporter extends the task progress sink with the lifecycle of a whole
// scrape run: stopping the display, printing the final summary and telling
// the caller whether anything succeeded.
type RunReporter interface {
	tasks.Reporter
	Stop()
	RenderSummary()
	AllFailed() bool
}

// NewReporter picks the live terminal progress display when the process is
// attached to a terminal and falls back to plain logging otherwise.
func NewReporter(expected int) RunReporter {
	if IsInteractive() {
		return NewProgress(expected)
	}
	return NewLogReporter()
}
