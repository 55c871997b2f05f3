package ui

import (
	"log/slog"
	"sync"

	"github.com/lysyi3m/quote-comb/app/tasks"
)

var _ RunReporter = (*LogReporter)(nil)

// LogReporter reports scrape progress through the structured log, for runs
// without an interactive terminal.
type LogReporter struct {
	mu      sync.Mutex
	results map[string]tasks.CategoryResult
}

func NewLogReporter() *LogReporter {
	return &LogReporter{
		results: make(map[string]tasks.CategoryResult),
	}
}

func (r *LogReporter) StartCategory(category string, plannedPages int) {
	slog.Info("Category started", "category", category, "planned_pages", plannedPages)
}

func (r *LogReporter) AdvancePage(category string, newQuotes int) {
	slog.Debug("Page scraped", "category", category, "new", newQuotes)
}

func (r *LogReporter) FinishCategory(category string, result tasks.CategoryResult) {
	r.mu.Lock()
	r.results[category] = result
	r.mu.Unlock()

	if result.Failed {
		slog.Error("Category failed", "category", category, "note", result.Note)
		return
	}

	slog.Info("Category finished",
		"category", category,
		"pages", result.Pages,
		"new", result.NewQuotes,
		"duplicates", result.Duplicates,
		"filtered", result.Filtered)
}

func (r *LogReporter) Stop() {}

func (r *LogReporter) RenderSummary() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var totalNew, totalDuplicates, totalFiltered int
	for _, result := range r.results {
		totalNew += result.NewQuotes
		totalDuplicates += result.Duplicates
		totalFiltered += result.Filtered
	}

	slog.Info("Scrape finished",
		"categories", len(r.results),
		"new", totalNew,
		"duplicates", totalDuplicates,
		"filtered", totalFiltered)
}

func (r *LogReporter) AllFailed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return allFailed(r.results)
}
