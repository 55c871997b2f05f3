package ui

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lysyi3m/quote-comb/app/tasks"
)

var _ RunReporter = (*Progress)(nil)

// Progress renders one live tracker per category plus an overall bar.
// Tracker units are listing pages; the message carries the running count of
// newly written quotes.
type Progress struct {
	writer progress.Writer

	mu       sync.Mutex
	trackers map[string]*progress.Tracker
	counts   map[string]int
	results  map[string]tasks.CategoryResult
}

func NewProgress(expected int) *Progress {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stdout)
	pw.SetAutoStop(false)
	pw.SetNumTrackersExpected(expected)
	pw.SetMessageLength(36)
	pw.SetTrackerLength(20)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.SetStyle(progress.StyleDefault)
	pw.Style().Visibility.TrackerOverall = true

	p := &Progress{
		writer:   pw,
		trackers: make(map[string]*progress.Tracker),
		counts:   make(map[string]int),
		results:  make(map[string]tasks.CategoryResult),
	}

	go pw.Render()

	return p
}

func (p *Progress) StartCategory(category string, plannedPages int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A retried task starts its category again; keep the original tracker
	if _, ok := p.trackers[category]; ok {
		return
	}

	tracker := &progress.Tracker{
		Message: category,
		Total:   int64(plannedPages),
		Units:   progress.UnitsDefault,
	}
	p.writer.AppendTracker(tracker)
	p.trackers[category] = tracker
}

func (p *Progress) AdvancePage(category string, newQuotes int) {
	p.mu.Lock()
	tracker, ok := p.trackers[category]
	p.counts[category] += newQuotes
	count := p.counts[category]
	p.mu.Unlock()

	if !ok {
		return
	}

	tracker.Increment(1)
	tracker.UpdateMessage(fmt.Sprintf("%s (%d new)", category, count))
}

func (p *Progress) FinishCategory(category string, result tasks.CategoryResult) {
	p.mu.Lock()
	tracker, ok := p.trackers[category]
	p.results[category] = result
	p.mu.Unlock()

	if !ok {
		return
	}

	message := fmt.Sprintf("%s (%d new)", category, result.NewQuotes)
	if result.Note != "" {
		message = fmt.Sprintf("%s (%d new, %s)", category, result.NewQuotes, result.Note)
	}
	tracker.UpdateMessage(message)

	if result.Failed {
		tracker.MarkAsErrored()
	} else {
		tracker.MarkAsDone()
	}
}

// Stop ends the live rendering and waits for the final frame to be drawn.
func (p *Progress) Stop() {
	p.writer.Stop()
	for p.writer.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}
}

func (p *Progress) RenderSummary() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.results) == 0 {
		return
	}

	categories := make([]string, 0, len(p.results))
	for category := range p.results {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Tag", "Pages", "New", "Duplicates", "Filtered", "Status"})

	var totalPages, totalNew, totalDuplicates, totalFiltered int
	for _, category := range categories {
		result := p.results[category]
		totalPages += result.Pages
		totalNew += result.NewQuotes
		totalDuplicates += result.Duplicates
		totalFiltered += result.Filtered
		t.AppendRow(table.Row{category, result.Pages, result.NewQuotes, result.Duplicates, result.Filtered, statusLabel(result)})
	}
	t.AppendFooter(table.Row{"Total", totalPages, totalNew, totalDuplicates, totalFiltered, ""})
	t.Render()
}

func (p *Progress) AllFailed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return allFailed(p.results)
}

func statusLabel(result tasks.CategoryResult) string {
	switch {
	case result.Failed && result.Note != "":
		return "failed: " + result.Note
	case result.Failed:
		return "failed"
	case result.Note != "":
		return "done (" + result.Note + ")"
	default:
		return "done"
	}
}

func allFailed(results map[string]tasks.CategoryResult) bool {
	if len(results) == 0 {
		return true
	}
	for _, result := range results {
		if !result.Failed {
			return false
		}
	}
	return true
}
