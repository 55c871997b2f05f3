package tasks

import (
	"context"
)

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application to run the scrape as a bounded batch: tasks are
// enqueued up front, workers drain the queue, and Wait blocks until every task
// (including retries) has finished.
// Example usage:
//
//	scheduler := NewScheduler(3)
//	scheduler.Start()
//	scheduler.EnqueueTask(NewScrapeTagTask(...))
//	scheduler.Wait(ctx)
//	scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	Wait(ctx context.Context) error
	EnqueueTask(task TaskInterface) error
}

// CategoryResult summarizes one category's scrape for progress reporting.
type CategoryResult struct {
	Pages      int
	NewQuotes  int
	Duplicates int
	Filtered   int
	Failed     bool
	Note       string
}

// Reporter receives scrape progress events. Implemented by the terminal
// progress UI and by a plain logging fallback for non-interactive runs.
type Reporter interface {
	StartCategory(category string, plannedPages int)
	AdvancePage(category string, newQuotes int)
	FinishCategory(category string, result CategoryResult)
}
