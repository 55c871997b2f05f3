package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"unicode/utf8"

	"github.com/lysyi3m/quote-comb/app/catalog"
	"github.com/lysyi3m/quote-comb/app/database"
	"github.com/lysyi3m/quote-comb/app/export"
	"github.com/lysyi3m/quote-comb/app/fetcher"
	"github.com/lysyi3m/quote-comb/app/quote"
)

type ScrapeTagTask struct {
	Task
	TagCategory catalog.Category
	pageLimit   int
	fetcher     *fetcher.Fetcher
	extractor   *quote.Extractor
	filterer    *quote.Filterer
	writer      *export.Writer
	quoteRepo   database.QuoteRepository
	authorRepo  database.AuthorRepository
	reporter    Reporter
}

// NewScrapeTagTask creates a task that scrapes one tag listing into its
// category file. pageLimit caps how many listing pages are visited and must
// be at least 1. quoteRepo and authorRepo may be nil when the archive is
// disabled.
func NewScrapeTagTask(category catalog.Category, pageLimit int, fetcher *fetcher.Fetcher, extractor *quote.Extractor, filterer *quote.Filterer, writer *export.Writer, quoteRepo database.QuoteRepository, authorRepo database.AuthorRepository, reporter Reporter) *ScrapeTagTask {
	return &ScrapeTagTask{
		Task:        NewTask(TaskTypeScrapeTag, category.Name),
		TagCategory: category,
		pageLimit:   pageLimit,
		fetcher:     fetcher,
		extractor:   extractor,
		filterer:    filterer,
		writer:      writer,
		quoteRepo:   quoteRepo,
		authorRepo:  authorRepo,
		reporter:    reporter,
	}
}

func (t *ScrapeTagTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Fail fast when the output file cannot be opened; nothing scraped yet,
	// so the task is safe to retry.
	if err := t.writer.Open(t.TagCategory.Name); err != nil {
		if !t.CanRetry() {
			t.reporter.FinishCategory(t.TagCategory.Name, CategoryResult{Failed: true, Note: "output file unavailable"})
		}
		return fmt.Errorf("failed to open output file: %w", err)
	}

	t.reporter.StartCategory(t.TagCategory.Name, t.pageLimit)

	result := CategoryResult{}

	for page := 1; page <= t.pageLimit; page++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		data, err := t.fetcher.Fetch(ctx, t.TagCategory.URL, page)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			slog.Warn("Page fetch failed", "category", t.TagCategory.Name, "page", page, "error", err)
			result.Note = "request failed"
			break
		}

		pageData, err := t.extractor.Run(data)
		if err != nil {
			slog.Warn("Page parse failed", "category", t.TagCategory.Name, "page", page, "error", err)
			result.Note = "parse failed"
			break
		}

		if len(pageData.Records) == 0 {
			break
		}

		records := t.filterer.Run(pageData.Records, t.TagCategory.Filters)

		newOnPage := 0
		for _, record := range records {
			if record.IsFiltered {
				result.Filtered++
				continue
			}

			record.ImageURL = t.absoluteURL(record.ImageURL)
			record.AuthorURL = t.absoluteURL(record.AuthorURL)

			written, err := t.writer.Write(t.TagCategory.Name, record)
			if err != nil {
				if !t.CanRetry() {
					result.Failed = true
					result.Note = "write failed"
					t.reporter.FinishCategory(t.TagCategory.Name, result)
				}
				return fmt.Errorf("failed to write quote: %w", err)
			}
			if !written {
				result.Duplicates++
				continue
			}

			result.NewQuotes++
			newOnPage++

			t.archiveQuote(record)
			t.recordAuthor(record)
		}

		result.Pages++
		t.reporter.AdvancePage(t.TagCategory.Name, newOnPage)

		if !pageData.HasNext {
			break
		}
	}

	// A category that produced no pages at all counts as failed; a category
	// cut short mid-run keeps what it scraped and carries the note.
	if result.Note != "" && result.Pages == 0 {
		result.Failed = true
	}

	t.reporter.FinishCategory(t.TagCategory.Name, result)

	slog.Info("Task completed",
		"type", "ScrapeTag",
		"category", t.TagCategory.Name,
		"duration", t.GetDuration(),
		"pages", result.Pages,
		"new", result.NewQuotes,
		"duplicates", result.Duplicates,
		"filtered", result.Filtered)

	return nil
}

// archiveQuote mirrors a freshly written quote into the database archive.
// Archive errors never interrupt the scrape; the CSV remains the primary
// output.
func (t *ScrapeTagTask) archiveQuote(record quote.Record) {
	if t.quoteRepo == nil {
		return
	}

	_, err := t.quoteRepo.InsertQuote(database.NewQuote{
		Fingerprint: record.Fingerprint,
		Category:    quote.NormalizeCategory(t.TagCategory.Name),
		Author:      record.Author,
		Text:        record.Text,
		Tags:        record.Tags,
		Likes:       record.Likes,
		ImageURL:    record.ImageURL,
		AuthorURL:   record.AuthorURL,
		Length:      utf8.RuneCountInString(record.Text),
	})
	if err != nil {
		slog.Warn("Failed to archive quote", "category", t.TagCategory.Name, "author", record.Author, "error", err)
	}
}

// recordAuthor registers the quote's author for later bio enrichment.
func (t *ScrapeTagTask) recordAuthor(record quote.Record) {
	if t.authorRepo == nil {
		return
	}
	if record.Author == "" || record.Author == "Unknown" {
		return
	}

	if err := t.authorRepo.UpsertAuthor(record.Author, record.ImageURL, record.AuthorURL); err != nil {
		slog.Warn("Failed to record author", "author", record.Author, "error", err)
	}
}

// absoluteURL resolves a possibly relative URL against the category page URL.
func (t *ScrapeTagTask) absoluteURL(href string) string {
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return href
	}

	base, err := url.Parse(t.TagCategory.URL)
	if err != nil {
		return href
	}

	return base.ResolveReference(ref).String()
}
