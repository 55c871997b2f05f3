package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/quote-comb/app/database"
	"github.com/lysyi3m/quote-comb/app/fetcher"
	"github.com/lysyi3m/quote-comb/app/quote"
)

// bioBatchSize bounds how many pending authors are claimed per repository
// query while the task works through the backlog.
const bioBatchSize = 25

type AuthorBiosTask struct {
	Task
	fetcher      *fetcher.Fetcher
	bioExtractor *quote.BioExtractor
	authorRepo   database.AuthorRepository
}

// NewAuthorBiosTask creates a task that enriches every author still marked
// pending with a short biography scraped from their profile page.
func NewAuthorBiosTask(fetcher *fetcher.Fetcher, bioExtractor *quote.BioExtractor, authorRepo database.AuthorRepository) *AuthorBiosTask {
	return &AuthorBiosTask{
		Task:         NewTask(TaskTypeAuthorBios, "authors"),
		fetcher:      fetcher,
		bioExtractor: bioExtractor,
		authorRepo:   authorRepo,
	}
}

func (t *AuthorBiosTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	successCount := 0
	errorCount := 0
	skippedCount := 0

	// Authors whose status update failed stay pending; remembering them
	// keeps the batch loop from refetching the same rows forever.
	seen := make(map[int64]bool)

	for {
		authors, err := t.authorRepo.GetAuthorsForEnrichment(bioBatchSize)
		if err != nil {
			return fmt.Errorf("failed to get authors for enrichment: %w", err)
		}

		progressed := false
		for _, author := range authors {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if seen[author.ID] {
				continue
			}
			seen[author.ID] = true
			progressed = true

			if author.ProfileURL == "" {
				skippedCount++
				if err := t.authorRepo.UpdateAuthorBio(author.ID, "", database.BioStatusSkipped, nil, "no profile URL"); err != nil {
					slog.Error("Failed to update author bio status", "author", author.Name, "error", err)
				}
				continue
			}

			err := t.extractBioForAuthor(ctx, author)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}

				slog.Warn("Failed to extract author bio", "author", author.Name, "url", author.ProfileURL, "error", err)
				errorCount++

				if err := t.authorRepo.UpdateAuthorBio(author.ID, "", database.BioStatusFailed, nil, err.Error()); err != nil {
					slog.Error("Failed to update author bio status", "author", author.Name, "error", err)
				}
			} else {
				successCount++
			}
		}

		if !progressed {
			break
		}
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"duration", t.GetDuration(),
		"success", successCount,
		"errors", errorCount,
		"skipped", skippedCount)

	return nil
}

func (t *AuthorBiosTask) extractBioForAuthor(ctx context.Context, author database.Author) error {
	data, err := t.fetcher.Fetch(ctx, author.ProfileURL, 1)
	if err != nil {
		return fmt.Errorf("failed to fetch author page: %w", err)
	}

	bio, err := t.bioExtractor.Run(data)
	if err != nil {
		return fmt.Errorf("failed to extract bio: %w", err)
	}

	now := time.Now().UTC()
	if err := t.authorRepo.UpdateAuthorBio(author.ID, bio, database.BioStatusSuccess, &now, ""); err != nil {
		return fmt.Errorf("failed to store author bio: %w", err)
	}

	slog.Debug("Bio extracted successfully", "author", author.Name, "url", author.ProfileURL, "bio_length", len(bio))
	return nil
}
