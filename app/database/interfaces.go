package database

import (
	"time"
)

type QuoteRepository interface {
	// InsertQuote stores a quote and reports whether a row was actually
	// written; quotes whose fingerprint is already stored are ignored.
	InsertQuote(quote NewQuote) (bool, error)
	GetFingerprints() ([]string, error)

	GetQuotes(category string, search string, limit int, offset int) ([]Quote, error)
	GetQuoteCount(category string) (int, error)
	GetRandomQuote() (*Quote, error)
	GetCategories() ([]CategoryStat, error)
	GetStats() (Stats, error)
}

type AuthorRepository interface {
	UpsertAuthor(name, imageURL, profileURL string) error
	GetAuthor(name string) (*Author, error)
	GetAuthorCount() (int, error)
	GetBioStatusCounts() (map[string]int, error)

	GetAuthorsForEnrichment(limit int) ([]Author, error)
	UpdateAuthorBio(authorID int64, bio string, status string, extractedAt *time.Time, errorMsg string) error
}
