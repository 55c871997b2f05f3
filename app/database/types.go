package database

import (
	"time"
)

const (
	BioStatusPending = "pending"
	BioStatusSuccess = "success"
	BioStatusFailed  = "failed"
	BioStatusSkipped = "skipped"
)

type Quote struct {
	ID          int64
	Fingerprint string
	Category    string
	Author      string
	Text        string
	Tags        []string
	Likes       int
	ImageURL    string
	AuthorURL   string
	Length      int // quote length in characters
	CreatedAt   time.Time
}

type Author struct {
	ID             int64
	Name           string
	ImageURL       string
	ProfileURL     string
	Bio            string
	BioStatus      string // pending, success, failed, skipped
	BioError       string
	BioExtractedAt *time.Time
	CreatedAt      time.Time
}

// NewQuote carries the fields of a scraped quote that are persisted on
// insert; the remaining Quote fields are assigned by the database.
type NewQuote struct {
	Fingerprint string
	Category    string
	Author      string
	Text        string
	Tags        []string
	Likes       int
	ImageURL    string
	AuthorURL   string
	Length      int
}

type CategoryStat struct {
	Category string
	Count    int
}

type Stats struct {
	Quotes     int
	Categories int
	Authors    int // distinct authors across stored quotes
}
