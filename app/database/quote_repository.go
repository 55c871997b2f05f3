package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// tagSeparator joins the tag list into a single column, mirroring the
// format used in the CSV export.
const tagSeparator = "; "

const quoteColumns = `id, fingerprint, category, author, quote, tags, likes, image_url, author_url, length, created_at`

// quoteRepository handles database operations for archived quotes
type quoteRepository struct {
	db *DB
}

var _ QuoteRepository = (*quoteRepository)(nil)

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *DB) QuoteRepository {
	return &quoteRepository{db: db}
}

// InsertQuote stores a quote in the archive. Quotes whose fingerprint is
// already present are silently ignored; the return value reports whether a
// row was written.
func (r *quoteRepository) InsertQuote(quote NewQuote) (bool, error) {
	result, err := r.db.Exec(`
		INSERT INTO quotes (
			fingerprint, category, author, quote, tags,
			likes, image_url, author_url, length, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (fingerprint) DO NOTHING
	`, quote.Fingerprint, quote.Category, quote.Author, quote.Text,
		strings.Join(quote.Tags, tagSeparator), quote.Likes,
		quote.ImageURL, quote.AuthorURL, quote.Length, time.Now().Unix())
	if err != nil {
		return false, fmt.Errorf("failed to store quote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return affected > 0, nil
}

// GetFingerprints returns the fingerprints of all archived quotes
func (r *quoteRepository) GetFingerprints() ([]string, error) {
	rows, err := r.db.Query(`SELECT fingerprint FROM quotes`)
	if err != nil {
		return nil, fmt.Errorf("failed to get fingerprints: %w", err)
	}
	defer rows.Close()

	var fingerprints []string
	for rows.Next() {
		var fingerprint string
		if err := rows.Scan(&fingerprint); err != nil {
			return nil, fmt.Errorf("failed to scan fingerprint row: %w", err)
		}
		fingerprints = append(fingerprints, fingerprint)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fingerprint rows: %w", err)
	}

	return fingerprints, nil
}

// GetQuotes returns archived quotes for a category, optionally narrowed by a
// case-insensitive search over quote text and author
func (r *quoteRepository) GetQuotes(category string, search string, limit int, offset int) ([]Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE category = ? COLLATE NOCASE`
	args := []interface{}{category}

	if search != "" {
		query += ` AND (quote LIKE ? OR author LIKE ?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotes: %w", err)
	}
	defer rows.Close()

	var quotes []Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote row: %w", err)
		}
		quotes = append(quotes, quote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote rows: %w", err)
	}

	return quotes, nil
}

// GetQuoteCount returns the number of archived quotes, scoped to a category
// when one is given
func (r *quoteRepository) GetQuoteCount(category string) (int, error) {
	var count int
	var err error

	if category == "" {
		err = r.db.QueryRow(`SELECT COUNT(*) FROM quotes`).Scan(&count)
	} else {
		err = r.db.QueryRow(`SELECT COUNT(*) FROM quotes WHERE category = ? COLLATE NOCASE`, category).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get quote count: %w", err)
	}

	return count, nil
}

// GetRandomQuote returns a single random quote, or nil when the archive is
// empty
func (r *quoteRepository) GetRandomQuote() (*Quote, error) {
	row := r.db.QueryRow(`SELECT ` + quoteColumns + ` FROM quotes ORDER BY RANDOM() LIMIT 1`)

	quote, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get random quote: %w", err)
	}

	return &quote, nil
}

// GetCategories returns the archived categories with their quote counts
func (r *quoteRepository) GetCategories() ([]CategoryStat, error) {
	rows, err := r.db.Query(`
		SELECT category, COUNT(*) AS count
		FROM quotes
		GROUP BY category
		ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var stats []CategoryStat
	for rows.Next() {
		var stat CategoryStat
		if err := rows.Scan(&stat.Category, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return stats, nil
}

// GetStats returns aggregate statistics about the archive
func (r *quoteRepository) GetStats() (Stats, error) {
	var stats Stats
	err := r.db.QueryRow(`
		SELECT
			COUNT(*) AS quotes,
			COUNT(DISTINCT category) AS categories,
			COUNT(DISTINCT author) AS authors
		FROM quotes
	`).Scan(&stats.Quotes, &stats.Categories, &stats.Authors)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuote(row rowScanner) (Quote, error) {
	var quote Quote
	var tags string
	var createdAt int64

	err := row.Scan(
		&quote.ID, &quote.Fingerprint, &quote.Category, &quote.Author,
		&quote.Text, &tags, &quote.Likes, &quote.ImageURL,
		&quote.AuthorURL, &quote.Length, &createdAt,
	)
	if err != nil {
		return Quote{}, err
	}

	if tags != "" {
		quote.Tags = strings.Split(tags, tagSeparator)
	}
	quote.CreatedAt = time.Unix(createdAt, 0).UTC()

	return quote, nil
}
