package database

import (
	"database/sql"
	"fmt"
	"time"
)

const authorColumns = `id, name, image_url, profile_url, bio, bio_status, bio_error, bio_extracted_at, created_at`

// authorRepository handles database operations for quote authors
type authorRepository struct {
	db *DB
}

var _ AuthorRepository = (*authorRepository)(nil)

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db *DB) AuthorRepository {
	return &authorRepository{db: db}
}

// UpsertAuthor records an author seen during scraping. Image and profile
// URLs only overwrite stored values when the incoming value is non-empty, so
// a quote block without an avatar does not erase a previously seen one.
func (r *authorRepository) UpsertAuthor(name, imageURL, profileURL string) error {
	_, err := r.db.Exec(`
		INSERT INTO authors (name, image_url, profile_url, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			image_url = CASE WHEN excluded.image_url != '' THEN excluded.image_url ELSE authors.image_url END,
			profile_url = CASE WHEN excluded.profile_url != '' THEN excluded.profile_url ELSE authors.profile_url END
	`, name, imageURL, profileURL, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert author: %w", err)
	}

	return nil
}

// GetAuthor returns a single author by name, or nil when unknown
func (r *authorRepository) GetAuthor(name string) (*Author, error) {
	row := r.db.QueryRow(`SELECT `+authorColumns+` FROM authors WHERE name = ? COLLATE NOCASE`, name)

	author, err := scanAuthor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &author, nil
}

// GetAuthorCount returns the total number of recorded authors
func (r *authorRepository) GetAuthorCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get author count: %w", err)
	}

	return count, nil
}

// GetBioStatusCounts returns the number of authors per bio extraction status
func (r *authorRepository) GetBioStatusCounts() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT bio_status, COUNT(*) FROM authors GROUP BY bio_status`)
	if err != nil {
		return nil, fmt.Errorf("failed to get bio status counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan bio status row: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bio status rows: %w", err)
	}

	return counts, nil
}

// GetAuthorsForEnrichment returns authors still waiting for bio extraction
func (r *authorRepository) GetAuthorsForEnrichment(limit int) ([]Author, error) {
	rows, err := r.db.Query(`
		SELECT `+authorColumns+`
		FROM authors
		WHERE bio_status = ?
		ORDER BY id
		LIMIT ?
	`, BioStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors for enrichment: %w", err)
	}
	defer rows.Close()

	var authors []Author
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author row: %w", err)
		}
		authors = append(authors, author)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author rows: %w", err)
	}

	return authors, nil
}

// UpdateAuthorBio records the outcome of a bio extraction attempt
func (r *authorRepository) UpdateAuthorBio(authorID int64, bio string, status string, extractedAt *time.Time, errorMsg string) error {
	var extracted sql.NullInt64
	if extractedAt != nil {
		extracted = sql.NullInt64{Int64: extractedAt.Unix(), Valid: true}
	}

	_, err := r.db.Exec(`
		UPDATE authors
		SET bio = ?, bio_status = ?, bio_extracted_at = ?, bio_error = ?
		WHERE id = ?
	`, bio, status, extracted, errorMsg, authorID)
	if err != nil {
		return fmt.Errorf("failed to update author bio: %w", err)
	}

	return nil
}

func scanAuthor(row rowScanner) (Author, error) {
	var author Author
	var extractedAt sql.NullInt64
	var createdAt int64

	err := row.Scan(
		&author.ID, &author.Name, &author.ImageURL, &author.ProfileURL,
		&author.Bio, &author.BioStatus, &author.BioError,
		&extractedAt, &createdAt,
	)
	if err != nil {
		return Author{}, err
	}

	if extractedAt.Valid {
		t := time.Unix(extractedAt.Int64, 0).UTC()
		author.BioExtractedAt = &t
	}
	author.CreatedAt = time.Unix(createdAt, 0).UTC()

	return author, nil
}
