package quote

import (
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/readeck/go-readability"
)

// Author pages bury the biography between navigation and book listings, so
// readability is used to isolate the main content block.

const maxBioLength = 2000

type BioExtractor struct{}

func NewBioExtractor() *BioExtractor {
	return &BioExtractor{}
}

func (e *BioExtractor) Run(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("HTML data is empty")
	}

	article, err := readability.FromReader(strings.NewReader(string(data)), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract bio: %w", err)
	}

	bio := collapseSpace(article.TextContent)
	if bio == "" {
		return "", fmt.Errorf("no bio extracted from HTML data")
	}

	if runes := []rune(bio); len(runes) > maxBioLength {
		bio = strings.TrimSpace(string(runes[:maxBioLength])) + "..."
	}

	slog.Debug("Bio extracted successfully",
		"title", article.Title,
		"bio_length", len(bio))

	return bio, nil
}
