package quote

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Quotes at or below this length are noise (page furniture, truncated
// fragments) and are dropped.
const minQuoteLength = 10

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Run parses a listing page and extracts all quote records found in it.
// Malformed blocks are skipped individually, so a partially broken page
// still yields the records that could be read.
func (e *Extractor) Run(data []byte) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page markup: %w", err)
	}

	page := &Page{}
	doc.Find("div.quote").Each(func(_ int, block *goquery.Selection) {
		if record, ok := e.extractRecord(block); ok {
			page.Records = append(page.Records, record)
		}
	})

	page.HasNext = doc.Find("a.next_page").Length() > 0

	return page, nil
}

func (e *Extractor) extractRecord(block *goquery.Selection) (Record, bool) {
	body := block.Find("div.quoteText").First()
	if body.Length() == 0 {
		return Record{}, false
	}

	text := CleanText(e.bodyText(body))
	if utf8.RuneCountInString(text) <= minQuoteLength {
		return Record{}, false
	}

	record := Record{
		Author:    e.extractAuthor(block),
		Text:      text,
		Tags:      e.extractTags(block),
		Likes:     e.extractLikes(block),
		ImageURL:  block.Find("img").First().AttrOr("src", ""),
		AuthorURL: e.extractAuthorURL(block),
	}
	record.Fingerprint = Fingerprint(record.Author, record.Text)

	return record, true
}

// bodyText returns the quote body with the attribution markup removed. The
// attribution (author name and optional work title) is nested inside the
// same element as the body text, so it is stripped structurally instead of
// guessing at a split character inside the text.
func (e *Extractor) bodyText(body *goquery.Selection) string {
	clone := body.Clone()
	clone.Find(".authorOrTitle, script").Remove()
	return clone.Text()
}

func (e *Extractor) extractAuthor(block *goquery.Selection) string {
	attribution := block.Find("span.authorOrTitle").First()
	if attribution.Length() == 0 {
		return "Unknown"
	}
	return CleanAuthor(attribution.Text())
}

func (e *Extractor) extractTags(block *goquery.Selection) []string {
	footer := block.Find("div.greyText").First()
	if footer.Length() == 0 {
		return nil
	}

	var tags []string
	footer.Find("a").Each(func(_ int, anchor *goquery.Selection) {
		tags = append(tags, anchor.Text())
	})
	if len(tags) > 0 {
		return CleanTags(tags)
	}

	// Older markup carries the tag list as plain comma separated text.
	raw := strings.TrimSpace(footer.Text())
	raw = strings.TrimPrefix(raw, "tags:")
	return CleanTags(strings.Split(raw, ","))
}

func (e *Extractor) extractLikes(block *goquery.Selection) int {
	label := strings.TrimSpace(block.Find("div.right").First().Text())
	value, found := strings.CutSuffix(label, "likes")
	if !found {
		value, found = strings.CutSuffix(label, "like")
		if !found {
			return 0
		}
	}

	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	likes, err := strconv.Atoi(value)
	if err != nil || likes < 0 {
		return 0
	}
	return likes
}

func (e *Extractor) extractAuthorURL(block *goquery.Selection) string {
	if href := block.Find("a.leftAlignedImage").First().AttrOr("href", ""); href != "" {
		return href
	}
	return block.Find(`a[href*="/author/show/"]`).First().AttrOr("href", "")
}
