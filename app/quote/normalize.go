package quote

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Typographic punctuation is mapped to its ASCII counterpart before the
// Unicode fold so that curly quotes and dashes survive as plain characters
// instead of being dropped.
var punctuationReplacer = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"…", "...", // horizontal ellipsis
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	" ", " ", // no-break space
)

var authorNoisePattern = regexp.MustCompile(`[=,.-]+`)

// toASCII transliterates accented characters to their base form and drops
// anything that still falls outside the ASCII range. The transform chain is
// built per call because norm.NFKD carries internal state.
func toASCII(s string) string {
	s = punctuationReplacer.Replace(s)

	chain := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)

	folded, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return folded
}

func trimArtifacts(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		switch r {
		case '"', '\'', ',', '.', ':', ';', '-':
			return true
		}
		return unicode.IsSpace(r)
	})
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanText normalizes a quote body: transliterate to ASCII, strip stray
// punctuation from both edges and collapse internal whitespace. The result
// is stable under repeated application.
func CleanText(s string) string {
	s = toASCII(s)
	s = trimArtifacts(s)
	return collapseSpace(s)
}

// CleanAuthor normalizes an attribution string. Runs of separator characters
// left over from the page markup are replaced with a single space. An empty
// result maps to "Unknown" so every record carries an author.
func CleanAuthor(s string) string {
	s = toASCII(s)
	s = authorNoisePattern.ReplaceAllString(s, " ")
	s = trimArtifacts(s)
	s = collapseSpace(s)
	if s == "" {
		return "Unknown"
	}
	return s
}

// CleanTags trims each tag and drops empty entries. Tag casing is preserved.
func CleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = collapseSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return cleaned
}

// NormalizeCategory collapses whitespace and removes consecutive duplicate
// words, so "Love  Quotes Quotes" becomes "Love Quotes". Comparison is
// case insensitive but the surviving word keeps its original casing.
func NormalizeCategory(s string) string {
	words := strings.Fields(s)
	deduped := make([]string, 0, len(words))
	previous := ""
	for _, word := range words {
		if previous != "" && strings.EqualFold(word, previous) {
			continue
		}
		deduped = append(deduped, word)
		previous = word
	}
	return strings.Join(deduped, " ")
}

// CategoryFileName derives the output file base name for a category. The
// word "Quotes" is dropped since every file holds quotes anyway, e.g.
// "Love Quotes" maps to "Love". Categories reduced to nothing fall back
// to "Quotes" itself.
func CategoryFileName(s string) string {
	words := strings.Fields(NormalizeCategory(s))
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if strings.EqualFold(word, "Quotes") {
			continue
		}
		kept = append(kept, word)
	}
	name := strings.Join(kept, " ")
	if name == "" {
		return "Quotes"
	}
	return name
}

// Fingerprint produces the dedupe identity for a quote: a SHA-256 over the
// case-folded, whitespace-collapsed author and text. The same quote under
// two different tags yields the same fingerprint.
func Fingerprint(author, text string) string {
	content := fmt.Sprintf("%s|%s",
		strings.ToLower(collapseSpace(author)),
		strings.ToLower(collapseSpace(text)))

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
