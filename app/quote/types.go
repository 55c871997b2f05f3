package quote

// Scraped quote types

type Record struct {
	Author    string
	Text      string
	Tags      []string
	Likes     int
	ImageURL  string
	AuthorURL string

	Fingerprint  string
	IsFiltered   bool
	FilterReason string
}

// Page holds the records extracted from a single listing page together
// with the pagination hint found in its markup.
type Page struct {
	Records []Record
	HasNext bool
}

// Filter rules applied to records after extraction, loaded from the
// category catalog.

type Filter struct {
	Field    string   `yaml:"field"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}
