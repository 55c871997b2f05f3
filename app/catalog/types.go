package catalog

import (
	"github.com/lysyi3m/quote-comb/app/quote"
)

// Category is one scrapeable tag listing. Number is the menu position,
// Name the raw display name and URL the first page of the listing.
type Category struct {
	Number  int            `yaml:"number"`
	Name    string         `yaml:"name"`
	URL     string         `yaml:"url"`
	Filters []quote.Filter `yaml:"filters"`
}

// catalogFile is the YAML layout of a catalog override file.
type catalogFile struct {
	Categories []Category `yaml:"categories"`
}
