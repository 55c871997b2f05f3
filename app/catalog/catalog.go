package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var validFilterFields = map[string]bool{
	"quote":  true,
	"author": true,
	"tags":   true,
}

type Catalog struct {
	categories []Category
	byNumber   map[int]Category
}

func newCatalog(categories []Category) *Catalog {
	byNumber := make(map[int]Category, len(categories))
	for _, category := range categories {
		byNumber[category.Number] = category
	}
	return &Catalog{categories: categories, byNumber: byNumber}
}

// Builtin returns the compiled-in category catalog.
func Builtin() *Catalog {
	return newCatalog(builtinCategories)
}

// Load reads a catalog override from a YAML file. An empty path selects
// the built-in catalog. Categories without an explicit number are numbered
// by their position in the file.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no categories", path)
	}

	for i := range file.Categories {
		if file.Categories[i].Number == 0 {
			file.Categories[i].Number = i + 1
		}
	}

	catalog := newCatalog(file.Categories)
	if err := catalog.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	slog.Info("Catalog loaded", "file", path, "categories", len(file.Categories))

	return catalog, nil
}

func (c *Catalog) validate() error {
	seen := make(map[int]bool, len(c.categories))
	for i, category := range c.categories {
		if category.Name == "" {
			return fmt.Errorf("category at index %d has no name", i)
		}
		if category.URL == "" {
			return fmt.Errorf("category %q has no URL", category.Name)
		}
		if seen[category.Number] {
			return fmt.Errorf("duplicate category number %d", category.Number)
		}
		seen[category.Number] = true

		for j, filter := range category.Filters {
			if !validFilterFields[filter.Field] {
				return fmt.Errorf("category %q: invalid filter field at index %d: %s", category.Name, j, filter.Field)
			}
			if len(filter.Includes) == 0 && len(filter.Excludes) == 0 {
				return fmt.Errorf("category %q: filter at index %d must have at least one include or exclude rule", category.Name, j)
			}
		}
	}
	return nil
}

func (c *Catalog) All() []Category {
	return c.categories
}

func (c *Catalog) Len() int {
	return len(c.categories)
}

func (c *Catalog) Get(number int) (Category, bool) {
	category, ok := c.byNumber[number]
	return category, ok
}

// Select maps menu numbers to categories, keeping the given order and
// skipping numbers that are not in the catalog.
func (c *Catalog) Select(numbers []int) []Category {
	selected := make([]Category, 0, len(numbers))
	for _, number := range numbers {
		if category, ok := c.byNumber[number]; ok {
			selected = append(selected, category)
		}
	}
	return selected
}

// ParseSelection parses a menu selection expression into sorted, unique
// category numbers. Supported forms: "all", a comma separated list of
// numbers, ranges like "2-5", and any mix of the two. Reversed ranges are
// accepted. Numbers outside 1..max are an error.
func ParseSelection(expr string, max int) ([]int, error) {
	expr = strings.TrimSpace(expr)
	if strings.EqualFold(expr, "all") {
		numbers := make([]int, max)
		for i := range numbers {
			numbers[i] = i + 1
		}
		return numbers, nil
	}

	chosen := make(map[int]struct{})
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if before, after, isRange := strings.Cut(part, "-"); isRange {
			start, err := strconv.Atoi(strings.TrimSpace(before))
			if err != nil {
				return nil, fmt.Errorf("invalid range %q", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(after))
			if err != nil {
				return nil, fmt.Errorf("invalid range %q", part)
			}
			if start > end {
				start, end = end, start
			}
			if start < 1 || end > max {
				return nil, fmt.Errorf("range %q is out of bounds (1-%d)", part, max)
			}
			for n := start; n <= end; n++ {
				chosen[n] = struct{}{}
			}
			continue
		}

		number, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		if number < 1 || number > max {
			return nil, fmt.Errorf("number %d is out of bounds (1-%d)", number, max)
		}
		chosen[number] = struct{}{}
	}

	if len(chosen) == 0 {
		return nil, fmt.Errorf("empty selection")
	}

	numbers := make([]int, 0, len(chosen))
	for number := range chosen {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	return numbers, nil
}
