package quote

import (
	"fmt"
	"strings"
)

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

func (f *Filterer) Run(records []Record, filters []Filter) []Record {
	if len(filters) == 0 {
		return records
	}

	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		isFiltered, filterReason := f.applyFilters(record, filters)
		record.IsFiltered = isFiltered
		record.FilterReason = filterReason
		filtered = append(filtered, record)
	}

	return filtered
}

func (f *Filterer) applyFilters(record Record, filters []Filter) (bool, string) {
	for _, filter := range filters {
		value := f.getFieldValue(record, filter.Field)

		for _, exclude := range filter.Excludes {
			if f.matchesFilter(value, exclude) {
				return true, fmt.Sprintf("Excluded by %s filter: contains '%s'", filter.Field, exclude)
			}
		}

		if len(filter.Includes) > 0 {
			matched := false
			for _, include := range filter.Includes {
				if f.matchesFilter(value, include) {
					matched = true
					break
				}
			}
			if !matched {
				return true, fmt.Sprintf("Excluded by %s filter: does not contain any of %v", filter.Field, filter.Includes)
			}
		}
	}

	return false, ""
}

func (f *Filterer) matchesFilter(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

func (f *Filterer) getFieldValue(record Record, field string) string {
	switch field {
	case "quote":
		return record.Text
	case "author":
		return record.Author
	case "tags":
		return strings.Join(record.Tags, " ")
	default:
		return ""
	}
}
