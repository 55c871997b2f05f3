package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltin(t *testing.T) {
	catalog := Builtin()

	if catalog.Len() != 29 {
		t.Errorf("Expected 29 built-in categories, got %d", catalog.Len())
	}

	for i, category := range catalog.All() {
		if category.Number != i+1 {
			t.Errorf("Category %d: expected number %d, got %d", i, i+1, category.Number)
		}
		if category.Name == "" {
			t.Errorf("Category %d has an empty name", i)
		}
		if !strings.HasPrefix(category.URL, "https://") {
			t.Errorf("Category %d has a non-https URL: %q", i, category.URL)
		}
	}

	first, ok := catalog.Get(1)
	if !ok || first.Name != "Love Quotes" {
		t.Errorf("Expected category 1 to be 'Love Quotes', got: %+v", first)
	}
}

func TestCatalog_Select(t *testing.T) {
	catalog := Builtin()

	selected := catalog.Select([]int{3, 1, 99})

	if len(selected) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(selected))
	}
	if selected[0].Number != 3 || selected[1].Number != 1 {
		t.Errorf("Expected selection order preserved, got: %d, %d", selected[0].Number, selected[1].Number)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		expr     string
		max      int
		expected []int
	}{
		{"all", 5, []int{1, 2, 3, 4, 5}},
		{" ALL ", 3, []int{1, 2, 3}},
		{"1,3,5", 10, []int{1, 3, 5}},
		{"2-5", 10, []int{2, 3, 4, 5}},
		{"5-2", 10, []int{2, 3, 4, 5}},
		{"1,4-6,9", 10, []int{1, 4, 5, 6, 9}},
		{"3,3,3", 10, []int{3}},
		{"1, 2 , 3", 10, []int{1, 2, 3}},
		{"1,,2", 10, []int{1, 2}},
	}

	for _, test := range tests {
		result, err := ParseSelection(test.expr, test.max)
		if err != nil {
			t.Errorf("ParseSelection(%q, %d): unexpected error: %v", test.expr, test.max, err)
			continue
		}
		if len(result) != len(test.expected) {
			t.Errorf("ParseSelection(%q, %d): expected %v, got %v", test.expr, test.max, test.expected, result)
			continue
		}
		for i := range result {
			if result[i] != test.expected[i] {
				t.Errorf("ParseSelection(%q, %d): expected %v, got %v", test.expr, test.max, test.expected, result)
				break
			}
		}
	}
}

func TestParseSelection_Invalid(t *testing.T) {
	tests := []struct {
		name string
		expr string
		max  int
	}{
		{"empty", "", 10},
		{"only commas", ",,,", 10},
		{"not a number", "abc", 10},
		{"zero", "0", 10},
		{"out of range", "11", 10},
		{"range out of bounds", "8-12", 10},
		{"range with zero", "0-3", 10},
		{"malformed range", "1-2-3", 10},
		{"negative number", "-3", 10},
	}

	for _, test := range tests {
		if _, err := ParseSelection(test.expr, test.max); err == nil {
			t.Errorf("ParseSelection(%q, %d) should fail (%s)", test.expr, test.max, test.name)
		}
	}
}

func TestLoad_EmptyPathUsesBuiltin(t *testing.T) {
	catalog, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if catalog.Len() != Builtin().Len() {
		t.Errorf("Expected the built-in catalog, got %d categories", catalog.Len())
	}
}

func TestLoad_File(t *testing.T) {
	content := `categories:
  - name: "Stoicism Quotes"
    url: "https://www.goodreads.com/quotes/tag/stoicism"
  - name: "Science Quotes"
    url: "https://www.goodreads.com/quotes/tag/science"
    filters:
      - field: quote
        excludes:
          - "pseudoscience"
`
	path := filepath.Join(t.TempDir(), "tags.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if catalog.Len() != 2 {
		t.Fatalf("Expected 2 categories, got %d", catalog.Len())
	}

	first, ok := catalog.Get(1)
	if !ok || first.Name != "Stoicism Quotes" {
		t.Errorf("Expected auto-numbered first category, got: %+v", first)
	}

	second, _ := catalog.Get(2)
	if len(second.Filters) != 1 || second.Filters[0].Field != "quote" {
		t.Errorf("Expected filter on the second category, got: %+v", second.Filters)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Expected error for a missing catalog file")
	}
}

func TestLoad_InvalidCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no categories", "categories: []\n"},
		{"missing url", "categories:\n  - name: \"Love Quotes\"\n"},
		{"missing name", "categories:\n  - url: \"https://example.com\"\n"},
		{"bad filter field", `categories:
  - name: "Love Quotes"
    url: "https://example.com"
    filters:
      - field: color
        includes: ["red"]
`},
		{"empty filter", `categories:
  - name: "Love Quotes"
    url: "https://example.com"
    filters:
      - field: quote
`},
		{"duplicate numbers", `categories:
  - number: 7
    name: "Love Quotes"
    url: "https://example.com/a"
  - number: 7
    name: "Life Quotes"
    url: "https://example.com/b"
`},
	}

	for _, test := range tests {
		path := filepath.Join(t.TempDir(), "tags.yaml")
		if err := os.WriteFile(path, []byte(test.content), 0o644); err != nil {
			t.Fatalf("Failed to write catalog file: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Expected error for %s", test.name)
		}
	}
}
