package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lysyi3m/quote-comb/app/catalog"
)

func TestMenuSelectCategoriesDefaultsToAll(t *testing.T) {
	cat := catalog.Builtin()
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("\n"), &out)

	selected, err := menu.SelectCategories(cat)
	if err != nil {
		t.Fatalf("SelectCategories failed: %v", err)
	}

	if len(selected) != cat.Len() {
		t.Errorf("Expected empty answer to select all %d tags, got %d", cat.Len(), len(selected))
	}
}

func TestMenuSelectCategoriesList(t *testing.T) {
	cat := catalog.Builtin()
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("2,5\n"), &out)

	selected, err := menu.SelectCategories(cat)
	if err != nil {
		t.Fatalf("SelectCategories failed: %v", err)
	}

	if len(selected) != 2 {
		t.Fatalf("Expected 2 selected tags, got %d", len(selected))
	}
	if selected[0].Number != 2 || selected[1].Number != 5 {
		t.Errorf("Expected tags 2 and 5, got %d and %d", selected[0].Number, selected[1].Number)
	}
}

func TestMenuSelectCategoriesRange(t *testing.T) {
	cat := catalog.Builtin()
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("1-3\n"), &out)

	selected, err := menu.SelectCategories(cat)
	if err != nil {
		t.Fatalf("SelectCategories failed: %v", err)
	}

	if len(selected) != 3 {
		t.Errorf("Expected 3 selected tags, got %d", len(selected))
	}
}

func TestMenuSelectCategoriesReprompts(t *testing.T) {
	cat := catalog.Builtin()
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("abc\n4\n"), &out)

	selected, err := menu.SelectCategories(cat)
	if err != nil {
		t.Fatalf("SelectCategories failed: %v", err)
	}

	if len(selected) != 1 || selected[0].Number != 4 {
		t.Fatalf("Expected retry to select tag 4, got %v", selected)
	}
	if !strings.Contains(out.String(), "Invalid selection") {
		t.Errorf("Expected an invalid selection message in output")
	}
}

func TestMenuSelectCategoriesEOF(t *testing.T) {
	cat := catalog.Builtin()
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader(""), &out)

	_, err := menu.SelectCategories(cat)
	if err == nil {
		t.Error("Expected error when input ends before a selection")
	}
}

func TestMenuRendersTagTable(t *testing.T) {
	cat := catalog.Builtin()
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("\n"), &out)

	if _, err := menu.SelectCategories(cat); err != nil {
		t.Fatalf("SelectCategories failed: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{"No.", "Tag", "Love Quotes", "Wisdom Quotes"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Expected table output to contain %q", want)
		}
	}
}

func TestMenuAskPageLimitDefault(t *testing.T) {
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("\n"), &out)

	limit, err := menu.AskPageLimit(1)
	if err != nil {
		t.Fatalf("AskPageLimit failed: %v", err)
	}
	if limit != 1 {
		t.Errorf("Expected default limit 1, got %d", limit)
	}
}

func TestMenuAskPageLimitValue(t *testing.T) {
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("5\n"), &out)

	limit, err := menu.AskPageLimit(1)
	if err != nil {
		t.Fatalf("AskPageLimit failed: %v", err)
	}
	if limit != 5 {
		t.Errorf("Expected limit 5, got %d", limit)
	}
}

func TestMenuAskPageLimitReprompts(t *testing.T) {
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("-2\n7\n"), &out)

	limit, err := menu.AskPageLimit(1)
	if err != nil {
		t.Fatalf("AskPageLimit failed: %v", err)
	}
	if limit != 7 {
		t.Errorf("Expected limit 7 after retry, got %d", limit)
	}
	if !strings.Contains(out.String(), "non-negative") {
		t.Errorf("Expected a retry message in output")
	}
}

func TestMenuAskPageLimitEOF(t *testing.T) {
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader(""), &out)

	_, err := menu.AskPageLimit(1)
	if err == nil {
		t.Error("Expected error when input ends before an answer")
	}
}
