package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lysyi3m/quote-comb/app/quote"
)

func TestIndex_AddContains(t *testing.T) {
	index := NewIndex()

	fingerprint := quote.Fingerprint("Oscar Wilde", "Be yourself")

	if index.Contains(fingerprint) {
		t.Errorf("Empty index should not contain any fingerprint")
	}

	index.Add(fingerprint)

	if !index.Contains(fingerprint) {
		t.Errorf("Index should contain an added fingerprint")
	}
	if index.Len() != 1 {
		t.Errorf("Expected index length 1, got %d", index.Len())
	}

	// Adding again is a no-op
	index.Add(fingerprint)
	if index.Len() != 1 {
		t.Errorf("Expected index length 1 after duplicate add, got %d", index.Len())
	}
}

func TestIndex_AddAll(t *testing.T) {
	index := NewIndex()

	index.AddAll([]string{"aa", "bb", "aa", "cc"})

	if index.Len() != 3 {
		t.Errorf("Expected 3 unique fingerprints, got %d", index.Len())
	}
	if !index.Contains("bb") {
		t.Errorf("Index should contain fingerprint from AddAll")
	}
}

func TestIndex_LoadDir(t *testing.T) {
	dir := t.TempDir()

	loveCSV := `SNO,THUMB,CATEGORY,AUTHOR,QUOTE,TRANSLATE,TAGS,LIKES,IMAGE,TOTAL
1,,Love Quotes,Oscar Wilde,Be yourself; everyone else is already taken,,be-yourself,3086,,43
2,,Love Quotes,Marilyn Monroe,Imperfection is beauty,,beauty,1500,,22
`
	lifeCSV := `SNO,THUMB,CATEGORY,AUTHOR,QUOTE,TRANSLATE,TAGS,LIKES,IMAGE,TOTAL
1,,Life Quotes,Oscar Wilde,Be yourself; everyone else is already taken,,be-yourself,3086,,43
2,,Life Quotes,Mae West,You only live once but if you do it right once is enough,,life,2000,,56
`
	if err := os.WriteFile(filepath.Join(dir, "Love.csv"), []byte(loveCSV), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Life.csv"), []byte(lifeCSV), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	index := NewIndex()
	added, err := index.LoadDir(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// The Wilde quote appears in both files and is counted once
	if added != 3 {
		t.Errorf("Expected 3 unique fingerprints loaded, got %d", added)
	}
	if index.Len() != 3 {
		t.Errorf("Expected index length 3, got %d", index.Len())
	}

	if !index.Contains(quote.Fingerprint("Mae West", "You only live once but if you do it right once is enough")) {
		t.Errorf("Index should contain fingerprints from every file")
	}
	if !index.Contains(quote.Fingerprint("Oscar Wilde", "Be yourself; everyone else is already taken")) {
		t.Errorf("Index should contain the shared fingerprint")
	}
}

func TestIndex_LoadDir_EmptyDirectory(t *testing.T) {
	index := NewIndex()

	added, err := index.LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error for an empty directory, got: %v", err)
	}
	if added != 0 {
		t.Errorf("Expected 0 fingerprints, got %d", added)
	}
}

func TestIndex_LoadDir_SkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()

	// A file that is not valid CSV beyond the first row
	garbage := "SNO,THUMB,CATEGORY,AUTHOR,QUOTE,TRANSLATE,TAGS,LIKES,IMAGE,TOTAL\n\"unterminated\n"
	if err := os.WriteFile(filepath.Join(dir, "Broken.csv"), []byte(garbage), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	goodCSV := `SNO,THUMB,CATEGORY,AUTHOR,QUOTE,TRANSLATE,TAGS,LIKES,IMAGE,TOTAL
1,,Humor Quotes,Mark Twain,The secret of getting ahead is getting started,,motivation,900,,46
`
	if err := os.WriteFile(filepath.Join(dir, "Humor.csv"), []byte(goodCSV), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	index := NewIndex()
	added, err := index.LoadDir(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if added != 1 {
		t.Errorf("Expected 1 fingerprint from the readable file, got %d", added)
	}
}
