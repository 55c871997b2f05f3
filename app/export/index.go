package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/lysyi3m/quote-comb/app/quote"
)

// Index is the global deduplication set. Membership is keyed by record
// fingerprint and spans every category file, so a quote exported under
// one tag is never exported again under another.
type Index struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewIndex() *Index {
	return &Index{seen: make(map[string]struct{})}
}

func (i *Index) Contains(fingerprint string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, ok := i.seen[fingerprint]
	return ok
}

func (i *Index) Add(fingerprint string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.seen[fingerprint] = struct{}{}
}

func (i *Index) AddAll(fingerprints []string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, fingerprint := range fingerprints {
		i.seen[fingerprint] = struct{}{}
	}
}

func (i *Index) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.seen)
}

// LoadDir seeds the index from every CSV file in dir. Rows are fingerprinted
// from their author and quote columns. Unreadable files are logged and
// skipped so a single corrupt export never blocks a run. Returns the number
// of fingerprints added.
func (i *Index) LoadDir(dir string) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return 0, fmt.Errorf("failed to list export files: %w", err)
	}

	added := 0
	for _, file := range files {
		count, err := i.loadFile(file)
		if err != nil {
			slog.Warn("Failed to load existing export file", "file", file, "error", err)
			continue
		}
		added += count
	}

	return added, nil
}

func (i *Index) loadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	added := 0
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return added, err
		}

		if first {
			first = false
			if len(row) > 0 && row[0] == "SNO" {
				continue
			}
		}

		if len(row) <= columnQuote {
			continue
		}

		fingerprint := quote.Fingerprint(row[columnAuthor], row[columnQuote])
		if !i.Contains(fingerprint) {
			i.Add(fingerprint)
			added++
		}
	}

	return added, nil
}
