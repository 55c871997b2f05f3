package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/lysyi3m/quote-comb/app/quote"
)

var header = []string{"SNO", "THUMB", "CATEGORY", "AUTHOR", "QUOTE", "TRANSLATE", "TAGS", "LIKES", "IMAGE", "TOTAL"}

const (
	columnAuthor = 3
	columnQuote  = 4
)

// Tags are joined with a separator that cannot be confused with the CSV
// delimiter.
const tagSeparator = "; "

type categoryFile struct {
	file   *os.File
	writer *csv.Writer
	serial int
}

// Writer appends deduplicated records to per-category CSV files. Two
// categories whose names normalize to the same file name share one file
// and one serial counter. The check-append-register sequence runs under a
// single lock, so concurrent workers can never write the same quote twice.
type Writer struct {
	dir   string
	index *Index

	mu    sync.Mutex
	files map[string]*categoryFile
}

func NewWriter(dir string, index *Index) *Writer {
	return &Writer{
		dir:   dir,
		index: index,
		files: make(map[string]*categoryFile),
	}
}

// Open prepares the output file for a category: creates it with a header
// row when absent, otherwise positions for append and initializes the
// serial counter from the existing row count.
func (w *Writer) Open(category string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.open(category)
	return err
}

// Write appends one record to the category's file unless its fingerprint
// is already in the index. Returns true when a row was written. The row
// append and the fingerprint registration happen atomically.
func (w *Writer) Write(category string, record quote.Record) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.index.Contains(record.Fingerprint) {
		return false, nil
	}

	cf, err := w.open(category)
	if err != nil {
		return false, err
	}

	row := buildRow(cf.serial+1, quote.NormalizeCategory(category), record)
	if err := cf.writer.Write(row); err != nil {
		return false, fmt.Errorf("failed to append to category file: %w", err)
	}
	cf.writer.Flush()
	if err := cf.writer.Error(); err != nil {
		return false, fmt.Errorf("failed to append to category file: %w", err)
	}

	cf.serial++
	w.index.Add(record.Fingerprint)

	return true, nil
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error
	for name, cf := range w.files {
		cf.writer.Flush()
		if err := cf.writer.Error(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to flush category file %s: %w", name, err)
		}
		if err := cf.file.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close category file %s: %w", name, err)
		}
	}
	w.files = make(map[string]*categoryFile)

	return firstErr
}

func (w *Writer) open(category string) (*categoryFile, error) {
	name := quote.CategoryFileName(category)
	if cf, ok := w.files[name]; ok {
		return cf, nil
	}

	path := filepath.Join(w.dir, name+".csv")
	serial, writeHeader, err := scanExisting(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category file %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open category file %s: %w", path, err)
	}

	cf := &categoryFile{file: f, writer: csv.NewWriter(f), serial: serial}
	if writeHeader {
		if err := cf.writer.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header to %s: %w", path, err)
		}
		cf.writer.Flush()
		if err := cf.writer.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header to %s: %w", path, err)
		}
	}

	w.files[name] = cf
	return cf, nil
}

// scanExisting counts the data rows already in path. The second return
// value reports whether a header row still needs to be written.
func scanExisting(path string) (int, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, true, nil
		}
		return 0, false, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows := 0
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, false, err
		}
		if first {
			first = false
			if len(row) > 0 && row[0] == "SNO" {
				continue
			}
		}
		rows++
	}

	if first {
		return 0, true, nil
	}
	return rows, false, nil
}

func buildRow(serial int, displayName string, record quote.Record) []string {
	return []string{
		strconv.Itoa(serial),
		"",
		displayName,
		record.Author,
		record.Text,
		"",
		strings.Join(record.Tags, tagSeparator),
		strconv.Itoa(record.Likes),
		record.ImageURL,
		strconv.Itoa(utf8.RuneCountInString(record.Text)),
	}
}
