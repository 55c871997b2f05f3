package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/lysyi3m/quote-comb/app/catalog"
)

// IsInteractive reports whether the process is attached to a terminal on
// both ends, so prompts can actually be answered.
func IsInteractive() bool {
	stdinIsTerminal := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	stdoutIsTerminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return stdinIsTerminal && stdoutIsTerminal
}

type Menu struct {
	in  *bufio.Reader
	out io.Writer
}

func NewMenu(in io.Reader, out io.Writer) *Menu {
	return &Menu{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// SelectCategories renders the tag table and prompts until a valid
// selection is entered. An empty answer selects every tag.
func (m *Menu) SelectCategories(cat *catalog.Catalog) ([]catalog.Category, error) {
	m.renderCatalog(cat)

	for {
		fmt.Fprint(m.out, "Select tags [all | 1,3,5 | 1-5 | 1,4-9] (all): ")

		line, readErr := m.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer == "" && readErr != nil {
			return nil, fmt.Errorf("failed to read selection: %w", readErr)
		}
		if answer == "" {
			answer = "all"
		}

		numbers, err := catalog.ParseSelection(answer, cat.Len())
		if err != nil {
			if readErr != nil {
				return nil, fmt.Errorf("failed to read selection: %w", readErr)
			}
			fmt.Fprintf(m.out, "Invalid selection: %v\n", err)
			continue
		}

		return cat.Select(numbers), nil
	}
}

// AskPageLimit prompts for how many listing pages to visit per tag.
// Zero means every page.
func (m *Menu) AskPageLimit(defaultLimit int) (int, error) {
	for {
		fmt.Fprintf(m.out, "Pages per tag (0 = all) (%d): ", defaultLimit)

		line, readErr := m.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer == "" && readErr != nil {
			return 0, fmt.Errorf("failed to read page limit: %w", readErr)
		}
		if answer == "" {
			return defaultLimit, nil
		}

		limit, err := strconv.Atoi(answer)
		if err != nil || limit < 0 {
			if readErr != nil {
				return 0, fmt.Errorf("failed to read page limit: %w", readErr)
			}
			fmt.Fprintln(m.out, "Enter a non-negative number")
			continue
		}

		return limit, nil
	}
}

func (m *Menu) renderCatalog(cat *catalog.Catalog) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(m.out)
	t.AppendHeader(table.Row{"No.", "Tag"})
	for _, category := range cat.All() {
		t.AppendRow(table.Row{category.Number, category.Name})
	}
	t.Render()
}
