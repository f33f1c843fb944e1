package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ajxudir/westupdate/pkg/update"
)

// Table is a minimal column formatter with Unicode-aware widths.
//
// Fields:
//   - headers: Column headers
//   - rows: Data rows, one cell per column
//   - separator: String placed between columns (default: "  ")
type Table struct {
	headers   []string
	rows      [][]string
	separator string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, separator: "  "}
}

// AddRow appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return t
}

// Render writes the header, a dash separator and every row.
//
// Column widths are the widest display width in each column, so wide
// characters (CJK, emoji) in paths or revisions keep columns aligned.
func (t *Table) Render(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = DisplayWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if cw := DisplayWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}

	lines := make([][]string, 0, len(t.rows)+2)
	lines = append(lines, t.headers, dashes)
	lines = append(lines, t.rows...)

	for _, cells := range lines {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = ToWidth(cell, widths[i])
		}
		line := strings.TrimRight(strings.Join(padded, t.separator), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// DisplayWidth returns the terminal display width of val.
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads val with spaces to the given display width. Values already at
// or beyond width are returned unchanged.
func ToWidth(val string, width int) string {
	current := DisplayWidth(val)
	if width <= 0 || current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

func writeTable(w io.Writer, r update.Result) error {
	t := NewTable("FIELD", "VALUE").
		AddRow("status", Status(r)).
		AddRow("reason", r.Outcome.String()).
		AddRow("repo-path", r.RepoPath)
	if r.OldRevision != "" {
		t.AddRow("old revision", r.OldRevision)
	}
	if r.Changed() {
		t.AddRow("revision", r.NewRevision)
		t.AddRow("change", string(r.Change()))
	}
	return t.Render(w)
}
