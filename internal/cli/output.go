package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jacksmith/libtrack/internal/model"
	"github.com/jacksmith/libtrack/internal/storage"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
var colorEnabled = false

// SetColorEnabled overrides the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ConfigureColor applies a color mode from the config file.
// In auto mode colors are used only when w is a terminal.
func ConfigureColor(mode string, w io.Writer) {
	switch mode {
	case storage.ColorAlways:
		colorEnabled = true
	case storage.ColorNever:
		colorEnabled = false
	default:
		colorEnabled = IsTerminal(w)
	}
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green is used for successful operations.
func Green(s string) string { return paint(colorGreen, s) }

// Red is used for errors.
func Red(s string) string { return paint(colorRed, s) }

// Yellow is used for warnings.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray is used for headings and hints.
func Gray(s string) string { return paint(colorGray, s) }

// Table lays out rows of plain text in aligned columns.
type Table struct {
	rows   [][]string
	widths []int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	row := make([]string, len(cols))
	for i, col := range cols {
		row[i] = col
		if i >= len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		if w := utf8.RuneCountInString(col); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w with columns separated by two spaces.
// The last column of each row is not padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		var b strings.Builder
		for i, col := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(col)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(col)))
			}
		}
		fmt.Fprintln(w, b.String())
	}
}

// RenderBooks writes a 1-indexed listing of books with full titles.
func RenderBooks(w io.Writer, books []model.Book) {
	table := NewTable()
	for i, b := range books {
		table.AddRow(fmt.Sprintf("%d.", i+1), b.ID, b.Title, b.Author)
	}
	table.Render(w)
}
