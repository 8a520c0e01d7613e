package cli

import (
	"strings"
)

// Table represents a simple table formatter with dynamic column widths.
// Cells may contain ANSI escape sequences; they do not count toward width.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row ...string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := visibleLen(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	var result strings.Builder
	sep := strings.Repeat(" ", t.padding)

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	sepParts := make([]string, len(t.headers))
	for i, w := range colWidths {
		sepParts[i] = strings.Repeat("-", w)
	}
	writeLine(sepParts)

	for _, row := range t.rows {
		writeLine(row)
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired visible width.
func padRight(s string, width int) string {
	n := visibleLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// visibleLen returns the length of s without ANSI CSI sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inEscape:
			if c >= '@' && c <= '~' && c != '[' {
				inEscape = false
			}
		case c == 0x1b:
			inEscape = true
		default:
			n++
		}
	}
	return n
}
