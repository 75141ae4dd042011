package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/harrison/lsx/internal/cell"
	"github.com/harrison/lsx/internal/style"
)

// treeIndent is the unit of tree indentation; rows at depth d are prefixed
// with d copies of it.
const treeIndent = "│  "

var treeIndentWidth = runewidth.StringWidth(treeIndent)

// A Row is one line of a details table: the cells for the fixed columns,
// the trailing name cell, and the tree depth the row sits at.
type Row struct {
	Cells []cell.TextCell
	Name  cell.TextCell
	Depth int
}

// A Line is one rendered output line along with its display width, so that
// a grid-details arrangement can pack whole tables side by side without
// re-measuring styled text.
type Line struct {
	Text  string
	Width int
}

// A Table collects rows and then formats them with every column padded to
// its widest cell. The file name is always the final field and is never
// padded. Output cannot be produced row by row: each column's width is a
// reduction over the whole table, so all rows must be added first.
type Table struct {
	Columns []Column
	Palette style.Palette
	Header  bool

	rows []Row
}

// Add appends one row. Rows appear in the output in the order they were
// added.
func (t *Table) Add(row Row) {
	t.rows = append(t.rows, row)
}

// Lines formats the table.
func (t *Table) Lines() []Line {
	widths := make([]int, len(t.Columns))
	for _, row := range t.rows {
		for i, c := range row.Cells {
			if c.Width > widths[i] {
				widths[i] = c.Width
			}
		}
	}
	if t.Header {
		for i, column := range t.Columns {
			if w := runewidth.StringWidth(column.Header()); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]Line, 0, len(t.rows)+1)
	if t.Header {
		lines = append(lines, t.headerLine(widths))
	}
	for _, row := range t.rows {
		lines = append(lines, t.rowLine(row, widths))
	}
	return lines
}

// headerLine renders the label row. Labels are always left-aligned, even
// over right-aligned data.
func (t *Table) headerLine(widths []int) Line {
	var b strings.Builder
	width := 0
	for i, column := range t.Columns {
		label := cell.Paint(t.Palette.Header, column.Header())
		b.WriteString(cell.Left.Pad(label, widths[i]-label.Width))
		b.WriteString(" ")
		width += widths[i] + 1
	}
	name := cell.Paint(t.Palette.Header, "Name")
	b.WriteString(name.String())
	return Line{Text: b.String(), Width: width + name.Width}
}

func (t *Table) rowLine(row Row, widths []int) Line {
	var b strings.Builder
	width := 0

	if row.Depth > 0 {
		prefix := strings.Repeat(treeIndent, row.Depth)
		b.WriteString(t.Palette.Punctuation.Paint(prefix))
		width += treeIndentWidth * row.Depth
	}

	for i, column := range t.Columns {
		c := row.Cells[i]
		b.WriteString(column.Alignment().Pad(c, widths[i]-c.Width))
		b.WriteString(" ")
		width += widths[i] + 1
	}

	b.WriteString(row.Name.String())
	return Line{Text: b.String(), Width: width + row.Name.Width}
}
