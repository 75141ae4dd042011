package render

import (
	"fmt"
	"strings"

	"github.com/harrison/lsx/internal/cell"
	"github.com/harrison/lsx/internal/files"
	"github.com/harrison/lsx/internal/sorting"
)

// View selects the overall output shape.
type View int

const (
	GridView View = iota
	DetailsView
	GridDetailsView
	LinesView
)

// Options is the full rendering configuration for one listing.
type Options struct {
	View      View
	Across    bool
	Header    bool
	Tree      bool
	MaxDepth  int // tree recursion limit; 0 means unlimited
	ShowAll   bool
	Extended  bool // list extended attributes beneath each details row
	SortField sorting.Field
	Reverse   bool
	Columns   ColumnSet

	// TerminalWidth in character columns. Zero or negative means no usable
	// terminal width was probed, which forces the lines view.
	TerminalWidth int
}

// A Renderer turns sorted records into the configured layout. It performs
// no filesystem access of its own except for tree recursion, which re-scans
// subdirectories through the same scanner the caller used.
type Renderer struct {
	Env     *Environment
	Options Options
}

// Render produces the output block for one directory's records. The errors
// are per-subdirectory scan failures from tree recursion; the listing
// itself cannot fail.
func (r *Renderer) Render(records []*files.Record) (string, []error) {
	switch {
	case r.Options.View == LinesView, r.Options.TerminalWidth <= 0 && r.Options.View == GridView:
		return r.lines(records), nil
	case r.Options.View == GridView:
		return r.grid(records), nil
	case r.Options.View == GridDetailsView:
		return r.gridDetails(records)
	default:
		return r.details(records)
	}
}

// lines prints one coloured name per line, with no padding at all.
func (r *Renderer) lines(records []*files.Record) string {
	var b strings.Builder
	for _, record := range records {
		b.WriteString(r.Env.FileName(record).String())
		b.WriteString("\n")
	}
	return b.String()
}

// grid lays the names out in the widest grid that fits, falling back to the
// lines view when even one column is too narrow.
func (r *Renderer) grid(records []*files.Record) string {
	cells := make([]GridCell, len(records))
	for i, record := range records {
		name := r.Env.FileName(record)
		cells[i] = GridCell{Contents: name.String(), Width: name.Width}
	}

	direction := TopToBottom
	if r.Options.Across {
		direction = LeftToRight
	}
	g := Grid{Direction: direction, Width: r.Options.TerminalWidth}

	if block, ok := g.Fit(cells); ok {
		return block
	}
	return r.lines(records)
}

// details renders the aligned table, recursing into subdirectories when the
// tree was requested.
func (r *Renderer) details(records []*files.Record) (string, []error) {
	table := &Table{
		Columns: r.Options.Columns.Columns(r.Env.Git),
		Palette: r.Env.Palette,
		Header:  r.Options.Header,
	}

	var errs []error
	r.addRows(table, records, 0, &errs)

	var b strings.Builder
	for _, line := range table.Lines() {
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	return b.String(), errs
}

// addRows fills the table, depth-first: each directory's row is followed
// immediately by its children's rows one level deeper.
func (r *Renderer) addRows(table *Table, records []*files.Record, depth int, errs *[]error) {
	for _, record := range records {
		cells := make([]cell.TextCell, len(table.Columns))
		for i, column := range table.Columns {
			cells[i] = r.Env.Cell(column, record)
		}
		table.Add(Row{Cells: cells, Name: r.Env.FileName(record), Depth: depth})

		if r.Options.Extended {
			r.addAttrRows(table, record, depth+1)
		}

		if r.Options.Tree && record.IsDirectory() {
			if r.Options.MaxDepth > 0 && depth+1 >= r.Options.MaxDepth {
				continue
			}
			if r.Env.Mounts.IsMountPoint(record.Path) {
				// Trees stay on one filesystem.
				continue
			}
			dir, err := files.ReadDir(record.Path)
			if err != nil {
				*errs = append(*errs, err)
				continue
			}
			children, childErrs := dir.Files(r.Options.ShowAll)
			*errs = append(*errs, childErrs...)
			sorting.Sort(children, r.Options.SortField, r.Options.Reverse)
			r.addRows(table, children, depth+1, errs)
		}
	}
}

// addAttrRows lists a record's extended attributes as their own rows,
// indented one level below it. The fixed columns are left empty so only the
// padding shows; an attribute has no permissions or owner of its own.
func (r *Renderer) addAttrRows(table *Table, record *files.Record, depth int) {
	attrs, err := r.Env.Attrs.List(record.Path)
	if err != nil || len(attrs) == 0 {
		return
	}
	for _, attr := range attrs {
		// Zero-width cells, so the columns render as bare padding.
		cells := make([]cell.TextCell, len(table.Columns))
		name := cell.Paint(r.Env.Palette.Punctuation, fmt.Sprintf("%s (%d)", attr.Name, attr.Size))
		table.Add(Row{Cells: cells, Name: name, Depth: depth})
	}
}

// gridDetails arranges several details tables side by side, splitting the
// records column-major across them. The search mirrors the grid's: try the
// most tables first and accept the first arrangement that fits. When
// nothing fits side by side, it degrades to the plain details view.
func (r *Renderer) gridDetails(records []*files.Record) (string, []error) {
	if r.Options.TerminalWidth <= 0 || len(records) < 2 {
		return r.details(records)
	}

	for tables := len(records); tables >= 2; tables-- {
		block, ok := r.tryGridDetails(records, tables)
		if ok {
			return block, nil
		}
	}
	return r.details(records)
}

func (r *Renderer) tryGridDetails(records []*files.Record, tables int) (string, bool) {
	columns := r.Options.Columns.Columns(r.Env.Git)
	rows := ceilDiv(len(records), tables)

	rendered := make([][]Line, 0, tables)
	total := gridGap * (tables - 1)
	for i := 0; i < tables; i++ {
		start := i * rows
		if start >= len(records) {
			break
		}
		end := start + rows
		if end > len(records) {
			end = len(records)
		}

		table := &Table{Columns: columns, Palette: r.Env.Palette}
		var discard []error
		r.addRows(table, records[start:end], 0, &discard)
		lines := table.Lines()

		widest := 0
		for _, line := range lines {
			if line.Width > widest {
				widest = line.Width
			}
		}
		total += widest
		rendered = append(rendered, lines)
	}
	if total > r.Options.TerminalWidth {
		return "", false
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for i, lines := range rendered {
			if row >= len(lines) {
				continue
			}
			line := lines[row]
			b.WriteString(line.Text)
			if i < len(rendered)-1 {
				widest := 0
				for _, l := range lines {
					if l.Width > widest {
						widest = l.Width
					}
				}
				b.WriteString(strings.Repeat(" ", widest-line.Width+gridGap))
			}
		}
		b.WriteString("\n")
	}
	return b.String(), true
}
