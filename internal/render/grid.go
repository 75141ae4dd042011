package render

import (
	"strings"
)

// Direction controls how grid cells fill the available columns.
type Direction int

const (
	// LeftToRight fills each row before moving to the next ("across").
	LeftToRight Direction = iota
	// TopToBottom fills each column before moving to the next ("down").
	TopToBottom
)

// A GridCell is one already-painted entry plus its display width. The grid
// never measures the text itself, since it is full of escape bytes.
type GridCell struct {
	Contents string
	Width    int
}

// Grid packs cells into the widest column count that fits the terminal.
type Grid struct {
	Direction Direction
	Width     int
}

const gridGap = 2

// Fit searches candidate column counts from the cell count down to one and
// returns the rendered block for the largest count whose total width fits.
// The total width of a candidate is the sum of its column widths (each
// column as wide as its widest cell) plus a two-space gap between columns.
// Returns ok=false when not even a single column fits, in which case the
// caller drops down to one cell per line.
func (g Grid) Fit(cells []GridCell) (string, bool) {
	if len(cells) == 0 {
		return "", true
	}

	for columns := len(cells); columns >= 1; columns-- {
		widths, ok := g.tryColumns(cells, columns)
		if ok {
			return g.draw(cells, columns, widths), true
		}
	}
	return "", false
}

// tryColumns computes the per-column widths for one candidate column count
// and reports whether the candidate fits the terminal budget.
func (g Grid) tryColumns(cells []GridCell, columns int) ([]int, bool) {
	rows := ceilDiv(len(cells), columns)

	widths := make([]int, columns)
	for i, c := range cells {
		column := i % columns
		if g.Direction == TopToBottom {
			column = i / rows
		}
		if c.Width > widths[column] {
			widths[column] = c.Width
		}
	}

	total := gridGap * (columns - 1)
	for _, w := range widths {
		total += w
	}
	return widths, total <= g.Width
}

// draw lays the cells out at the accepted column count. Trailing cells of
// the final row (or column) are simply absent; nothing is drawn in their
// place.
func (g Grid) draw(cells []GridCell, columns int, widths []int) string {
	rows := ceilDiv(len(cells), columns)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			index := row*columns + column
			if g.Direction == TopToBottom {
				index = row + rows*column
			}
			if index >= len(cells) {
				continue
			}

			c := cells[index]
			b.WriteString(c.Contents)
			if !g.lastInRow(len(cells), rows, columns, row, column) {
				b.WriteString(strings.Repeat(" ", widths[column]-c.Width+gridGap))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// lastInRow reports whether the cell at (row, column) is the final occupied
// cell of its row, which never takes trailing padding.
func (g Grid) lastInRow(count, rows, columns, row, column int) bool {
	for next := column + 1; next < columns; next++ {
		index := row*columns + next
		if g.Direction == TopToBottom {
			index = row + rows*next
		}
		if index < count {
			return false
		}
	}
	return true
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
