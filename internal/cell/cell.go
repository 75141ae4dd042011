// Package cell provides the TextCell type used by the details and lines
// views to hold ANSI-formatted table data before it is printed.
package cell

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/harrison/lsx/internal/style"
)

// A TextCell is a fragment of styled text paired with the pre-computed
// display width of its visible glyphs. When constructing details or
// grid-details tables the width has to be queried many times, so it is
// cached at construction instead of recomputed from the text.
//
// Width never counts escape-sequence bytes: it is computed from the raw text
// before a style is applied.
type TextCell struct {
	// Contents holds the already-painted fragments, in display order.
	Contents []string

	// Width is the Unicode display width of the cell.
	Width int
}

// Paint creates a single-fragment cell holding text in the given style.
func Paint(s style.Style, text string) TextCell {
	return TextCell{
		Contents: []string{s.Paint(text)},
		Width:    runewidth.StringWidth(text),
	}
}

// Blank creates a placeholder cell containing a single hyphen, for table
// slots whose attribute is unavailable. Tabular data is easier to read when
// there is *something* in each cell.
func Blank(s style.Style) TextCell {
	return TextCell{
		Contents: []string{s.Paint("-")},
		Width:    1,
	}
}

// Append adds the contents of another cell to the end of this one.
func (c *TextCell) Append(other TextCell) {
	c.Contents = append(c.Contents, other.Contents...)
	c.Width += other.Width
}

// String joins the cell's fragments into the final output text.
func (c TextCell) String() string {
	return strings.Join(c.Contents, "")
}

// Alignment decides which side of a column's width budget a cell's padding
// goes on. Usually numbers are right-aligned and text is left-aligned.
type Alignment int

const (
	Left Alignment = iota
	Right
)

// Pad returns the cell's text padded with the given number of spaces. It
// takes an amount of padding rather than a target width because the text is
// usually full of control characters, so its length says nothing about its
// width; callers compute padding as targetWidth - cell.Width.
func (a Alignment) Pad(c TextCell, padding int) string {
	if padding <= 0 {
		return c.String()
	}
	spaces := strings.Repeat(" ", padding)
	if a == Left {
		return c.String() + spaces
	}
	return spaces + c.String()
}
