package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/lsx/internal/cell"
	"github.com/harrison/lsx/internal/style"
)

func plainCell(text string) cell.TextCell {
	return cell.Paint(style.Plain, text)
}

func TestTableAlignsColumns(t *testing.T) {
	table := &Table{
		Columns: []Column{Permissions, Size},
		Palette: style.PlainPalette(),
	}
	table.Add(Row{Cells: []cell.TextCell{plainCell(".rw-r--r--"), plainCell("9600")}, Name: plainCell("Cargo.lock")})
	table.Add(Row{Cells: []cell.TextCell{plainCell("drwxr-xr-x"), plainCell("-")}, Name: plainCell("src")})

	lines := table.Lines()
	require.Len(t, lines, 2)

	// Permissions is left-aligned, size right-aligned, single space
	// separators, name unpadded at the end.
	assert.Equal(t, ".rw-r--r-- 9600 Cargo.lock", lines[0].Text)
	assert.Equal(t, "drwxr-xr-x    - src", lines[1].Text)
	assert.Equal(t, len(lines[0].Text), lines[0].Width)
}

func TestTableHeaderRow(t *testing.T) {
	table := &Table{
		Columns: []Column{Size},
		Palette: style.PlainPalette(),
		Header:  true,
	}
	table.Add(Row{Cells: []cell.TextCell{plainCell("12")}, Name: plainCell("a")})

	lines := table.Lines()
	require.Len(t, lines, 2)

	// The header label is wider than any cell, so it sets the column
	// width - and it is left-aligned even though Size data is
	// right-aligned.
	assert.Equal(t, "Size Name", lines[0].Text)
	assert.Equal(t, "  12 a", lines[1].Text)
}

func TestTableTreeIndentation(t *testing.T) {
	table := &Table{
		Columns: []Column{Size},
		Palette: style.PlainPalette(),
	}
	table.Add(Row{Cells: []cell.TextCell{plainCell("1")}, Name: plainCell("parent"), Depth: 0})
	table.Add(Row{Cells: []cell.TextCell{plainCell("2")}, Name: plainCell("child"), Depth: 1})
	table.Add(Row{Cells: []cell.TextCell{plainCell("3")}, Name: plainCell("grandchild"), Depth: 2})

	lines := table.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "1 parent", lines[0].Text)
	assert.Equal(t, treeIndent+"2 child", lines[1].Text)
	assert.Equal(t, treeIndent+treeIndent+"3 grandchild", lines[2].Text)

	// Width counts the indent's glyphs, not its bytes.
	assert.Equal(t, treeIndentWidth+len("2 child"), lines[1].Width)
}

func TestTableWidthIgnoresStyling(t *testing.T) {
	styled := cell.Paint(style.Red.Bold(), "99")
	table := &Table{
		Columns: []Column{Size},
		Palette: style.ColourfulPalette(),
	}
	table.Add(Row{Cells: []cell.TextCell{styled}, Name: cell.Paint(style.Blue.Bold(), "dir")})

	lines := table.Lines()
	require.Len(t, lines, 1)
	// "99" + separator + "dir" = 6 visible glyphs, regardless of the
	// escape bytes in the text.
	assert.Equal(t, 6, lines[0].Width)
	assert.Greater(t, len(lines[0].Text), lines[0].Width)
}

func TestColumnAlignments(t *testing.T) {
	rightAligned := []Column{Size, HardLinks, Inode, Blocks, GitStatus}
	for _, c := range rightAligned {
		assert.Equal(t, cell.Right, c.Alignment(), c.Header())
	}
	leftAligned := []Column{Permissions, User, Group, Timestamp}
	for _, c := range leftAligned {
		assert.Equal(t, cell.Left, c.Alignment(), c.Header())
	}
}

func TestColumnSetOrder(t *testing.T) {
	cs := ColumnSet{Inode: true, Links: true, Blocks: true, Group: true}
	columns := cs.Columns(nil)
	assert.Equal(t, []Column{Inode, Permissions, HardLinks, Size, Blocks, User, Group, Timestamp}, columns)

	minimal := ColumnSet{}
	assert.Equal(t, []Column{Permissions, Size, User, Timestamp}, minimal.Columns(nil))
}
